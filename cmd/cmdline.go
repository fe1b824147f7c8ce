package cmd

import (
	"encoding/base64"
	"encoding/gob"
	"strings"
)

const (
	prefix = "@"
)

// replayToken encodes the arguments of the running invocation
var replayToken string

// encodeCmdline packs args into one token; "trand @token" runs them again.
func encodeCmdline(args []string) (string, error) {
	w1 := &strings.Builder{}
	w2 := base64.NewEncoder(base64.RawURLEncoding, w1)
	if err := gob.NewEncoder(w2).Encode(args); err != nil {
		return "", err
	}
	if err := w2.Close(); err != nil {
		return "", err
	}
	return w1.String(), nil
}

func decodeCmdline(s string) ([]string, error) {
	r := base64.NewDecoder(base64.RawURLEncoding, strings.NewReader(s))
	var args []string
	if err := gob.NewDecoder(r).Decode(&args); err != nil {
		return nil, err
	}
	return args, nil
}
