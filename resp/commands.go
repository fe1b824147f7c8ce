package resp

import (
	"errors"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/tidwall/redcon"
	"github.com/tutils/trand"
	"github.com/tutils/trand/generator"
)

// command maps a RESP command onto one generator kind. minArgs and maxArgs
// count the command name itself.
type command struct {
	kind    generator.Kind
	minArgs int
	maxArgs int
	extra   func(req *generator.Request, args []string) error
}

var commands = map[string]command{}

func init() {
	for _, k := range []generator.Kind{generator.KindInt, generator.KindBigInt, generator.KindReal, generator.KindDouble} {
		register(command{kind: k, minArgs: 3, maxArgs: 5, extra: rangeArgs})
	}
	for _, k := range []generator.Kind{generator.KindString, generator.KindBytea} {
		register(command{kind: k, minArgs: 4, maxArgs: 5, extra: rangeArgs})
	}
	register(command{kind: generator.KindNumeric, minArgs: 4, maxArgs: 5, extra: numericArgs})
	for _, k := range []generator.Kind{
		generator.KindUUID, generator.KindInet, generator.KindCIDR, generator.KindCIDR2,
		generator.KindMacAddr, generator.KindMacAddr8,
	} {
		register(command{kind: k, minArgs: 3, maxArgs: 3})
	}
}

func register(c command) {
	commands["RANDOM_"+strings.ToUpper(string(c.kind))] = c
}

func commandNames() []string {
	names := make([]string, 0, len(commands)+3)
	for n := range commands {
		names = append(names, n)
	}
	names = append(names, "COMMAND", "PING", "QUIT")
	sort.Strings(names)
	return names
}

func wrongArgs(name string) error {
	return errors.New("ERR wrong number of arguments for '" + strings.ToLower(name) + "' command")
}

func errorReply(err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, "ERR ") {
		return msg
	}
	return "ERR " + msg
}

func uint32Arg(name, v string) (uint32, error) {
	n, err := generator.ToUint32E(v)
	if err != nil {
		return 0, trand.NewDomainError(name, "invalid value %q", v)
	}
	return n, nil
}

func rangeArgs(req *generator.Request, args []string) error {
	if len(args) > 0 {
		req.Min = args[0]
	}
	if len(args) > 1 {
		req.Max = args[1]
	}
	return nil
}

func numericArgs(req *generator.Request, args []string) error {
	var err error
	if req.Precision, err = cast.ToIntE(args[0]); err != nil {
		return trand.NewDomainError("precision", "invalid value %q", args[0])
	}
	if len(args) > 1 {
		if req.Scale, err = cast.ToIntE(args[1]); err != nil {
			return trand.NewDomainError("scale", "invalid value %q", args[1])
		}
	}
	return nil
}

func (c command) exec(g *generator.Generator, args []string) (interface{}, error) {
	if len(args) < c.minArgs || len(args) > c.maxArgs {
		return nil, wrongArgs(args[0])
	}

	req := generator.Request{Kind: c.kind}
	var err error
	if req.Seed, err = uint32Arg("seed", args[1]); err != nil {
		return nil, err
	}
	if req.Count, err = uint32Arg("count", args[2]); err != nil {
		return nil, err
	}
	if c.extra != nil {
		if err = c.extra(&req, args[3:]); err != nil {
			return nil, err
		}
	}

	v, err := g.Generate(req)
	if err != nil {
		return nil, err
	}
	return reply(v), nil
}

// reply converts a generated value to the RESP type clients expect:
// integers as integer replies, bytea as raw bulk bytes, everything else as
// its text form.
func reply(v generator.Value) interface{} {
	switch x := v.V.(type) {
	case int32:
		return redcon.SimpleInt(x)
	case int64:
		return redcon.SimpleInt(x)
	case []byte:
		return x
	default:
		return v.Text()
	}
}
