package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutils/trand"
	"github.com/tutils/trand/generator"
	"github.com/tutils/trand/server"
	"github.com/tutils/trand/stream"
	"github.com/tutils/trand/synth"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCmdline(t *testing.T) {
	args := []string{"gen", "string", "--min", "3", "--max", "a b\t\"c\""}
	s, err := encodeCmdline(args)
	require.NoError(t, err)
	assert.NotContains(t, s, " ")

	got, err := decodeCmdline(s)
	require.NoError(t, err)
	assert.Equal(t, args, got)

	_, err = decodeCmdline("!!!")
	assert.Error(t, err)
}

func TestGen(t *testing.T) {
	st := stream.Derive(7, 0)
	want, err := synth.Int32(&st, 0, 100)
	require.NoError(t, err)

	out, err := execute(t, "gen", "int", "--seed", "7", "--count", "1", "--min", "0", "--max", "100", "-n", "3")
	require.NoError(t, err)
	line := fmt.Sprint(want)
	assert.Equal(t, line+"\n"+line+"\n"+line+"\n", out)
}

func TestGenString(t *testing.T) {
	st := stream.Derive(3, 0)
	n, err := synth.Length(&st, 5, 5)
	require.NoError(t, err)
	want := synth.String(&st, n)

	out, err := execute(t, "gen", "string", "--seed", "3", "--min", "5")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)

	out, err = execute(t, "gen", "numeric", "--seed", "3", "--precision", "4", "--scale", "1", "--json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `"`), out)
}

func TestGenErrors(t *testing.T) {
	_, err := execute(t, "gen", "nope")
	assert.True(t, trand.IsDomainError(err))

	_, err = execute(t, "gen", "int", "--count", "0")
	assert.True(t, trand.IsDomainError(err))

	_, err = execute(t, "gen", "int", "-n", "0")
	assert.True(t, trand.IsDomainError(err))

	_, err = execute(t, "gen")
	assert.Error(t, err)
}

func TestPrintValues(t *testing.T) {
	values := []generator.Value{
		{Kind: generator.KindBigInt, V: int64(-3)},
		{Kind: generator.KindString, V: "a\tb"},
	}
	out := &bytes.Buffer{}
	require.NoError(t, printValues(out, values, false))
	assert.Equal(t, "-3\na\tb\n", out.String())

	out.Reset()
	require.NoError(t, printValues(out, values, true))
	assert.Equal(t, "-3\n\"a\\tb\"\n", out.String())
}

func TestKinds(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(generator.Kinds()))
	assert.Contains(t, out, "cidr2")
	assert.Contains(t, out, "DOUBLE PRECISION")
}

func TestFill(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "fill.db")
	out, err := execute(t, "fill", "--dsn", dsn, "--table", "t", "--columns", "id:int:1:10,addr:cidr2", "--rows", "5")
	require.NoError(t, err)
	assert.Equal(t, "inserted 5 rows into t\n", out)

	_, err = execute(t, "fill", "--columns", "id:int")
	assert.Error(t, err)

	_, err = execute(t, "fill", "--dsn", dsn, "--columns", "id")
	assert.True(t, trand.IsDomainError(err))
}

func TestGenRemote(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ts := httptest.NewServer(server.New(server.WithLogger(logger)).Handler())
	defer ts.Close()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/stream"

	local, err := execute(t, "gen", "string", "--seed", "9", "--min", "4", "--max", "8", "-n", "2")
	require.NoError(t, err)
	remote, err := execute(t, "gen", "string", "--seed", "9", "--min", "4", "--max", "8", "-n", "2", "--remote", url)
	require.NoError(t, err)
	assert.Equal(t, local, remote)

	_, err = execute(t, "gen", "int", "--count", "0", "--remote", url)
	assert.Error(t, err)
}

func TestPrintRaw(t *testing.T) {
	data := []json.RawMessage{json.RawMessage(`12`), json.RawMessage(`"10.0.0.0/8"`)}
	out := &bytes.Buffer{}
	require.NoError(t, printRaw(out, generator.KindCIDR, data, false))
	assert.Equal(t, "12\n10.0.0.0/8\n", out.String())

	out.Reset()
	require.NoError(t, printRaw(out, generator.KindCIDR, data, true))
	assert.Equal(t, "12\n\"10.0.0.0/8\"\n", out.String())
}
