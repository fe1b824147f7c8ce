package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tutils/trand/client"
	"github.com/tutils/trand/counter"
	"github.com/tutils/trand/generator"
	"golang.org/x/term"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen <kind>",
	Short: "Print generated values",
	Long: `Print n generated values of one kind, one per line. For example:
  trand gen int --seed=7 --count=10 --min=0 --max=100 -n 5
  trand gen string --seed=1 --count=3 --min=4 --max=10
  trand gen numeric --seed=1 --count=100 --precision=8 --scale=2 --json
  trand gen inet --seed=1 --count=1000 --remote=ws://127.0.0.1:8080/v1/stream`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := generator.ParseKind(args[0])
		if err != nil {
			return err
		}
		req := generator.Request{
			Kind:      kind,
			Seed:      genSeed,
			Count:     genCount,
			Min:       genMin,
			Max:       genMax,
			Precision: genPrecision,
			Scale:     genScale,
		}
		if genRemote != "" {
			return genRemoteValues(cmd.Context(), cmd.OutOrStdout(), req)
		}
		values, err := newGenerator(counter.Nop).GenerateN(cmd.Context(), req, genN)
		if err != nil {
			return err
		}
		return printValues(cmd.OutOrStdout(), values, genJSON)
	},
}

var (
	genSeed      uint32
	genCount     uint32
	genMin       string
	genMax       string
	genPrecision int
	genScale     int
	genN         int
	genJSON      bool
	genRemote    string
)

func init() {
	rootCmd.AddCommand(genCmd)

	flags := genCmd.Flags()
	flags.Uint32Var(&genSeed, "seed", 0, "value seed")
	flags.Uint32Var(&genCount, "count", 1, "number of distinct values")
	flags.StringVar(&genMin, "min", "", "lower bound, or minimum length for string and bytea")
	flags.StringVar(&genMax, "max", "", "upper bound, or maximum length for string and bytea")
	flags.IntVar(&genPrecision, "precision", 0, "numeric precision")
	flags.IntVar(&genScale, "scale", 0, "numeric scale")
	flags.IntVarP(&genN, "number", "n", 1, "number of values to print")
	flags.BoolVar(&genJSON, "json", false, "print values as JSON")
	flags.StringVar(&genRemote, "remote", "", "ask a trand server instead, e.g. ws://127.0.0.1:8080/v1/stream")
}

// printValues writes one value per line. Strings are quoted on a terminal so
// control characters stay visible.
func printValues(w io.Writer, values []generator.Value, asJSON bool) error {
	quote := isTerminal(w)
	for _, v := range values {
		var line string
		switch {
		case asJSON:
			b, err := json.Marshal(v)
			if err != nil {
				return err
			}
			line = string(b)
		case quote && v.Kind == generator.KindString:
			line = strconv.Quote(v.Text())
		default:
			line = v.Text()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func genRemoteValues(ctx context.Context, w io.Writer, req generator.Request) error {
	c, err := client.Dial(ctx, client.WithConnectAddress(genRemote))
	if err != nil {
		return err
	}
	defer c.Close()

	data, err := c.Generate(ctx, req, genN)
	if err != nil {
		return err
	}
	return printRaw(w, req.Kind, data, genJSON)
}

// printRaw prints values received from a server. JSON strings are unquoted
// unless asJSON is set.
func printRaw(w io.Writer, kind generator.Kind, data []json.RawMessage, asJSON bool) error {
	quote := isTerminal(w)
	for _, raw := range data {
		line := string(raw)
		var s string
		if !asJSON && json.Unmarshal(raw, &s) == nil {
			line = s
			if quote && kind == generator.KindString {
				line = strconv.Quote(s)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
