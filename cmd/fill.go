package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tutils/trand/counter"
	"github.com/tutils/trand/sink"
)

// fillCmd represents the fill command
var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill a database table with generated rows",
	Long: `Create a table if needed and insert generated rows, For example:
  trand fill --driver=sqlite --dsn=test.db --table=t --columns=id:bigint:1:1000,name:string:3:12 --rows=1000
  trand fill --driver=postgres --dsn=postgres://localhost/test?sslmode=disable --table=t --columns=addr:inet,net:cidr2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fillDSN == "" {
			return fmt.Errorf("must specify --dsn")
		}
		cols, err := sink.ParseColumns(fillColumns)
		if err != nil {
			return err
		}
		db, err := sink.Open(fillDriver, fillDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := sink.Fill(cmd.Context(), db, fillTable, cols, fillRows, fillSeed,
			sink.WithGenerator(newGenerator(counter.Nop)),
			sink.WithCount(fillCount),
		)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "inserted %d rows into %s\n", n, fillTable)
		return nil
	},
}

var (
	fillDriver  string
	fillDSN     string
	fillTable   string
	fillColumns string
	fillRows    int
	fillSeed    uint32
	fillCount   uint32
)

func init() {
	rootCmd.AddCommand(fillCmd)

	flags := fillCmd.Flags()
	flags.StringVar(&fillDriver, "driver", sink.DriverSQLite, "database driver: sqlite or postgres")
	flags.StringVar(&fillDSN, "dsn", "", "data source name")
	flags.StringVar(&fillTable, "table", "trand", "table to fill")
	flags.StringVar(&fillColumns, "columns", "", "columns as name:kind[:min[:max]],...")
	flags.IntVar(&fillRows, "rows", 1000, "number of rows to insert")
	flags.Uint32Var(&fillSeed, "seed", 0, "seed of the first column, next columns add their index")
	flags.Uint32Var(&fillCount, "count", 0, "distinct values per column, 0 means one per row")
}
