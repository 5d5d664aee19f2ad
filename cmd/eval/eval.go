package eval

import (
	"fmt"
	"log"
	"os"

	"github.com/Kirov7/CheeseDB"
	"github.com/Kirov7/CheeseDB/cmd/root"
	"github.com/spf13/cobra"
)

var saveAfter bool

var evalCmd = &cobra.Command{
	Use:   "eval <script.lua>",
	Short: "Run a Lua script against the catalog",
	Long:  `eval loads the configured data file, runs the script with insert, remove, search, count and list available, and prints what it returns.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		opt := root.Options()
		opt.EnableLua = true
		catalog, err := CheeseDB.NewCatalog(opt)
		if err != nil {
			return err
		}
		defer catalog.Close()

		if _, err := catalog.LoadFromFile(root.DataFile()); err != nil {
			log.Println(err)
		}

		result, err := catalog.Eval(CheeseDB.BuildScript(string(script)))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", result.Value)

		if saveAfter {
			if _, err := catalog.ListAll(); err != nil {
				return err
			}
			n, err := catalog.SaveToFile(root.DataFile())
			if err != nil {
				return err
			}
			log.Printf("saved %d cheeses to %s", n, root.DataFile())
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().BoolVarP(&saveAfter, "save", "s", false, "Write the catalog back to the data file after the script ran")
	root.AddCommand(evalCmd)
}
