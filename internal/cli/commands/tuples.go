package commands

import (
	"github.com/spf13/cobra"
)

// NewTuplesCommand creates the tuples command.
func NewTuplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tuples <file> [column...]",
		Short: "Project columns from a dictionary dataset",
		Long: `Project one or more columns across all rows of a QLC dataset.

Column names are resolved through the alias table, so HEAD and head address
the same column. Unknown columns are skipped unless --strict is set.`,
		Example: `  # Default projection: head and translation
  qlcdict tuples dataset.qlc

  # Project a single column as CSV
  qlcdict tuples dataset.qlc HEAD -o csv

  # Fail on unknown column names
  qlcdict tuples dataset.qlc head etymology --strict`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTuples(cmd, args[0], args[1:])
		},
	}
	return cmd
}

func runTuples(cmd *cobra.Command, path string, columns []string) error {
	cfg := GetConfig(cmd.Context())

	d, err := loadDictionary(cmd, path)
	if err != nil {
		return err
	}

	if len(columns) == 0 {
		columns = []string{"head", "translation"}
	}

	tuples, err := d.GetTuples(columns)
	if err != nil {
		return err
	}

	// Header labels for the columns that actually resolved.
	var resolved []string
	for _, col := range columns {
		if _, err := d.IndexOf(col); err == nil {
			resolved = append(resolved, col)
		}
	}

	return render(cmd.OutOrStdout(), resolved, tuples, cfg.OutputFormat)
}
