package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glottolabs/qlcdict/internal/dict"
	"github.com/glottolabs/qlcdict/internal/starlark"
)

// NewDeriveCommand creates the derive command.
func NewDeriveCommand() *cobra.Command {
	var (
		name     string
		source   string
		expr     string
		override bool
	)

	cmd := &cobra.Command{
		Use:   "derive <file>",
		Short: "Derive a new column from existing ones",
		Long: `Derive a new column by evaluating a Starlark expression for every row.

For a single-column source the expression sees the source cell as "value".
For a comma-separated multi-column source it sees the full "row" and the
resolved "indices". The expression's result becomes the new cell value.`,
		Example: `  # Uppercase head forms
  qlcdict derive dataset.qlc --name loud --source head --expr 'value.upper()'

  # Combine head and translation
  qlcdict derive dataset.qlc --name pair --source head,translation \
    --expr '" / ".join([row[i] for i in indices])'

  # Replace an existing column in place
  qlcdict derive dataset.qlc --name loud --source head --expr 'value.lower()' --override`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(cmd, args[0], name, source, expr, override)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the derived column (required)")
	cmd.Flags().StringVar(&source, "source", "head", "Source column, or comma-separated columns")
	cmd.Flags().StringVar(&expr, "expr", "", "Starlark expression computing the derived value (required)")
	cmd.Flags().BoolVar(&override, "override", false, "Replace an existing column in place")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("expr")

	return cmd
}

func runDerive(cmd *cobra.Command, path, name, source, expr string, override bool) error {
	cfg := GetConfig(cmd.Context())

	d, err := loadDictionary(cmd, path)
	if err != nil {
		return err
	}

	fn, err := starlark.Transform(expr)
	if err != nil {
		return err
	}

	if err := d.AddEntry(name, dict.ParseSource(source), fn, dict.AddOptions{Override: override}); err != nil {
		return fmt.Errorf("derive failed: %w", err)
	}

	rows, err := columnValues(d, name)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), []string{name}, rows, cfg.OutputFormat)
}
