package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glottolabs/qlcdict/internal/dict"
	"github.com/glottolabs/qlcdict/internal/ortho"
)

// NewTokenizeCommand creates the tokenize command.
func NewTokenizeCommand() *cobra.Command {
	var (
		profile  string
		source   string
		target   string
		override bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Tokenize a column with an orthography profile",
		Long: `Segment a column's raw strings into tokens.

With --profile the tokenizer performs longest-match segmentation against the
profile's graphemes; without one it falls back to Unicode grapheme clusters.
The reserved target name "tokens" stores token sequences; any other target
stores the tokenizer's space-joined output.`,
		Example: `  # Tokenize head forms into the tokens column
  qlcdict tokenize dataset.qlc --profile deu

  # Grapheme clusters of the translation column, stored as strings
  qlcdict tokenize dataset.qlc --source translation --target graphemes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, args[0], profile, source, target, override)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Orthography profile path or name under the profiles directory")
	cmd.Flags().StringVar(&source, "source", "head", "Source column to tokenize")
	cmd.Flags().StringVar(&target, "target", dict.TokensColumn, "Target column for the result")
	cmd.Flags().BoolVar(&override, "override", false, "Replace an existing target column in place")

	return cmd
}

func runTokenize(cmd *cobra.Command, path, profile, source, target string, override bool) error {
	cfg := GetConfig(cmd.Context())

	d, err := loadDictionary(cmd, path)
	if err != nil {
		return err
	}

	prf, err := loadProfile(cfg, profile)
	if err != nil {
		return err
	}

	err = d.Tokenize(ortho.NewTokenizer(prf), dict.TokenizeOptions{
		Source:   source,
		Target:   target,
		Override: override,
	})
	if err != nil {
		return fmt.Errorf("tokenize failed: %w", err)
	}

	rows, err := columnValues(d, target)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), []string{target}, rows, cfg.OutputFormat)
}
