package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show dataset columns, aliases, and doculect metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0])
		},
	}
	return cmd
}

func runInfo(cmd *cobra.Command, path string) error {
	d, err := loadDictionary(cmd, path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(w, "Dataset: %s\n", path)
	_, _ = fmt.Fprintf(w, "Rows: %d\n\n", d.Len())

	cols := table.NewWriter()
	cols.SetOutputMirror(w)
	cols.SetStyle(table.StyleLight)
	cols.AppendHeader(table.Row{"Column", "Index", "Aliases"})
	for _, name := range d.Entries() {
		idx, err := d.IndexOf(name)
		if err != nil {
			return err
		}
		aliases, err := d.Aliases(name)
		if err != nil {
			return err
		}
		cols.AppendRow(table.Row{name, idx, strings.Join(aliases, ", ")})
	}
	cols.Render()

	doculects := d.DoculectISO()
	if len(doculects) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Doculects:")
		labels := make([]string, 0, len(doculects))
		for label := range doculects {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			_, _ = fmt.Fprintf(w, "  %s (%s)\n", label, doculects[label])
		}
	}

	if iso := d.HeadISO(); len(iso) > 0 {
		_, _ = fmt.Fprintf(w, "Head ISO: %s\n", strings.Join(iso, ", "))
	}
	if iso := d.TranslationISO(); len(iso) > 0 {
		_, _ = fmt.Fprintf(w, "Translation ISO: %s\n", strings.Join(iso, ", "))
	}

	return nil
}
