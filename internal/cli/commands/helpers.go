package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/glottolabs/qlcdict/internal/config"
	"github.com/glottolabs/qlcdict/internal/dict"
	"github.com/glottolabs/qlcdict/internal/ortho"
	"github.com/glottolabs/qlcdict/internal/qlc"
)

// loadDictionary parses the dataset at path into a Dictionary using the
// command's configuration.
func loadDictionary(cmd *cobra.Command, path string) (*dict.Dictionary, error) {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	logger := GetLogger(ctx)

	var conf *qlc.Conf
	if cfg.Conf != "" {
		var err error
		conf, err = qlc.LoadConf(cfg.Conf)
		if err != nil {
			return nil, fmt.Errorf("failed to load alias conf: %w", err)
		}
	}

	doc, err := qlc.ParseFile(path, conf)
	if err != nil {
		return nil, err
	}

	return dict.New(doc, dict.Options{
		Logger:           logger,
		StrictProjection: cfg.Projection.Strict,
	})
}

// loadProfile resolves an orthography profile by path or by name under the
// configured profiles directory. An empty name selects the grapheme-cluster
// fallback (nil profile).
func loadProfile(cfg *config.Config, name string) (*ortho.Profile, error) {
	if name == "" {
		return nil, nil
	}

	if _, err := os.Stat(name); err == nil {
		return ortho.LoadProfile(name)
	}

	candidate := name
	if filepath.Ext(candidate) == "" {
		candidate += ".prf"
	}
	return ortho.LoadProfile(filepath.Join(cfg.ProfilesDir, candidate))
}

// columnValues projects a single column into one-value rows for rendering.
func columnValues(d *dict.Dictionary, column string) ([][]any, error) {
	values, err := d.Values(column)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = []any{v}
	}
	return rows, nil
}
