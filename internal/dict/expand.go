package dict

import (
	"fmt"
	"strings"
)

// AddOptions configures AddEntry.
type AddOptions struct {
	// Override replaces the values of an existing column in place instead of
	// creating a new one. The column's index and alias set are untouched.
	Override bool
	// Params are passed through to the transform in Input.Options.
	Params map[string]any
}

// AddEntry derives a new column named name by applying fn to src for every
// row, or replaces an existing column's values when Override is set.
//
// An empty name is a no-op, reported through the logger. Override on a
// column that does not exist yet falls back to a plain create. Creating a
// column that already exists without Override fails with ErrColumnExists;
// the caller decides whether to re-invoke with Override set.
//
// All source resolution and every transform application happen before any
// store mutation, so a failing call leaves the dataset unchanged.
func (d *Dictionary) AddEntry(name string, src Source, fn TransformFunc, opts AddOptions) error {
	if name == "" {
		d.logger.Warn("entry name not specified, skipping")
		return nil
	}

	exists := d.header.Has(name)

	// Override is meaningless for a column that does not exist yet.
	if opts.Override && !exists {
		d.logger.Debug("override requested for unknown column, creating instead", "column", name)
		opts.Override = false
	}

	if exists && !opts.Override {
		return fmt.Errorf("%w: %q", ErrColumnExists, name)
	}

	staged, err := d.applyTransform(src, fn, opts.Params)
	if err != nil {
		return fmt.Errorf("failed to derive column %q: %w", name, err)
	}

	keys := d.store.Keys()
	if opts.Override {
		idx, err := d.header.IndexOf(name)
		if err != nil {
			return err
		}
		for i, key := range keys {
			if err := d.store.Set(key, idx, staged[i]); err != nil {
				return err
			}
		}
		d.logger.Debug("column replaced", "column", name, "index", idx, "rows", len(keys))
		return nil
	}

	idx := d.header.NextIndex()
	if err := d.header.Register(strings.ToLower(name), nil, idx); err != nil {
		return err
	}
	for i, key := range keys {
		d.store.Append(key, staged[i])
	}
	d.logger.Debug("column created", "column", name, "index", idx, "rows", len(keys))
	return nil
}

// applyTransform resolves the source and computes the derived value for every
// row, in row-store order, without touching the store.
func (d *Dictionary) applyTransform(src Source, fn TransformFunc, params map[string]any) ([]any, error) {
	keys := d.store.Keys()
	staged := make([]any, len(keys))

	switch src.kind {
	case sourceColumns:
		idxs := make([]int, len(src.names))
		for i, n := range src.names {
			idx, err := d.header.IndexOf(n)
			if err != nil {
				return nil, err
			}
			idxs[i] = idx
		}
		for i, key := range keys {
			row, _ := d.store.Row(key)
			v, err := fn(Input{Key: key, Row: row, Indices: idxs, Options: params})
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", key, err)
			}
			staged[i] = v
		}

	case sourceMapping:
		// Validate the whole mapping before applying anything.
		for _, key := range keys {
			if _, ok := src.mapping[key]; !ok {
				return nil, fmt.Errorf("%w: %d", ErrMissingSourceKey, key)
			}
		}
		for i, key := range keys {
			v, err := fn(Input{Key: key, Value: src.mapping[key], Options: params})
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", key, err)
			}
			staged[i] = v
		}

	case sourceColumn:
		idx, err := d.header.IndexOf(src.name)
		if err != nil {
			return nil, err
		}
		for i, key := range keys {
			row, _ := d.store.Row(key)
			v, err := fn(Input{Key: key, Value: row[idx], Options: params})
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", key, err)
			}
			staged[i] = v
		}

	default:
		return nil, fmt.Errorf("unsupported source kind %d", src.kind)
	}

	return staged, nil
}
