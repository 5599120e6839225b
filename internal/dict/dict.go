// Package dict implements the dictionary dataset: a facade over the column
// registry and row store with derived-column expansion, column projection,
// and orthography-profile tokenization.
package dict

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/glottolabs/qlcdict/internal/header"
	"github.com/glottolabs/qlcdict/internal/qlc"
	"github.com/glottolabs/qlcdict/internal/store"
)

var (
	// ErrColumnExists is returned by AddEntry when the target column already
	// exists and Override was not requested.
	ErrColumnExists = errors.New("column already exists")
	// ErrMissingSourceKey is returned when a mapping source lacks a value
	// for one of the dataset's row keys.
	ErrMissingSourceKey = errors.New("source mapping missing row key")
)

// doculect metadata lines are "Name, iso" with optional space after the comma
var doculectSep = regexp.MustCompile(`, ?`)

// Options configures a Dictionary.
type Options struct {
	// Logger receives operational traces; nil discards them
	Logger *slog.Logger
	// StrictProjection makes GetTuples fail on unknown column names instead
	// of silently skipping them
	StrictProjection bool
}

// Dictionary owns one column registry and one row store, initialized from a
// parsed dataset. All mutation goes through AddEntry; reads go through
// GetTuples and Values. Not safe for concurrent use.
type Dictionary struct {
	header *header.Registry
	store  *store.Store
	logger *slog.Logger
	strict bool

	doculectISO    map[string]string
	headISO        []string
	translationISO []string
}

// New builds a Dictionary from a parsed QLC document.
func New(doc *qlc.Document, opts Options) (*Dictionary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	d := &Dictionary{
		header:      header.New(),
		store:       store.New(),
		logger:      logger,
		strict:      opts.StrictProjection,
		doculectISO: make(map[string]string),
	}

	for _, col := range doc.Columns {
		if err := d.header.Register(col.Name, col.Aliases, col.Index); err != nil {
			return nil, fmt.Errorf("failed to register column %q: %w", col.Name, err)
		}
	}
	for _, key := range doc.KeyOrder {
		d.store.Put(key, doc.Rows[key])
	}

	for _, entry := range doc.Meta["doculect"] {
		parts := doculectSep.Split(entry, 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed doculect metadata %q", entry)
		}
		d.doculectISO[parts[0]] = parts[1]
	}
	d.headISO = append(d.headISO, doc.Meta["head_iso"]...)
	d.translationISO = append(d.translationISO, doc.Meta["translation_iso"]...)

	logger.Debug("dictionary initialized",
		"columns", d.header.Len(), "rows", d.store.Len(), "doculects", len(d.doculectISO))

	return d, nil
}

// Entries returns the canonical column names in sorted order.
func (d *Dictionary) Entries() []string {
	return d.header.Entries()
}

// Aliases returns the alias spellings of a column.
func (d *Dictionary) Aliases(name string) ([]string, error) {
	return d.header.Aliases(name)
}

// IndexOf resolves a column name to its index.
func (d *Dictionary) IndexOf(name string) (int, error) {
	return d.header.IndexOf(name)
}

// Len returns the number of rows.
func (d *Dictionary) Len() int {
	return d.store.Len()
}

// Keys returns all row keys in row-store order.
func (d *Dictionary) Keys() []int {
	return d.store.Keys()
}

// DoculectISO returns the doculect label to ISO code mapping built from the
// dataset's header metadata.
func (d *Dictionary) DoculectISO() map[string]string {
	m := make(map[string]string, len(d.doculectISO))
	for k, v := range d.doculectISO {
		m[k] = v
	}
	return m
}

// HeadISO returns the ISO codes associated with the head role.
func (d *Dictionary) HeadISO() []string {
	return append([]string(nil), d.headISO...)
}

// TranslationISO returns the ISO codes associated with the translation role.
func (d *Dictionary) TranslationISO() []string {
	return append([]string(nil), d.translationISO...)
}

// GetTuples projects one or more columns across all rows in row-store order.
// Each returned tuple has one value per resolved column. Unknown column names
// are silently skipped unless the dictionary was created with
// StrictProjection, in which case they fail with header.ErrUnknownColumn.
func (d *Dictionary) GetTuples(columns []string) ([][]any, error) {
	var idxs []int
	for _, col := range columns {
		idx, err := d.header.IndexOf(col)
		if err != nil {
			if d.strict {
				return nil, err
			}
			d.logger.Debug("skipping unknown column in projection", "column", col)
			continue
		}
		idxs = append(idxs, idx)
	}

	if len(idxs) == 0 {
		return nil, nil
	}

	keys := d.store.Keys()
	tuples := make([][]any, 0, len(keys))
	for _, key := range keys {
		row, _ := d.store.Row(key)
		tuple := make([]any, len(idxs))
		for i, idx := range idxs {
			tuple[i] = row[idx]
		}
		tuples = append(tuples, tuple)
	}
	return tuples, nil
}

// Values projects a single column across all rows in row-store order.
func (d *Dictionary) Values(column string) ([]any, error) {
	idx, err := d.header.IndexOf(column)
	if err != nil {
		return nil, err
	}

	keys := d.store.Keys()
	values := make([]any, 0, len(keys))
	for _, key := range keys {
		row, _ := d.store.Row(key)
		values = append(values, row[idx])
	}
	return values, nil
}
