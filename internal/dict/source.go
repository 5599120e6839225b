package dict

import "strings"

type sourceKind int

const (
	sourceColumn sourceKind = iota
	sourceColumns
	sourceMapping
)

// Source names the data a derived column is computed from. It is a tagged
// variant: a single column, several columns, or an externally supplied
// key-to-value mapping.
type Source struct {
	kind    sourceKind
	name    string
	names   []string
	mapping map[int]any
}

// Column sources the transform from one existing column.
func Column(name string) Source {
	return Source{kind: sourceColumn, name: name}
}

// Columns sources the transform from several existing columns. The transform
// receives the full row and the resolved indices.
func Columns(names ...string) Source {
	return Source{kind: sourceColumns, names: names}
}

// Mapping sources the transform from externally supplied per-key values.
// Every row key of the dataset must be present in the mapping.
func Mapping(values map[int]any) Source {
	return Source{kind: sourceMapping, mapping: values}
}

// ParseSource interprets the comma-separated column convention used by
// dataset files and the CLI: "head" is a single-column source,
// "head,translation" a multi-column one.
func ParseSource(s string) Source {
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return Columns(parts...)
	}
	return Column(strings.TrimSpace(s))
}

// Input carries the per-row data handed to a transform. Which fields are set
// depends on the source kind: single-column and mapping sources set Value,
// multi-column sources set Row and Indices. Key and Options are always set.
type Input struct {
	// Key is the row key being transformed
	Key int
	// Value is the source value for single-column and mapping sources
	Value any
	// Row is the full value sequence for multi-column sources
	Row []any
	// Indices are the resolved column indices for multi-column sources
	Indices []int
	// Options are caller-supplied parameters passed through AddEntry
	Options map[string]any
}

// TransformFunc computes one derived cell value from its input.
type TransformFunc func(in Input) (any, error)
