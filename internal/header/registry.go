// Package header provides the alias-aware column registry for dictionary
// datasets. Every column (entry-type) has one canonical lowercase name, a set
// of alias spellings that all resolve to it, and an integer index into each
// row's value sequence.
package header

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownColumn is returned when a name matches no registered alias.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrDuplicateColumn is returned when registering a canonical name that
	// is already present.
	ErrDuplicateColumn = errors.New("duplicate column")
)

// Registry is a bidirectional mapping between canonical column names, their
// alias variants, and integer column indices. Alias lookup is
// case-insensitive. The index is stored per canonical name only, so every
// alias of a name resolves to the same index by construction.
type Registry struct {
	// byAlias maps case-folded alias spellings to canonical names
	byAlias map[string]string

	// aliases maps canonical names to their registered alias spellings
	aliases map[string][]string

	// index maps canonical names to column indices
	index map[string]int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byAlias: make(map[string]string),
		aliases: make(map[string][]string),
		index:   make(map[string]int),
	}
}

// Resolve returns the canonical name for any recognized alias spelling.
func (r *Registry) Resolve(name string) (string, error) {
	canonical, ok := r.byAlias[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return canonical, nil
}

// IndexOf resolves name to its column index.
func (r *Registry) IndexOf(name string) (int, error) {
	canonical, err := r.Resolve(name)
	if err != nil {
		return 0, err
	}
	return r.index[canonical], nil
}

// Has reports whether name resolves to a registered column.
func (r *Registry) Has(name string) bool {
	_, ok := r.byAlias[strings.ToLower(name)]
	return ok
}

// Register binds a new canonical name and its alias set to index. The
// canonical name is case-folded. If aliases is empty, a default pair
// {lower(name), upper(name)} is synthesized so every column is referenceable
// by at least two spellings.
func (r *Registry) Register(canonical string, aliases []string, index int) error {
	canonical = strings.ToLower(canonical)
	if _, exists := r.index[canonical]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, canonical)
	}

	if len(aliases) == 0 {
		aliases = []string{canonical, strings.ToUpper(canonical)}
	}

	r.index[canonical] = index
	r.aliases[canonical] = append([]string(nil), aliases...)

	// The canonical name itself is always resolvable, whether or not the
	// caller listed it among the aliases.
	r.byAlias[canonical] = canonical
	for _, a := range aliases {
		r.byAlias[strings.ToLower(a)] = canonical
	}

	return nil
}

// NextIndex returns the index a newly created column would receive:
// max(existing indices) + 1, or 0 when the registry is empty.
func (r *Registry) NextIndex() int {
	next := 0
	for _, idx := range r.index {
		if idx >= next {
			next = idx + 1
		}
	}
	return next
}

// Aliases returns the alias spellings registered for name.
func (r *Registry) Aliases(name string) ([]string, error) {
	canonical, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), r.aliases[canonical]...), nil
}

// Entries returns all canonical names in sorted order for deterministic
// enumeration.
func (r *Registry) Entries() []string {
	entries := make([]string, 0, len(r.index))
	for name := range r.index {
		entries = append(entries, name)
	}
	sort.Strings(entries)
	return entries
}

// Len returns the number of registered canonical columns.
func (r *Registry) Len() int {
	return len(r.index)
}
