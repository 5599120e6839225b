// Package qlc parses the line-oriented QLC tabular format used by dictionary
// datasets: @key metadata lines, a tab-separated header row, and tab-separated
// data rows keyed by integer IDs in the first cell.
package qlc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Column describes one value column of a parsed dataset.
type Column struct {
	// Name is the canonical lowercase column name
	Name string
	// Aliases are the spellings that resolve to Name
	Aliases []string
	// Index is the column's position in each row's value sequence
	Index int
}

// Document is a parsed QLC dataset: header metadata, the column layout, and
// the row data in file order.
type Document struct {
	// Meta holds @key metadata lines; repeated keys accumulate in file order
	Meta map[string][]string
	// Columns is the value column layout, indexed 0..len-1
	Columns []Column
	// Rows maps row keys to value sequences
	Rows map[int][]any
	// KeyOrder is the file order of row keys
	KeyOrder []int
}

// ParseFile parses a QLC file from disk.
func ParseFile(path string, conf *Conf) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := Parse(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a QLC dataset from r. A nil conf uses the built-in alias table.
func Parse(r io.Reader, conf *Conf) (*Document, error) {
	if conf == nil {
		conf = DefaultConf()
	}

	doc := &Document{
		Meta: make(map[string][]string),
		Rows: make(map[int][]any),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	headerSeen := false

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// @key: value metadata lines; repeated keys accumulate
		if strings.HasPrefix(trimmed, "@") {
			key, value, ok := strings.Cut(trimmed[1:], ":")
			if !ok {
				return nil, fmt.Errorf("line %d: malformed metadata line %q", lineNo, trimmed)
			}
			key = strings.ToLower(strings.TrimSpace(key))
			doc.Meta[key] = append(doc.Meta[key], strings.TrimSpace(value))
			continue
		}

		fields := strings.Split(line, "\t")

		if !headerSeen {
			if err := parseHeader(doc, conf, fields); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			headerSeen = true
			continue
		}

		if err := parseRow(doc, fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning input: %w", err)
	}

	if !headerSeen {
		return nil, fmt.Errorf("no header row found")
	}

	return doc, nil
}

// parseHeader builds the column layout. The first header cell is the row key
// column and is not registered as a value column.
func parseHeader(doc *Document, conf *Conf, fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("header must contain a key column and at least one value column")
	}

	seen := make(map[string]int)
	for i, raw := range fields[1:] {
		name, aliases := conf.canonical(strings.TrimSpace(raw))
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("header columns %d and %d both resolve to %q", prev+1, i+1, name)
		}
		seen[name] = i
		doc.Columns = append(doc.Columns, Column{
			Name:    name,
			Aliases: aliases,
			Index:   i,
		})
	}
	return nil
}

// parseRow adds one data row. Cell text is NFC-normalized so alias lookups
// and tokenization operate on composed forms.
func parseRow(doc *Document, fields []string) error {
	key, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return fmt.Errorf("invalid row key %q: %w", fields[0], err)
	}
	if _, dup := doc.Rows[key]; dup {
		return fmt.Errorf("duplicate row key %d", key)
	}

	want := len(doc.Columns)
	got := len(fields) - 1
	if got != want {
		return fmt.Errorf("row %d: expected %d values, got %d", key, want, got)
	}

	values := make([]any, got)
	for i, cell := range fields[1:] {
		values[i] = norm.NFC.String(cell)
	}

	doc.Rows[key] = values
	doc.KeyOrder = append(doc.KeyOrder, key)
	return nil
}
