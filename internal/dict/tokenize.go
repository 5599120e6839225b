package dict

import (
	"fmt"
	"strings"
)

// TokensColumn is the reserved target name that makes Tokenize store token
// sequences instead of the tokenizer's joined-string output.
const TokensColumn = "tokens"

// Tokenizer is the opaque tokenizer capability Tokenize wraps. Satisfied by
// *ortho.Tokenizer.
type Tokenizer interface {
	Tokenize(s string) string
}

// TokenizeOptions configures Tokenize. Zero values select the defaults:
// source "head", target "tokens".
type TokenizeOptions struct {
	// Source is the column whose raw strings are tokenized
	Source string
	// Target is the column the result is stored under
	Target string
	// Override replaces an existing target column in place
	Override bool
}

// Tokenize derives a column from tok's segmentation of the source column.
// When the target is the reserved name "tokens" the new column holds token
// sequences ([]string); for any other target it holds the tokenizer's native
// space-joined output.
func (d *Dictionary) Tokenize(tok Tokenizer, opts TokenizeOptions) error {
	source := opts.Source
	if source == "" {
		source = "head"
	}
	target := opts.Target
	if target == "" {
		target = TokensColumn
	}

	var fn TransformFunc
	if strings.ToLower(target) == TokensColumn {
		fn = func(in Input) (any, error) {
			return strings.Split(tok.Tokenize(asString(in.Value)), " "), nil
		}
	} else {
		fn = func(in Input) (any, error) {
			return tok.Tokenize(asString(in.Value)), nil
		}
	}

	d.logger.Debug("tokenizing", "source", source, "target", target)
	return d.AddEntry(target, Column(source), fn, AddOptions{Override: opts.Override})
}

// asString renders a cell value for tokenization.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, " ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
