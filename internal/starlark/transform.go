// Package starlark compiles user-supplied Starlark expressions into
// dictionary entry transforms. The expression is evaluated once per row with
// the row's source data bound as globals.
package starlark

import (
	"errors"
	"fmt"
	"strings"

	"go.starlark.net/starlark"

	"github.com/glottolabs/qlcdict/internal/dict"
)

// Transform compiles expr into a transform function. The expression sees the
// globals "value" (single-column and mapping sources), "row" and "indices"
// (multi-column sources), "key", and "options", and must evaluate to the
// derived cell value.
func Transform(expr string) (dict.TransformFunc, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New("empty transform expression")
	}

	return func(in dict.Input) (any, error) {
		globals, err := inputGlobals(in)
		if err != nil {
			return nil, err
		}

		thread := &starlark.Thread{
			Name: "derive",
			Print: func(_ *starlark.Thread, _ string) {
				// No-op for expression evaluation
			},
		}

		v, err := starlark.Eval(thread, "<expr>", expr, globals) //nolint:staticcheck // SA1019: will migrate to EvalOptions later
		if err != nil {
			return nil, fmt.Errorf("expression failed: %w", err)
		}
		return ToGo(v)
	}, nil
}

// inputGlobals binds a transform input as Starlark globals.
func inputGlobals(in dict.Input) (starlark.StringDict, error) {
	value, err := GoToStarlark(in.Value)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}

	row := make([]starlark.Value, len(in.Row))
	for i, cell := range in.Row {
		sv, err := GoToStarlark(cell)
		if err != nil {
			return nil, fmt.Errorf("row cell %d: %w", i, err)
		}
		row[i] = sv
	}

	indices := make([]starlark.Value, len(in.Indices))
	for i, idx := range in.Indices {
		indices[i] = starlark.MakeInt(idx)
	}

	options := starlark.NewDict(len(in.Options))
	for k, v := range in.Options {
		sv, err := GoToStarlark(v)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", k, err)
		}
		if err := options.SetKey(starlark.String(k), sv); err != nil {
			return nil, fmt.Errorf("option %q: %w", k, err)
		}
	}

	return starlark.StringDict{
		"key":     starlark.MakeInt(in.Key),
		"value":   value,
		"row":     starlark.NewList(row),
		"indices": starlark.NewList(indices),
		"options": options,
	}, nil
}
