// Package patch applies JSON-Patch style edits to the fixed field set of a transfer shape.
//
// Only single-level paths are meaningful for the flat shapes this service exposes, so the
// interpreter understands "add", "replace" and "remove" on top-level fields and rejects
// everything else. A patch either applies completely or not at all.
package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"villa-api-backend/internal/model"
)

const (
	OpAdd     = "add"
	OpReplace = "replace"
	OpRemove  = "remove"
)

// Operation is one edit instruction.
type Operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// fieldSet maps lower-cased JSON names to struct field indexes.
type fieldSet map[string]int

var fieldSets sync.Map // reflect.Type -> fieldSet

func fieldsOf(t reflect.Type) fieldSet {
	if fs, ok := fieldSets.Load(t); ok {
		return fs.(fieldSet)
	}
	fs := make(fieldSet, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fs[strings.ToLower(name)] = i
	}
	actual, _ := fieldSets.LoadOrStore(t, fs)
	return actual.(fieldSet)
}

// Apply runs ops in order against a copy of doc and returns the result.
// doc must be a struct. Paths naming a field listed in immutable are rejected.
// Every failure wraps model.ErrValidation and leaves doc untouched.
func Apply[T any](doc T, ops []Operation, immutable ...string) (T, error) {
	out := doc
	rv := reflect.ValueOf(&out).Elem()
	if rv.Kind() != reflect.Struct {
		return doc, fmt.Errorf("%w: patch target must be a struct, got %s", model.ErrValidation, rv.Kind())
	}
	fields := fieldsOf(rv.Type())

	locked := make(map[string]bool, len(immutable))
	for _, name := range immutable {
		locked[strings.ToLower(name)] = true
	}

	for i, op := range ops {
		name, err := parsePath(op.Path)
		if err != nil {
			return doc, fmt.Errorf("%w: operation %d: %w", model.ErrValidation, i, err)
		}
		idx, ok := fields[name]
		if !ok {
			return doc, fmt.Errorf("%w: operation %d: unknown path %q", model.ErrValidation, i, op.Path)
		}
		if locked[name] {
			return doc, fmt.Errorf("%w: operation %d: path %q cannot be patched", model.ErrValidation, i, op.Path)
		}
		field := rv.Field(idx)

		switch strings.ToLower(op.Op) {
		case OpAdd, OpReplace:
			if len(bytes.TrimSpace(op.Value)) == 0 {
				return doc, fmt.Errorf("%w: operation %d: %s %q requires a value", model.ErrValidation, i, op.Op, op.Path)
			}
			v := reflect.New(field.Type())
			if err := json.Unmarshal(op.Value, v.Interface()); err != nil {
				return doc, fmt.Errorf("%w: operation %d: value for %q: %w", model.ErrValidation, i, op.Path, err)
			}
			field.Set(v.Elem())
		case OpRemove:
			field.Set(reflect.Zero(field.Type()))
		default:
			return doc, fmt.Errorf("%w: operation %d: unsupported op %q", model.ErrValidation, i, op.Op)
		}
	}
	return out, nil
}

// parsePath turns "/name" into "name", unescaping JSON Pointer sequences.
func parsePath(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("path %q must start with /", path)
	}
	token := path[1:]
	if token == "" || strings.Contains(token, "/") {
		return "", fmt.Errorf("path %q must address a single field", path)
	}
	token = strings.NewReplacer("~1", "/", "~0", "~").Replace(token)
	return strings.ToLower(token), nil
}
