// Package jsonpatch computes RFC 6902 patches between decoded JSON documents.
package jsonpatch

import (
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
)

type Operation struct {
	Op    string
	Path  string
	Value any
}

// MarshalJSON writes the value member for add and replace only, even when it is null.
func (o Operation) MarshalJSON() ([]byte, error) {
	if o.Op == OpRemove {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{o.Op, o.Path})
	}
	return json.Marshal(struct {
		Op    string `json:"op"`
		Path  string `json:"path"`
		Value any    `json:"value"`
	}{o.Op, o.Path, o.Value})
}

// Diff returns the operations that turn a into b. Both must be the result of decoding JSON into
// an `any`; path is "" for the document root. Object keys are visited in sorted order so the
// same inputs always yield the same patch. The result is never nil.
func Diff(a, b any, path string) []Operation {
	ops := []Operation{}
	return diff(ops, a, b, path)
}

func diff(ops []Operation, a, b any, path string) []Operation {
	switch av := a.(type) {
	case map[string]any:
		if bv, ok := b.(map[string]any); ok {
			return diffObjects(ops, av, bv, path)
		}
	case []any:
		if bv, ok := b.([]any); ok {
			return diffArrays(ops, av, bv, path)
		}
	default:
		if !isContainer(b) && a == b {
			return ops
		}
	}
	return append(ops, Operation{Op: OpReplace, Path: path, Value: b})
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

func diffObjects(ops []Operation, a, b map[string]any, path string) []Operation {
	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, Operation{Op: OpRemove, Path: path + "/" + escapeKey(k)})
		}
	}

	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, Operation{Op: OpAdd, Path: childPath, Value: b[k]})
			continue
		}
		ops = diff(ops, av, b[k], childPath)
	}

	return ops
}

func diffArrays(ops []Operation, a, b []any, path string) []Operation {
	common := min(len(a), len(b))

	for i := 0; i < common; i++ {
		ops = diff(ops, a[i], b[i], path+"/"+strconv.Itoa(i))
	}

	// Remove from the end so earlier indexes stay valid.
	for i := len(a) - 1; i >= common; i-- {
		ops = append(ops, Operation{Op: OpRemove, Path: path + "/" + strconv.Itoa(i)})
	}

	for i := common; i < len(b); i++ {
		ops = append(ops, Operation{Op: OpAdd, Path: path + "/" + strconv.Itoa(i), Value: b[i]})
	}

	return ops
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
