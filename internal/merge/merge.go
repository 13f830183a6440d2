// Package merge provides the tree copy and recursive replace logic behind path writes.
//
// Trees handled here are in canonical form: mappings are *orderedmap.OrderedMap
// with string keys, sequences are []any, everything else is a leaf.
package merge

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/arraypath/internal/format"
)

// Replace folds patch into dst and returns the result, mirroring a recursive
// array replace:
//   - a mapping patch merges key by key into a mapping or sequence dst,
//     leaving keys absent from the patch untouched
//   - any other patch (scalar, sequence, nil) replaces dst outright
//
// dst is modified in place; callers pass a copy they own.
func Replace(dst, patch any) any {
	src := format.ToOrderedMapPtr(patch)
	if src == nil {
		return patch
	}

	if seq, ok := dst.([]any); ok {
		return replaceSequence(seq, src)
	}

	target := format.ToOrderedMapPtr(dst)
	if target == nil {
		return src
	}

	for _, k := range src.Keys() {
		v, _ := src.Get(k)
		if cur, exists := target.Get(k); exists {
			target.Set(k, Replace(cur, v))
		} else {
			target.Set(k, v)
		}
	}
	return target
}

// replaceSequence merges index keys into a sequence. In-range keys replace
// elements and the key one past the end appends. Any other key turns the
// sequence into a mapping keyed by index, and merging continues there.
func replaceSequence(seq []any, src *orderedmap.OrderedMap) any {
	keys := src.Keys()
	for i, k := range keys {
		idx, ok := SequenceIndex(k)
		if !ok || idx > len(seq) {
			rest := orderedmap.New()
			for _, rk := range keys[i:] {
				v, _ := src.Get(rk)
				rest.Set(rk, v)
			}
			return Replace(SequenceToMapping(seq), rest)
		}
		v, _ := src.Get(k)
		if idx == len(seq) {
			seq = append(seq, v)
		} else {
			seq[idx] = Replace(seq[idx], v)
		}
	}
	return seq
}

// SequenceIndex reports whether k is the canonical decimal form of an index.
func SequenceIndex(k string) (int, bool) {
	n, err := strconv.Atoi(k)
	if err != nil || n < 0 || strconv.Itoa(n) != k {
		return 0, false
	}
	return n, true
}

// SequenceToMapping re-keys a sequence as a mapping from "0".."n-1".
func SequenceToMapping(seq []any) *orderedmap.OrderedMap {
	m := orderedmap.New()
	for i, v := range seq {
		m.Set(strconv.Itoa(i), v)
	}
	return m
}

// IsContainer reports whether v can be descended into.
func IsContainer(v any) bool {
	if format.ToOrderedMapPtr(v) != nil {
		return true
	}
	_, ok := v.([]any)
	return ok
}

// IsEmpty reports whether v holds no data: nil, or a container without entries.
func IsEmpty(v any) bool {
	if IsNil(v) {
		return true
	}
	if om := format.ToOrderedMapPtr(v); om != nil {
		return len(om.Keys()) == 0
	}
	if seq, ok := v.([]any); ok {
		return len(seq) == 0
	}
	return false
}

// DeepCopy creates a deep copy of a value in canonical form.
// Foreign containers (plain maps, value-typed ordered maps, typed slices)
// are converted on the way; plain map keys are sorted since they carry no order.
func DeepCopy(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case *orderedmap.OrderedMap:
		if val == nil {
			return nil
		}
		return copyOrdered(val)
	case orderedmap.OrderedMap:
		return copyOrdered(&val)
	case map[string]any:
		result := orderedmap.New()
		for _, k := range sortedKeys(val) {
			result.Set(k, DeepCopy(val[k]))
		}
		return result
	case map[any]any:
		plain := make(map[string]any, len(val))
		for k, child := range val {
			plain[fmt.Sprint(k)] = child
		}
		return DeepCopy(plain)
	case []any:
		result := make([]any, len(val))
		for i, child := range val {
			result[i] = DeepCopy(child)
		}
		return result
	case []map[string]any:
		result := make([]any, len(val))
		for i, child := range val {
			result[i] = DeepCopy(child)
		}
		return result
	case string, bool, int, int64, float64:
		return val
	}
	return copyReflect(v)
}

func copyOrdered(om *orderedmap.OrderedMap) *orderedmap.OrderedMap {
	result := orderedmap.New()
	for _, k := range om.Keys() {
		child, _ := om.Get(k)
		result.Set(k, DeepCopy(child))
	}
	return result
}

// copyReflect handles typed maps and slices supplied by Go callers.
// Other values are leaves and returned unchanged.
func copyReflect(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return v
		}
		plain := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			plain[iter.Key().String()] = iter.Value().Interface()
		}
		return DeepCopy(plain)
	case reflect.Slice:
		if rv.IsNil() || rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		result := make([]any, rv.Len())
		for i := range result {
			result[i] = DeepCopy(rv.Index(i).Interface())
		}
		return result
	}
	return v
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsNil checks if v is nil, including typed nil pointers inside interfaces.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
