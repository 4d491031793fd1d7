// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"bytes"
	"encoding/json"
)

// Equal reports whether a and b serialise to structurally equal JSON trees.
//
// Two values are equal when they are primitively equal, or objects with the
// same key set whose values are recursively equal (key order is ignored), or
// arrays of the same length whose elements are pairwise equal.
//
// The comparison runs on the persisted form so that the dirty flag agrees
// with what a save would actually write.
func Equal(a, b *AppContent) bool {
	if a == nil || b == nil {
		return a == b
	}

	left, err := toTree(a)
	if err != nil {
		return false
	}
	right, err := toTree(b)
	if err != nil {
		return false
	}
	return TreeEqual(left, right)
}

// TreeEqual compares two decoded JSON values.
func TreeEqual(a, b any) bool {
	switch left := a.(type) {
	case nil:
		return b == nil

	case bool:
		right, ok := b.(bool)
		return ok && left == right

	case string:
		right, ok := b.(string)
		return ok && left == right

	case json.Number:
		right, ok := b.(json.Number)
		if !ok {
			return false
		}
		if left == right {
			return true
		}
		lf, lerr := left.Float64()
		rf, rerr := right.Float64()
		return lerr == nil && rerr == nil && lf == rf

	case []any:
		right, ok := b.([]any)
		if !ok || len(left) != len(right) {
			return false
		}
		for index := range left {
			if !TreeEqual(left[index], right[index]) {
				return false
			}
		}
		return true

	case map[string]any:
		right, ok := b.(map[string]any)
		if !ok || len(left) != len(right) {
			return false
		}
		for key, value := range left {
			other, present := right[key]
			if !present || !TreeEqual(value, other) {
				return false
			}
		}
		return true
	}

	return false
}

func toTree(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var tree any
	if err := decoder.Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}
