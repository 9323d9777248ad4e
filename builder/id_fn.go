// SPDX-License-Identifier: MIT
// Package: builder
//
// id_fn.go - deterministic index -> node ID schemes.
//
// IDs must never contain whitespace because the edge-list format splits on
// it; every scheme below satisfies that.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A".
// Panics if idx is out of range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// AlphanumericIDFn returns a base-36 string for idx, e.g. 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Unlike SymbolIDFn it never runs out of labels.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix + decimal index, e.g. "city0", "city1", ...
// Panics if idx < 0.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// IDScheme resolves a scheme name as accepted on the command line:
// "decimal", "alnum" or "excel". ok is false for anything else.
// SymbolIDFn is not offered since it runs out after 26 nodes.
func IDScheme(name string) (fn IDFn, ok bool) {
	switch name {
	case "decimal", "":
		return DefaultIDFn, true
	case "alnum":
		return AlphanumericIDFn, true
	case "excel":
		return ExcelColumnIDFn, true
	default:
		return nil, false
	}
}
