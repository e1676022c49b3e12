// SPDX-License-Identifier: MIT

package array2d

import (
	"fmt"
	"reflect"
	"strings"
)

// Diagnostic rendering tokens.
const (
	nullToken  = "<null>"
	emptyToken = "<empty>"
	openToken  = "< "
	closeToken = " >"
	sepToken   = ", "
)

// Format renders a for diagnostics:
//
//	nil          -> <null>
//	no elements  -> <empty>
//	2×3          -> < < 1, 2, 3 >, < 4, 5, 6 > >
//
// Elements use %v; nil pointers, maps, slices and interfaces render empty.
func Format[E any](a *Array[E]) string {
	return FormatFunc(a, formatElem[E])
}

// FormatFunc is Format with a caller-supplied element renderer.
// A nil fmtElem falls back to the default %v rendering.
func FormatFunc[E any](a *Array[E], fmtElem func(E) string) string {
	if a == nil {
		return nullToken
	}
	if len(a.data) == 0 {
		return emptyToken
	}
	if fmtElem == nil {
		fmtElem = formatElem[E]
	}

	var sb strings.Builder
	sb.WriteString(openToken)
	for i := 0; i < a.r; i++ {
		if i > 0 {
			sb.WriteString(sepToken)
		}
		writeLine(&sb, a.data[i*a.c:(i+1)*a.c], fmtElem)
	}
	sb.WriteString(closeToken)

	return sb.String()
}

// FormatSlice renders a linear array: nil -> <null>, empty -> <empty>,
// otherwise < 1, 2, 3 >.
func FormatSlice[E any](s []E) string {
	if s == nil {
		return nullToken
	}
	if len(s) == 0 {
		return emptyToken
	}

	var sb strings.Builder
	writeLine(&sb, s, formatElem[E])

	return sb.String()
}

// writeLine appends "< e1, e2, ... >" for one innermost segment.
func writeLine[E any](sb *strings.Builder, line []E, fmtElem func(E) string) {
	sb.WriteString(openToken)
	for k, v := range line {
		if k > 0 {
			sb.WriteString(sepToken)
		}
		sb.WriteString(fmtElem(v))
	}
	sb.WriteString(closeToken)
}

// formatElem renders one element with %v, or "" for an absent (nil) value.
// A Stringer is used as is; other pointers render their pointee.
func formatElem[E any](v E) string {
	if isNil(any(v)) {
		return ""
	}
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return fmt.Sprintf("%v", rv.Elem().Interface())
	}

	return fmt.Sprintf("%v", v)
}

// isNil reports whether x is a nil interface or a nil pointer-like value.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
