// Package arraykit is a small generic utility library built around a
// rectangular-array toolkit.
//
// 🚀 What is inside?
//
//	• array2d/     — Array[E] container, line extraction, element-wise Map,
//	                  element type conversion, equivalence and diagnostics
//	• array2d/array2dtest/ — testify assertions that compare arrays and
//	                  print them in the < a, b > rendering on failure
//
// ✨ Why arraykit?
//
//   - Generic – one implementation for every element type
//   - Pure – no operation mutates its input; safe to share across goroutines
//   - Explicit – conversions and equality are chosen at the call site
//
// Quick example:
//
//	a, _ := array2d.FromRows([][]int{{1, 2}, {2, 3}, {3, 4}})
//	doubled, _ := array2d.Map(a, func(x int) int { return x * 2 })
//	fmt.Println(doubled) // < < 2, 4 >, < 4, 6 >, < 6, 8 > >
//
//	go get github.com/katalvlaran/arraykit/array2d
package arraykit
