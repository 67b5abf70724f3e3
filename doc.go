// Package dcmul is a small toolkit of exact divide-and-conquer multiplication:
// Karatsuba for arbitrarily long decimal integers and Strassen for square
// int64 matrices, each verified against its schoolbook kernel.
//
// 🚀 What is inside?
//
//	digits/    — decimal digit vectors: parse, format, add, subtract, naive multiply
//	karatsuba/ — three-way recursive multiplication of digit vectors and decimal strings
//	matrix/    — row-major square int64 matrices: add, subtract, naive multiply,
//	             quadrant split/merge, power-of-two padding, overflow policy
//	strassen/  — seven-way recursive matrix multiplication with optional fan-out
//
// ✨ Why?
//
//   - Exact results – digit vectors never lose precision; matrix kernels
//     report int64 overflow instead of wrapping silently
//   - Value semantics – every call returns fresh results, inputs are never mutated
//   - Tunable – base-case thresholds and split hooks via functional options
//
// The dcmul command (cmd/dcmul) exposes both engines and a benchmark sweep:
//
//	dcmul mul 12345678901234567890 98765432109876543210
//	dcmul matmul --file pair.yaml --parallel-depth 1
//	dcmul bench strassen --config sweep.yaml
//
//	go get github.com/katalvlaran/dcmul
package dcmul
