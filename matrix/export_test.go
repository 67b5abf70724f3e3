package matrix

// Test-only exports of the checked kernels for the external matrix_test package.
var (
	AddInt64 = addInt64
	SubInt64 = subInt64
	MulInt64 = mulInt64
)
