// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// TableWidth is the number of entries written per row by LUTSource.
const TableWidth = 32

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// LUTSource renders n Vector3f entries as a C++ table literal in the shape
// the converter reads, with TableWidth entries per brace-delimited row.
// fn supplies the components of entry i.
func LUTSource(n int, fn func(i int) (x, y, z float64)) string {
	var b strings.Builder
	rows := (n + TableWidth - 1) / TableWidth
	fmt.Fprintf(&b, "const Vector3f SheenLTC::_ltcParamTableApprox[%d][%d] = {\n", rows, TableWidth)
	for i := 0; i < n; i++ {
		if i%TableWidth == 0 {
			b.WriteString("    {\n")
		}
		x, y, z := fn(i)
		fmt.Fprintf(&b, "        Vector3f(%s, %s, %s),\n", formatFloat(x), formatFloat(y), formatFloat(z))
		if i%TableWidth == TableWidth-1 || i == n-1 {
			b.WriteString("    },\n")
		}
	}
	b.WriteString("};\n")
	return b.String()
}

// Ramp is an fn for LUTSource whose channels are x = i/1023, y = 1 - x and
// z = the column index within the row.
func Ramp(i int) (x, y, z float64) {
	v := float64(i) / 1023
	return v, 1 - v, float64(i % TableWidth)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
