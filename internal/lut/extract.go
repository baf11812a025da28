package lut

import (
	"regexp"
	"strconv"
)

// ConstructorName is the only call recognised by Extract.
const ConstructorName = "Vector3f"

var (
	constructorRE = regexp.MustCompile(ConstructorName + `\s*\(\s*([^)]*?)\s*\)`)
	numberRE      = regexp.MustCompile(`[-+]?\d*\.\d+(?:[eE][-+]?\d+)?|[-+]?\d+`)
)

// Extract returns a Triple for every Vector3f(...) call in text, in source
// order. The first three numeric literals in each argument list become X, Y
// and Z; calls with fewer than three literals are skipped. The surrounding
// C++ is not checked.
func Extract(text string) []Triple {
	calls := constructorRE.FindAllStringSubmatch(text, -1)
	triples := make([]Triple, 0, len(calls))
	for _, call := range calls {
		nums := numberRE.FindAllString(call[1], 3)
		if len(nums) < 3 {
			continue
		}
		triples = append(triples, Triple{
			X: parseNumber(nums[0]),
			Y: parseNumber(nums[1]),
			Z: parseNumber(nums[2]),
		})
	}
	return triples
}

// parseNumber converts a literal matched by numberRE. Literals too large for
// a float64 saturate to ±Inf.
func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
