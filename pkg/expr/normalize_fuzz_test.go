//go:build go1.18
// +build go1.18

package expr_test

import (
	"testing"

	"github.com/charithe/scicalc/pkg/expr"
)

func FuzzNormalize(f *testing.F) {
	f.Add("2×3")
	f.Add("π\u0301")
	f.Add("³√(27)")
	f.Add("sin⁻¹(1)")
	f.Fuzz(func(t *testing.T, s string) {
		once := expr.Normalize(s)
		if twice := expr.Normalize(once); twice != once {
			t.Errorf("Normalize(%q) = %q, but Normalize(%q) = %q", s, once, once, twice)
		}
	})
}
