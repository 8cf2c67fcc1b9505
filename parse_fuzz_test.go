//go:build go1.18
// +build go1.18

package crunch_test

import (
	"testing"

	"github.com/crunchlang/crunch"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2*3")
	f.Add("(2+3)*4")
	f.Add("#ff~2.")
	f.Add("((((1+1))))")
	f.Fuzz(func(t *testing.T, s string) {
		crunch.ParseString(s)
	})
}
