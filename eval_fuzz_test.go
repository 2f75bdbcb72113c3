package crunch_test

import (
	"testing"

	"github.com/zephyrtronium/crunch"
)

func FuzzEvalFloat(f *testing.F) {
	f.Add("x")
	f.Add("x = 5")
	f.Add("2^3^2")
	f.Add("sqrt -4 + x!")
	f.Add("f(a) = a*a")
	f.Fuzz(func(t *testing.T, src string) {
		// Evaluation may error but must not panic.
		crunch.EvalString[crunch.Float](crunch.FloatBackend{}, src, crunch.SetVar("x", crunch.Float(1)))
	})
}
