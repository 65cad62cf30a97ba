package eval

import (
	"fmt"
	"math/rand/v2"
	"reflect"

	"github.com/traefik/yaegi/interp"
)

// drawPackage is the import path of the native symbols the prelude uses.
const drawPackage = "fnjudge/draw"

// drawPrelude defines the draw helpers in interpreted Go on top of two native
// primitives, so every helper draws from the runtime's own source.
const drawPrelude = `package main

import "fnjudge/draw"

var bools = []bool{false, true}

func randint(lo, hi int) int {
	if hi < lo {
		panic("randint: empty range")
	}
	return lo + draw.IntN(hi-lo+1)
}

func uniform(lo, hi float64) float64 {
	return lo + draw.Float64()*(hi-lo)
}

func randbool() bool {
	return draw.IntN(2) == 1
}

func choice(xs ...interface{}) interface{} {
	if len(xs) == 0 {
		panic("choice: no options")
	}
	return xs[draw.IntN(len(xs))]
}

func randints(n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = randint(lo, hi)
	}
	return out
}

func randstr(n int, alphabet string) string {
	rs := []rune(alphabet)
	if len(rs) == 0 {
		panic("randstr: empty alphabet")
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = rs[draw.IntN(len(rs))]
	}
	return string(out)
}

func span(lo, hi int) []int {
	return spanStep(lo, hi, 1)
}

func spanStep(lo, hi, step int) []int {
	if step == 0 {
		panic("spanStep: zero step")
	}
	out := []int{}
	for i := lo; (step > 0 && i < hi) || (step < 0 && i > hi); i += step {
		out = append(out, i)
	}
	return out
}
`

// installDraws exports the random primitives bound to r and evaluates the
// prelude into package main.
func (rt *Runtime) installDraws(r *rand.Rand) error {
	err := rt.interp.Use(interp.Exports{
		drawPackage + "/draw": map[string]reflect.Value{
			"IntN":    reflect.ValueOf(r.IntN),
			"Float64": reflect.ValueOf(r.Float64),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to export draw primitives: %w", err)
	}
	if _, err := rt.interp.Eval(drawPrelude); err != nil {
		return fmt.Errorf("failed to install draw helpers: %w", err)
	}
	return nil
}

// NewRand returns the random source used for a given seed.
// Two runtimes built from the same seed draw the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
