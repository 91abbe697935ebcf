package dataset

import (
	"math/rand/v2"
)

// synthesizeEffects draws one parameterized effect for every important
// variable and leaves the zero effect everywhere else.
//
// The caller passes the auxiliary stream freshly reseeded from the stored
// seed, so a fixed seed and important set always produce the same effects
// no matter what has been sampled elsewhere.
func synthesizeEffects(rng *rand.Rand, numCols int, important []int, catalog []EffectFamily, monotonic bool) []Effect {
	effects := make([]Effect, numCols)

	for _, col := range important {
		family := catalog[rng.IntN(len(catalog))]
		n := float64(1 + rng.IntN(ExponentRange))
		c := float64(1 + rng.IntN(ScaleRange))
		operand := rng.IntN(2)

		// The sign draw happens unconditionally so the stream advances the
		// same way whether or not monotonicity is requested.
		sign := float64(1)
		if rng.IntN(2) == 0 {
			sign = -1
		}
		if monotonic {
			sign = 1
		}

		effects[col] = Effect{
			Family:   family,
			Sign:     sign,
			Scale:    c,
			Exponent: n,
			Operand:  operand,
		}
	}

	return effects
}

// importantColumns returns the columns whose effect is nonzero at 0 or 1,
// in ascending order. This is recomputed after override merging, so a
// user-supplied effect can promote a column to important (or demote one by
// overriding it with the zero effect).
func importantColumns(effects []Effect) []int {
	var important []int
	for col, effect := range effects {
		if effect.Important() {
			important = append(important, col)
		}
	}
	return important
}
