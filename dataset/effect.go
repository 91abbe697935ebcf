package dataset

import (
	"fmt"
	"math"

	"github.com/varbench/varbench/pkg/errors"
)

// Parameter ranges for synthesized effects. Scales and exponents are drawn
// from [1, ScaleRange] and [1, ExponentRange]; the linear and power families
// divide by the range so contributions stay comparable across families.
const (
	ScaleRange    = 5
	ExponentRange = 5
)

// EffectFamily identifies one of the parametric transform families.
type EffectFamily int

const (
	// EffectZero contributes nothing to the target. Every column that is
	// not important carries the zero effect.
	EffectZero EffectFamily = iota
	// EffectIdentity passes the column value through unchanged.
	EffectIdentity
	// EffectLinear is sign * c * x / ScaleRange.
	EffectLinear
	// EffectPower is sign * (c*x)^n / ScaleRange^ExponentRange.
	EffectPower
	// EffectRoot is sign * (c*x)^(1/(n+1)).
	EffectRoot
	// EffectLog is sign * log(|c|*x + 1) in base n+1.
	EffectLog
	// EffectAnd is sign * (x AND i).
	EffectAnd
	// EffectOr is sign * (x OR i).
	EffectOr
	// EffectXor is sign * (x XOR i).
	EffectXor
)

// String returns the family name.
func (f EffectFamily) String() string {
	switch f {
	case EffectZero:
		return "zero"
	case EffectIdentity:
		return "identity"
	case EffectLinear:
		return "linear"
	case EffectPower:
		return "power"
	case EffectRoot:
		return "root"
	case EffectLog:
		return "log"
	case EffectAnd:
		return "and"
	case EffectOr:
		return "or"
	case EffectXor:
		return "xor"
	default:
		return fmt.Sprintf("EffectFamily(%d)", int(f))
	}
}

// Effect is a parametric scalar transform mapping a binary column value to
// its contribution to the target. Effects are plain tagged values rather
// than closures so they can be compared, logged, and serialized in test
// fixtures; Eval dispatches on the family tag.
//
// The zero value is the zero effect.
type Effect struct {
	Family   EffectFamily `json:"family"`
	Sign     float64      `json:"sign"`
	Scale    float64      `json:"scale"`
	Exponent float64      `json:"exponent"`
	Operand  int          `json:"operand"` // second input for the boolean families
}

// Eval applies the effect to a column value. Inputs are defined at least at
// {0, 1}; boolean families truncate x to an integer first.
func (e Effect) Eval(x float64) float64 {
	switch e.Family {
	case EffectZero:
		return 0
	case EffectIdentity:
		return x
	case EffectLinear:
		return e.Sign * e.Scale * x / ScaleRange
	case EffectPower:
		return e.Sign * math.Pow(e.Scale*x, e.Exponent) / math.Pow(ScaleRange, ExponentRange)
	case EffectRoot:
		return e.Sign * math.Pow(e.Scale*x, 1/(e.Exponent+1))
	case EffectLog:
		return e.Sign * math.Log(math.Abs(e.Scale)*x+1) / math.Log(e.Exponent+1)
	case EffectAnd:
		return e.Sign * float64(int(x)&e.Operand)
	case EffectOr:
		return e.Sign * float64(int(x)|e.Operand)
	case EffectXor:
		return e.Sign * float64(int(x)^e.Operand)
	default:
		return 0
	}
}

// Important reports whether the effect contributes to the target: a column
// is important iff its effect is nonzero at 0 or at 1.
func (e Effect) Important() bool {
	return e.Eval(0) != 0 || e.Eval(1) != 0
}

// Magnitude is the scaled ground-truth importance of the effect,
// max(|f(0)|, |f(1)|).
func (e Effect) Magnitude() float64 {
	return math.Max(math.Abs(e.Eval(0)), math.Abs(e.Eval(1)))
}

// Effect type catalogs selectable through WithEffectTypes.
const (
	// EffectTypesAll draws from all seven parametric families.
	EffectTypesAll = "all"
	// EffectTypesLinear restricts synthesis to the linear family.
	EffectTypesLinear = "linear"
	// EffectTypesConstant replaces the catalog with the identity transform.
	EffectTypesConstant = "constant"
)

// catalogFor resolves an effect-types name to the families the synthesizer
// draws from.
func catalogFor(types string) ([]EffectFamily, error) {
	switch types {
	case EffectTypesAll:
		return []EffectFamily{
			EffectLinear, EffectPower, EffectRoot, EffectLog,
			EffectAnd, EffectOr, EffectXor,
		}, nil
	case EffectTypesLinear:
		return []EffectFamily{EffectLinear}, nil
	case EffectTypesConstant:
		return []EffectFamily{EffectIdentity}, nil
	default:
		return nil, errors.NewConfigError("effect_types", types,
			EffectTypesAll, EffectTypesLinear, EffectTypesConstant)
	}
}
