package dataset

import (
	"math"
	"testing"

	"github.com/varbench/varbench/pkg/errors"
)

func TestEffectEval(t *testing.T) {
	tests := []struct {
		name   string
		effect Effect
		x      float64
		want   float64
	}{
		{
			name:   "Zero effect",
			effect: Effect{},
			x:      1,
			want:   0,
		},
		{
			name:   "Identity",
			effect: Effect{Family: EffectIdentity},
			x:      1,
			want:   1,
		},
		{
			name:   "Linear full scale",
			effect: Effect{Family: EffectLinear, Sign: 1, Scale: 5},
			x:      1,
			want:   1,
		},
		{
			name:   "Linear negative sign",
			effect: Effect{Family: EffectLinear, Sign: -1, Scale: 5},
			x:      1,
			want:   -1,
		},
		{
			name:   "Power",
			effect: Effect{Family: EffectPower, Sign: 1, Scale: 2, Exponent: 2},
			x:      1,
			want:   4.0 / 3125.0,
		},
		{
			name:   "Root",
			effect: Effect{Family: EffectRoot, Sign: 1, Scale: 4, Exponent: 3},
			x:      1,
			want:   math.Sqrt2,
		},
		{
			name:   "Log base n+1",
			effect: Effect{Family: EffectLog, Sign: 1, Scale: 3, Exponent: 1},
			x:      1,
			want:   2, // log2(3*1 + 1)
		},
		{
			name:   "And with operand 1",
			effect: Effect{Family: EffectAnd, Sign: 1, Operand: 1},
			x:      1,
			want:   1,
		},
		{
			name:   "And with operand 0",
			effect: Effect{Family: EffectAnd, Sign: 1, Operand: 0},
			x:      1,
			want:   0,
		},
		{
			name:   "Or at zero",
			effect: Effect{Family: EffectOr, Sign: 1, Operand: 1},
			x:      0,
			want:   1,
		},
		{
			name:   "Xor flips",
			effect: Effect{Family: EffectXor, Sign: 1, Operand: 1},
			x:      1,
			want:   0,
		},
		{
			name:   "Xor at zero",
			effect: Effect{Family: EffectXor, Sign: -1, Operand: 1},
			x:      0,
			want:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.effect.Eval(tt.x)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Eval(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestEffectImportant(t *testing.T) {
	tests := []struct {
		name   string
		effect Effect
		want   bool
	}{
		{"Zero effect", Effect{}, false},
		{"Identity", Effect{Family: EffectIdentity}, true},
		{"Linear", Effect{Family: EffectLinear, Sign: 1, Scale: 3}, true},
		{"And with operand 0 is dead", Effect{Family: EffectAnd, Sign: 1, Operand: 0}, false},
		{"Or with operand 1 nonzero at 0", Effect{Family: EffectOr, Sign: 1, Operand: 1}, true},
		{"Xor with operand 0", Effect{Family: EffectXor, Sign: 1, Operand: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.effect.Important(); got != tt.want {
				t.Errorf("Important() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectMagnitude(t *testing.T) {
	e := Effect{Family: EffectOr, Sign: -1, Operand: 1}
	// f(0) = f(1) = -1, magnitude 1.
	if got := e.Magnitude(); got != 1 {
		t.Errorf("Magnitude() = %v, want 1", got)
	}
}

func TestCatalogFor(t *testing.T) {
	all, err := catalogFor(EffectTypesAll)
	if err != nil {
		t.Fatalf("catalogFor(all) error: %v", err)
	}
	if len(all) != 7 {
		t.Errorf("all catalog has %d families, want 7", len(all))
	}

	lin, err := catalogFor(EffectTypesLinear)
	if err != nil {
		t.Fatalf("catalogFor(linear) error: %v", err)
	}
	if len(lin) != 1 || lin[0] != EffectLinear {
		t.Errorf("linear catalog = %v, want [linear]", lin)
	}

	_, err = catalogFor("polynomial")
	var cfgErr *errors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("catalogFor(polynomial) = %v, want ConfigError", err)
	}
}
