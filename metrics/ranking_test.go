package metrics

import (
	"math"
	"testing"

	"github.com/varbench/varbench/pkg/errors"
)

func TestSpearmanR(t *testing.T) {
	tests := []struct {
		name    string
		a       []float64
		b       []float64
		want    float64
		wantErr bool
	}{
		{
			name: "Perfect agreement",
			a:    []float64{1, 2, 3, 4, 5},
			b:    []float64{10, 20, 30, 40, 50},
			want: 1.0,
		},
		{
			name: "Perfect inversion",
			a:    []float64{1, 2, 3, 4, 5},
			b:    []float64{5, 4, 3, 2, 1},
			want: -1.0,
		},
		{
			name: "Monotone transform is invisible to ranks",
			a:    []float64{1, 4, 9, 16},
			b:    []float64{1, 2, 3, 4},
			want: 1.0,
		},
		{
			name: "Average ranks over ties",
			a:    []float64{1, 2, 2, 3},
			b:    []float64{1, 2, 3, 4},
			want: 0.9486832980505138, // 1.5/sqrt(2.5)
		},
		{
			name:    "Constant input is degenerate",
			a:       []float64{1, 1, 1},
			b:       []float64{1, 2, 3},
			wantErr: true,
		},
		{
			name:    "Single element is degenerate",
			a:       []float64{1},
			b:       []float64{2},
			wantErr: true,
		},
		{
			name:    "Length mismatch",
			a:       []float64{1, 2, 3},
			b:       []float64{1, 2},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SpearmanR(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SpearmanR() = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("SpearmanR() error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SpearmanR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpearmanRDegenerateSentinel(t *testing.T) {
	_, err := SpearmanR([]float64{2, 2, 2}, []float64{1, 2, 3})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("constant input error = %v, want ErrDegenerate", err)
	}

	_, err = SpearmanR([]float64{1, 2, 3}, []float64{1, 2})
	if errors.Is(err, ErrDegenerate) {
		t.Error("length mismatch should not be classified as degenerate")
	}
}

func TestRankdata(t *testing.T) {
	got := rankdata([]float64{3, 1, 4, 1, 5})
	want := []float64{3, 1.5, 4, 1.5, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rankdata[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
