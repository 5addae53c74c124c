package fx

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// identityEntries returns the identity permutation as a slice for diffing.
func identityEntries() []uint8 {
	out := make([]uint8, 256)
	for i := range out {
		out[i] = uint8(i)
	}
	return out
}

func TestCompileTableIdentity(t *testing.T) {
	tests := []struct {
		name string
		fn   Transfer
	}{
		{"nil", nil},
		{"Identity", &Identity{}},
		{"TableTooFewPoints", &Table{Values: []float64{0.7}}},
		{"TableEmpty", &Table{}},
		{"DiscreteEmpty", &Discrete{}},
		{"TableUnitRamp", &Table{Values: []float64{0.0, 1.0}}},
		{"LinearUnit", &Linear{Slope: 1, Intercept: 0}},
		{"GammaUnit", &Gamma{Amplitude: 1, Exponent: 1, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := compileTable(tt.fn)
			if diff := cmp.Diff(identityEntries(), table[:]); diff != "" {
				t.Errorf("table is not the identity permutation (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileTableDiscreteSingleStep(t *testing.T) {
	table := compileTable(&Discrete{Values: []float64{0.5}})
	for i := 0; i < 256; i++ {
		if table[i] != 128 {
			t.Fatalf("table[%d] = %d, want 128", i, table[i])
		}
	}
}

func TestCompileTableLinearConstant(t *testing.T) {
	table := compileTable(&Linear{Slope: 0, Intercept: 128})
	for i := 0; i < 256; i++ {
		if table[i] != 128 {
			t.Fatalf("table[%d] = %d, want 128", i, table[i])
		}
	}
}

func TestCompileTableLinearClamps(t *testing.T) {
	tests := []struct {
		name string
		fn   *Linear
		in   int
		want uint8
	}{
		{"AboveRange", &Linear{Slope: 2, Intercept: 0}, 200, 255},
		{"BelowRange", &Linear{Slope: 1, Intercept: -100}, 50, 0},
		{"Midpoint", &Linear{Slope: 0.5, Intercept: 64}, 0, 64},
		{"Rounding", &Linear{Slope: 0.5, Intercept: 0}, 3, 2}, // round(1.5) = 2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := compileTable(tt.fn)
			if got := table[tt.in]; got != tt.want {
				t.Errorf("table[%d] = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// TestCompileTableEndpoints checks that every variant matches its
// closed-form formula at x=0 and x=1.
func TestCompileTableEndpoints(t *testing.T) {
	tests := []struct {
		name      string
		fn        Transfer
		want0     uint8
		want255   uint8
	}{
		{"Table", &Table{Values: []float64{0.2, 0.4, 0.9}}, 51, 230},
		{"Discrete", &Discrete{Values: []float64{0.2, 0.8}}, 51, 204},
		{"Linear", &Linear{Slope: 0.25, Intercept: 10}, 10, 74},  // round(0.25*255+10)
		{"Gamma", &Gamma{Amplitude: 0.5, Exponent: 2, Offset: 16}, 16, 144}, // 0.5*255+16 = 143.5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := compileTable(tt.fn)
			if table[0] != tt.want0 {
				t.Errorf("table[0] = %d, want %d", table[0], tt.want0)
			}
			if table[255] != tt.want255 {
				t.Errorf("table[255] = %d, want %d", table[255], tt.want255)
			}
		})
	}
}

// TestCompileTableInterpolation verifies the Table variant against the
// interpolation formula for every input value.
func TestCompileTableInterpolation(t *testing.T) {
	values := []float64{0.0, 0.5, 0.25, 1.0}
	table := compileTable(&Table{Values: values})

	n := len(values)
	for i := 0; i < 256; i++ {
		x := float64(i) / 255
		k := int(x * float64(n-1))
		if k > n-2 {
			k = n - 2
		}
		f := x*float64(n-1) - float64(k)
		want := clampSample(math.Round(255 * (values[k] + f*(values[k+1]-values[k]))))
		if table[i] != want {
			t.Fatalf("table[%d] = %d, want %d", i, table[i], want)
		}
	}
}

// TestCompileTableDiscreteSteps verifies the step selection for every
// input value.
func TestCompileTableDiscreteSteps(t *testing.T) {
	values := []float64{0.1, 0.9, 0.3}
	table := compileTable(&Discrete{Values: values})

	n := len(values)
	for i := 0; i < 256; i++ {
		x := float64(i) / 255
		k := int(x * float64(n))
		if k > n-1 {
			k = n - 1
		}
		want := clampSample(math.Round(255 * values[k]))
		if table[i] != want {
			t.Fatalf("table[%d] = %d, want %d", i, table[i], want)
		}
	}
}

func TestCompileTableDeterministic(t *testing.T) {
	fn := &Gamma{Amplitude: 0.8, Exponent: 2.2, Offset: 5}
	a := compileTable(fn)
	b := compileTable(fn)
	if diff := cmp.Diff(a[:], b[:]); diff != "" {
		t.Errorf("recompilation differs (-first +second):\n%s", diff)
	}
}

// bogusTransfer simulates a corrupted slot holding a transfer type the
// compiler does not know.
type bogusTransfer struct{}

func (*bogusTransfer) isTransfer() {}

func TestCompileTableUnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("compileTable should panic on an unknown transfer type")
		}
	}()
	compileTable(&bogusTransfer{})
}

func BenchmarkCompileTableGamma(b *testing.B) {
	fn := &Gamma{Amplitude: 1, Exponent: 2.2, Offset: 0}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		compileTable(fn)
	}
}

func BenchmarkCompileTableInterpolated(b *testing.B) {
	fn := &Table{Values: []float64{0, 0.25, 0.5, 0.75, 1}}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		compileTable(fn)
	}
}
