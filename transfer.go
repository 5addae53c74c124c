package fx

import "math"

// Transfer is a per-channel intensity remapping rule. The five
// implementations (Identity, Table, Discrete, Linear, Gamma) form a
// closed set; the interface is sealed and cannot be implemented
// outside this package.
//
// A Transfer describes the mapping declaratively. Before pixels are
// processed it is compiled into a 256-entry lookup table, one output
// sample per possible input sample. Compilation is pure: the same
// Transfer always compiles to the same table.
//
// Transfers are treated as immutable once handed to a node slot.
// To change a channel's mapping, replace the Transfer rather than
// mutating it in place; the slot cache is keyed by reference identity
// and will not notice in-place edits.
type Transfer interface {
	isTransfer()
}

// Identity maps every sample to itself.
// A nil Transfer behaves the same way.
type Identity struct{}

// Table maps samples by linear interpolation between control points.
//
// Values are intensities in [0, 1], evenly spaced over the input
// domain. With N points, input x in [0, 1] selects the segment
// k = floor(x*(N-1)) and interpolates between Values[k] and
// Values[k+1]. Fewer than two points degrades to identity.
type Table struct {
	Values []float64
}

// Discrete maps samples through a step function.
//
// Values are intensities in [0, 1]. With N points, input x in [0, 1]
// selects step k = floor(x*N) and outputs Values[k] with no
// interpolation. Zero points degrades to identity.
type Discrete struct {
	Values []float64
}

// Linear maps samples through out = Slope*in + Intercept.
//
// Intercept is expressed in the 0..255 sample range, matching the
// scale of the input sample. The result is clamped to [0, 255].
type Linear struct {
	Slope     float64
	Intercept float64
}

// Gamma maps samples through out = Amplitude*pow(in/255, Exponent)*255 + Offset.
//
// Offset is expressed in the 0..255 sample range. The result is
// clamped to [0, 255].
type Gamma struct {
	Amplitude float64
	Exponent  float64
	Offset    float64
}

func (*Identity) isTransfer() {}
func (*Table) isTransfer()    {}
func (*Discrete) isTransfer() {}
func (*Linear) isTransfer()   {}
func (*Gamma) isTransfer()    {}

// identityTable is the shared table for identity mappings.
var identityTable = func() *[256]uint8 {
	var t [256]uint8
	for i := range t {
		t[i] = uint8(i)
	}
	return &t
}()

// compileTable converts a transfer function into its 256-entry lookup
// table by evaluating the mapping for every possible input sample.
//
// The compilation is deterministic and side-effect free, so tables can
// be cached by Transfer identity and recomputed at any time with an
// identical result. A nil Transfer compiles to the identity table.
//
// A Transfer of an unknown dynamic type indicates a corrupted slot and
// is a programming error; compileTable panics rather than guessing.
func compileTable(fn Transfer) *[256]uint8 {
	switch fn := fn.(type) {
	case nil, *Identity:
		return identityTable
	case *Table:
		return compileInterpolated(fn.Values)
	case *Discrete:
		return compileStepped(fn.Values)
	case *Linear:
		t := new([256]uint8)
		for i := range t {
			t[i] = clampSample(math.Round(fn.Slope*float64(i) + fn.Intercept))
		}
		return t
	case *Gamma:
		t := new([256]uint8)
		for i := range t {
			x := float64(i) / 255
			t[i] = clampSample(math.Round(fn.Amplitude*math.Pow(x, fn.Exponent)*255 + fn.Offset))
		}
		return t
	default:
		panic("fx: unknown transfer function type")
	}
}

// compileInterpolated builds the table for a Table transfer.
// Adjacent control points are connected by straight segments.
func compileInterpolated(values []float64) *[256]uint8 {
	n := len(values)
	if n < 2 {
		return identityTable
	}

	t := new([256]uint8)
	for i := range t {
		x := float64(i) / 255
		k := int(x * float64(n-1))
		if k > n-2 {
			k = n - 2
		}
		f := x*float64(n-1) - float64(k)
		v := values[k] + f*(values[k+1]-values[k])
		t[i] = clampSample(math.Round(255 * v))
	}
	return t
}

// compileStepped builds the table for a Discrete transfer.
func compileStepped(values []float64) *[256]uint8 {
	n := len(values)
	if n == 0 {
		return identityTable
	}

	t := new([256]uint8)
	for i := range t {
		x := float64(i) / 255
		k := int(x * float64(n))
		if k > n-1 {
			k = n - 1
		}
		t[i] = clampSample(math.Round(255 * values[k]))
	}
	return t
}

// clampSample clamps a computed sample to the valid [0, 255] range.
func clampSample(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
