package reduce

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/7blacky7/ndreduce/ml"
)

// randomArray liefert reproduzierbare Zufallswerte in [-10, 10)
func randomArray(t *testing.T, dims ...int) (*ml.Array, []float64) {
	t.Helper()

	n := 1
	for _, d := range dims {
		n *= d
	}

	r := rand.New(rand.NewPCG(1, uint64(n)))
	data := make([]float64, n)
	for i := range data {
		data[i] = r.Float64()*20 - 10
	}

	return fromSlice(t, data, dims...), data
}

// rows zerlegt row-major Daten in Zeilen der Laenge n
func rows(data []float64, n int) [][]float64 {
	var out [][]float64
	for i := 0; i < len(data); i += n {
		out = append(out, data[i:i+n])
	}
	return out
}

// assertClose vergleicht mit relativer Toleranz, da die Referenzen in anderer
// Reihenfolge summieren
func assertClose(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		tol := 1e-9 * max(1, math.Abs(want[i]))
		assert.InDelta(t, want[i], got[i], tol, "index %d", i)
	}
}

func TestKernelsAgainstGonum(t *testing.T) {
	a, data := randomArray(t, 6, 7)

	type reference func([]float64) float64
	cases := []struct {
		name string
		op   func(*ml.Array, ...Option) (*ml.Array, error)
		opts []Option
		ref  reference
	}{
		{"amin", AMin, nil, floats.Min},
		{"amax", AMax, nil, floats.Max},
		{"argmin", ArgMin, nil, func(x []float64) float64 { return float64(floats.MinIdx(x)) }},
		{"argmax", ArgMax, nil, func(x []float64) float64 { return float64(floats.MaxIdx(x)) }},
		{"sum", Sum, nil, floats.Sum},
		{"prod", Prod, nil, floats.Prod},
		{"mean", Mean, nil, func(x []float64) float64 { return stat.Mean(x, nil) }},
		{"var", Var, nil, func(x []float64) float64 { return stat.PopVariance(x, nil) }},
		{"var ddof 1", Var, []Option{WithDDof(1)}, func(x []float64) float64 { return stat.Variance(x, nil) }},
		{"std", Std, nil, func(x []float64) float64 { return stat.PopStdDev(x, nil) }},
		{"std ddof 1", Std, []Option{WithDDof(1)}, func(x []float64) float64 { return stat.StdDev(x, nil) }},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			full, err := tt.op(a, tt.opts...)
			require.NoError(t, err)
			assertClose(t, []float64{tt.ref(data)}, full.Floats())

			r, err := tt.op(a, append(tt.opts, WithAxis(1))...)
			require.NoError(t, err)
			require.Equal(t, []int{6}, r.Dims())

			want := make([]float64, 0, 6)
			for _, row := range rows(data, 7) {
				want = append(want, tt.ref(row))
			}
			assertClose(t, want, r.Floats())
		})
	}
}

func TestCumSumAgainstGonum(t *testing.T) {
	a, data := randomArray(t, 4, 5)

	r, err := CumSum(a, WithAxis(-1))
	require.NoError(t, err)

	var want []float64
	for _, row := range rows(data, 5) {
		want = append(want, floats.CumSum(make([]float64, len(row)), row)...)
	}
	assertClose(t, want, r.Floats())

	flat, err := CumSumElementwise[float64](a)
	require.NoError(t, err)
	assertClose(t, floats.CumSum(make([]float64, len(data)), data), flat)
}

func TestKernelsAgainstDense(t *testing.T) {
	a, _ := randomArray(t, 3, 4, 5)

	d, err := ml.ToDense(a)
	require.NoError(t, err)

	for axis := range a.Rank() {
		sums, err := d.Sum(axis)
		require.NoError(t, err)

		r, err := Sum(a, WithAxis(axis))
		require.NoError(t, err)
		assert.Equal(t, []int(sums.Shape()), r.Dims())
		assertClose(t, sums.Data().([]float64), r.Floats())

		argmins, err := d.Argmin(axis)
		require.NoError(t, err)

		r, err = ArgMin(a, WithAxis(axis))
		require.NoError(t, err)

		var want []int64
		for _, i := range argmins.Data().([]int) {
			want = append(want, int64(i))
		}
		assert.Equal(t, want, r.Ints())
	}
}

func TestStream(t *testing.T) {
	a := fromSlice(t, []uint8{1, 2, 3, 4, 5, 6}, 2, 3)
	tr, err := a.Transpose()
	require.NoError(t, err)

	s := NewStream[float32](tr)
	assert.Equal(t, 6, s.Len())

	var got []float32
	for s.HasNext() {
		got = append(got, s.Next())
	}
	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, got)
	assert.False(t, s.HasNext())
}

func TestIdentity(t *testing.T) {
	v, ok := Identity[int64](KindProd)
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	f, ok := Identity[float32](KindMean)
	assert.True(t, ok)
	assert.Zero(t, f)

	_, ok = Identity[float64](KindArgMin)
	assert.False(t, ok)
}

func TestElementwise(t *testing.T) {
	a := arange(t, ml.DTypeInt32, 2, 3)

	s, err := SumElementwise[int64](a)
	require.NoError(t, err)
	assert.Equal(t, int64(15), s)

	m, err := MeanElementwise[float64](a, WithAxis(1), WithKeepDims())
	require.NoError(t, err)
	assert.Equal(t, 2.5, m, "elementwise always reduces every element")

	mx, err := AMaxElementwise[uint8](a)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), mx)

	mn, err := AMinElementwise[float32](a)
	require.NoError(t, err)
	assert.Zero(t, mn)

	i, err := ArgMaxElementwise(a)
	require.NoError(t, err)
	assert.Equal(t, 5, i)

	i, err = ArgMinElementwise(fromSlice(t, []float64{3, -1, 7, -1}, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	p, err := ProdElementwise[int64](fromSlice(t, []int8{2, 3, 4}))
	require.NoError(t, err)
	assert.Equal(t, int64(24), p)

	v, err := VarElementwise[float64](fromSlice(t, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	assert.InDelta(t, 1.25, v, 1e-12)

	sd, err := StdElementwise[float64](fromSlice(t, []float64{1, 2, 3, 4}), WithDDof(1))
	require.NoError(t, err)
	assert.InDelta(t, 1.2909944487358056, sd, 1e-12)
}

func TestElementwiseEmpty(t *testing.T) {
	empty, err := ml.New(ml.DTypeInt16, 2, 0)
	require.NoError(t, err)

	s, err := SumElementwise[int64](empty)
	require.NoError(t, err)
	assert.Zero(t, s)

	p, err := ProdElementwise[float64](empty)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	_, err = AMinElementwise[int16](empty)
	assert.ErrorIs(t, err, ml.ErrShapeMismatch)

	_, err = ArgMinElementwise(empty)
	assert.ErrorIs(t, err, ml.ErrShapeMismatch)

	cs, err := CumSumElementwise[int64](empty)
	require.NoError(t, err)
	assert.Empty(t, cs)
}
