package crunch

import (
	"math"
	"strconv"
)

// Float is the native double-precision numeric backend. Its operations
// follow IEEE 754 semantics: division by zero yields an infinity and
// out-of-domain transcendentals yield NaN rather than errors.
type Float float64

var _ Num[Float] = Float(0)

func (x Float) Add(y Float) (Float, error) { return x + y, nil }
func (x Float) Sub(y Float) (Float, error) { return x - y, nil }
func (x Float) Mul(y Float) (Float, error) { return x * y, nil }
func (x Float) Div(y Float) (Float, error) { return x / y, nil }

func (x Float) Mod(y Float) (Float, error) {
	return Float(math.Mod(float64(x), float64(y))), nil
}

func (x Float) Pow(y Float) (Float, error) {
	return Float(math.Pow(float64(x), float64(y))), nil
}

func (x Float) Neg() (Float, error) { return -x, nil }

func (x Float) Abs() (Float, error) {
	return Float(math.Abs(float64(x))), nil
}

func (x Float) Sqrt() (Float, error) {
	return Float(math.Sqrt(float64(x))), nil
}

func (x Float) Sin() (Float, error) { return Float(math.Sin(float64(x))), nil }
func (x Float) Cos() (Float, error) { return Float(math.Cos(float64(x))), nil }
func (x Float) Tan() (Float, error) { return Float(math.Tan(float64(x))), nil }

func (x Float) Log() (Float, error) {
	return Float(math.Log10(float64(x))), nil
}

// Factorial computes x! as the gamma function of x+1, so non-integer
// arguments are meaningful.
func (x Float) Factorial() (Float, error) {
	return Float(math.Gamma(float64(x) + 1)), nil
}

func (x Float) Cmp(y Float) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func (x Float) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// FloatBackend creates Float values.
type FloatBackend struct{}

var _ Backend[Float] = FloatBackend{}

func (FloatBackend) Parse(text string) (Float, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return Float(f), nil
}

func (FloatBackend) Pi() Float { return Float(math.Pi) }
func (FloatBackend) E() Float  { return Float(math.E) }
