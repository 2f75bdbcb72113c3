package crunch

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Big is an arbitrary-precision binary floating-point backend over
// math/big. Transcendental operations use package bigfloat; trigonometry is
// not implemented there, so Sin, Cos, and Tan return *UnsupportedError.
// Values carry the precision of the backend that created them.
type Big struct {
	f *big.Float
}

var _ Num[Big] = Big{}

// new returns a zero value with the receiver's precision.
func (x Big) new() *big.Float {
	return new(big.Float).SetPrec(x.f.Prec())
}

func (x Big) Add(y Big) (Big, error) {
	return Big{x.new().Add(x.f, y.f)}, nil
}

func (x Big) Sub(y Big) (Big, error) {
	return Big{x.new().Sub(x.f, y.f)}, nil
}

func (x Big) Mul(y Big) (Big, error) {
	return Big{x.new().Mul(x.f, y.f)}, nil
}

func (x Big) Div(y Big) (Big, error) {
	// Guard against invalid divisions, 0/0 or inf/inf.
	if x.f.Sign() == 0 && y.f.Sign() == 0 || x.f.IsInf() && y.f.IsInf() {
		return Big{}, &DomainError{X: y.String(), Op: "/"}
	}
	return Big{x.new().Quo(x.f, y.f)}, nil
}

func (x Big) Mod(y Big) (Big, error) {
	if y.f.Sign() == 0 {
		return Big{}, &DomainError{X: y.String(), Op: "%"}
	}
	// An infinite dividend has no truncated quotient to subtract.
	if x.f.IsInf() {
		return Big{}, &DomainError{X: x.String(), Op: "%"}
	}
	q := x.new().Quo(x.f, y.f)
	i, _ := q.Int(nil) // truncate toward zero
	q.SetInt(i)
	q.Mul(q, y.f)
	return Big{x.new().Sub(x.f, q)}, nil
}

func (x Big) Pow(y Big) (Big, error) {
	// bigfloat.Pow computes exp(y log x), so a negative base is out of
	// its domain.
	if x.f.Signbit() {
		return Big{}, &DomainError{X: x.String(), Op: "^"}
	}
	z := x.new()
	bigfloat.Pow(z, x.f, y.f)
	return Big{z}, nil
}

func (x Big) Neg() (Big, error) {
	return Big{x.new().Neg(x.f)}, nil
}

func (x Big) Abs() (Big, error) {
	return Big{x.new().Abs(x.f)}, nil
}

func (x Big) Sqrt() (Big, error) {
	if x.f.Sign() < 0 {
		return Big{}, &DomainError{X: x.String(), Op: "sqrt"}
	}
	return Big{x.new().Sqrt(x.f)}, nil
}

func (x Big) Sin() (Big, error) {
	return Big{}, &UnsupportedError{Op: "sin", Type: "big"}
}

func (x Big) Cos() (Big, error) {
	return Big{}, &UnsupportedError{Op: "cos", Type: "big"}
}

func (x Big) Tan() (Big, error) {
	return Big{}, &UnsupportedError{Op: "tan", Type: "big"}
}

func (x Big) Log() (Big, error) {
	if x.f.Sign() <= 0 {
		return Big{}, &DomainError{X: x.String(), Op: "log"}
	}
	z := x.new()
	bigfloat.Log(z, x.f)
	ten := x.new().SetInt64(10)
	bigfloat.Log(ten, ten)
	return Big{z.Quo(z, ten)}, nil
}

func (x Big) Factorial() (Big, error) {
	if x.f.Sign() < 0 || !x.f.IsInt() {
		return Big{}, &DomainError{X: x.String(), Op: "!"}
	}
	n, acc := x.f.Int64()
	if acc != big.Exact {
		return Big{}, &DomainError{X: x.String(), Op: "!"}
	}
	z := x.new().SetInt64(1)
	k := x.new()
	for i := int64(2); i <= n; i++ {
		z.Mul(z, k.SetInt64(i))
	}
	return Big{z}, nil
}

func (x Big) Cmp(y Big) int {
	return x.f.Cmp(y.f)
}

func (x Big) String() string {
	return x.f.Text('g', -1)
}

// BigBackend creates Big values computed to a fixed mantissa precision in
// bits.
type BigBackend struct {
	prec uint
}

var _ Backend[Big] = BigBackend{}

// NewBigBackend returns a backend computing to prec bits of mantissa. If
// prec is 0, the default is 64.
func NewBigBackend(prec uint) BigBackend {
	if prec == 0 {
		prec = 64
	}
	return BigBackend{prec: prec}
}

func (b BigBackend) Parse(text string) (Big, error) {
	f, _, err := big.ParseFloat(text, 10, b.prec, big.ToNearestEven)
	if err != nil {
		return Big{}, err
	}
	return Big{f}, nil
}

func (b BigBackend) Pi() Big {
	return Big{bigfloat.Pi(new(big.Float).SetPrec(b.prec))}
}

func (b BigBackend) E() Big {
	one := new(big.Float).SetPrec(b.prec).SetInt64(1)
	return Big{bigfloat.Exp(new(big.Float).SetPrec(b.prec), one)}
}
