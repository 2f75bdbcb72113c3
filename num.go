package crunch

import "strconv"

// Num is the capability contract a numeric representation satisfies to be
// used by the interpreter. Operations return a new value rather than
// mutating the receiver. Operations a representation cannot express return
// an *UnsupportedError; arguments outside an operation's domain return a
// *DomainError. Beyond that, the exact semantics of each operation (for
// example, division by zero) are the backend's concern.
type Num[N any] interface {
	Add(N) (N, error)
	Sub(N) (N, error)
	Mul(N) (N, error)
	Div(N) (N, error)
	// Mod is the remainder of truncated division.
	Mod(N) (N, error)
	Pow(N) (N, error)
	Neg() (N, error)
	Abs() (N, error)

	Sqrt() (N, error)
	Sin() (N, error)
	Cos() (N, error)
	Tan() (N, error)
	// Log is the base-10 logarithm.
	Log() (N, error)
	// Factorial is the postfix ! operation.
	Factorial() (N, error)

	// Cmp compares the receiver with another value: -1 if less, 0 if equal,
	// +1 if greater.
	Cmp(N) int
	// String renders the canonical textual form of the value.
	String() string
}

// Backend constructs values of a numeric representation.
type Backend[N Num[N]] interface {
	// Parse converts a numeric literal, as produced by the tokenizer, into
	// a value.
	Parse(text string) (N, error)
	// Pi returns the backend's representation of the constant pi.
	Pi() N
	// E returns the backend's representation of the constant e.
	E() N
}

// applyBuiltin dispatches a built-in function to the corresponding Num
// operation.
func applyBuiltin[N Num[N]](fn Builtin, x N) (N, error) {
	switch fn {
	case BuiltinSqrt:
		return x.Sqrt()
	case BuiltinSin:
		return x.Sin()
	case BuiltinCos:
		return x.Cos()
	case BuiltinTan:
		return x.Tan()
	case BuiltinLog:
		return x.Log()
	case BuiltinAbs:
		return x.Abs()
	}
	panic("crunch: unknown builtin " + fn.String())
}

// UnsupportedError is an error returned when the bound numeric
// representation cannot express an operation.
type UnsupportedError struct {
	// Op is a name identifying the operation.
	Op string
	// Type is the name of the numeric representation.
	Type string
}

func (err *UnsupportedError) Error() string {
	return err.Op + " is not supported by " + err.Type + " numbers"
}

// DomainError is an error returned when an operation is applied to an
// argument outside its domain.
type DomainError struct {
	// X is the textual rendering of the out-of-domain argument.
	X string
	// Op is a name identifying the operation.
	Op string
}

func (err *DomainError) Error() string {
	return strconv.Quote(err.X) + " outside domain of " + err.Op
}
