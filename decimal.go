package crunch

import (
	"errors"
	"strconv"
	"strings"
)

// Decimal is an arbitrary-precision fixed-point decimal numeric backend.
// The representation has no sign, so subtraction and negation are not
// expressible; addition and multiplication are exact, and factorial and
// integer exponents build on them. Division, modulo, and the
// transcendental operations return *UnsupportedError.
type Decimal struct {
	// intd holds the integer digits least significant first; frac holds
	// the fraction digits most significant first. Digit values are 0-9.
	// Neither slice keeps a non-semantic trailing zero: both are trimmed
	// after construction and after every mutation.
	intd []byte
	frac []byte
}

var _ Num[Decimal] = Decimal{}

// u4Mask keeps stored digits in the low nibble. Digit values never exceed
// 9, so the mask is defensive.
const u4Mask = 0xf

// ParseDecimal parses the canonical textual form of a Decimal. The text
// must contain a radix point and nothing but digits around it.
func ParseDecimal(text string) (Decimal, error) {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return Decimal{}, errors.New("crunch: decimal without radix point: " + strconv.Quote(text))
	}
	ip, fp := text[:dot], text[dot+1:]
	var d Decimal
	for i := len(ip) - 1; i >= 0; i-- {
		c := ip[i]
		if c < '0' || c > '9' {
			return Decimal{}, errors.New("crunch: invalid decimal digit in " + strconv.Quote(text))
		}
		d.intd = append(d.intd, c-'0')
	}
	for i := 0; i < len(fp); i++ {
		c := fp[i]
		if c < '0' || c > '9' {
			return Decimal{}, errors.New("crunch: invalid decimal digit in " + strconv.Quote(text))
		}
		d.frac = append(d.frac, c-'0')
	}
	d.trim()
	return d, nil
}

// trim strips non-semantic zero digits: the most significant end of the
// integer part and the least significant end of the fraction part. Both
// live at the end of their slice. The value zero trims to empty digits on
// both sides.
func (d *Decimal) trim() {
	d.intd = trimZeros(d.intd)
	d.frac = trimZeros(d.frac)
}

func trimZeros(digits []byte) []byte {
	n := len(digits)
	for n > 0 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}

func (d Decimal) clone() Decimal {
	return Decimal{
		intd: append([]byte(nil), d.intd...),
		frac: append([]byte(nil), d.frac...),
	}
}

// addInt adds another integer digit sequence, least significant first,
// into the receiver, extending it when the operand is longer or a final
// carry remains.
func (d *Decimal) addInt(other []byte) {
	carry := byte(0)
	for i := 0; i < len(other) || carry != 0; i++ {
		t := carry
		if i < len(other) {
			t += other[i]
		}
		if i < len(d.intd) {
			t += d.intd[i]
		}
		if t > 9 {
			carry, t = 1, t-10
		} else {
			carry = 0
		}
		if i < len(d.intd) {
			d.intd[i] = t & u4Mask
		} else {
			d.intd = append(d.intd, t&u4Mask)
		}
	}
}

// addFrac adds another fraction digit sequence, most significant first,
// into the receiver. The sequences align at the radix point; the receiver
// is padded on its least significant end when the operand is longer.
// Addition runs from the least significant shared digit toward the radix
// point; a carry surviving past the most significant fraction digit rolls
// into the integer part.
func (d *Decimal) addFrac(other []byte) {
	if len(other) > len(d.frac) {
		d.frac = append(d.frac, make([]byte, len(other)-len(d.frac))...)
	}
	carry := byte(0)
	for i := len(other) - 1; i >= 0; i-- {
		t := d.frac[i] + other[i] + carry
		if t > 9 {
			carry, t = 1, t-10
		} else {
			carry = 0
		}
		d.frac[i] = t & u4Mask
	}
	if carry != 0 {
		d.addInt([]byte{1})
	}
}

// digitsLE returns every digit least significant first together with the
// number of fraction digits.
func (d Decimal) digitsLE() ([]byte, int) {
	le := make([]byte, 0, len(d.frac)+len(d.intd))
	for i := len(d.frac) - 1; i >= 0; i-- {
		le = append(le, d.frac[i])
	}
	le = append(le, d.intd...)
	return le, len(d.frac)
}

// uint64 converts an integral Decimal to a machine integer. It reports
// false for values with fraction digits or more than 19 integer digits.
func (d Decimal) uint64() (uint64, bool) {
	if len(d.frac) != 0 || len(d.intd) > 19 {
		return 0, false
	}
	var n uint64
	for i := len(d.intd) - 1; i >= 0; i-- {
		n = n*10 + uint64(d.intd[i])
	}
	return n, true
}

func decFromUint(n uint64) Decimal {
	var d Decimal
	for ; n > 0; n /= 10 {
		d.intd = append(d.intd, byte(n%10))
	}
	return d
}

func (x Decimal) Add(y Decimal) (Decimal, error) {
	z := x.clone()
	z.addInt(y.intd)
	z.addFrac(y.frac)
	z.trim()
	return z, nil
}

func (x Decimal) Sub(y Decimal) (Decimal, error) {
	return Decimal{}, &UnsupportedError{Op: "subtraction", Type: "decimal"}
}

// Mul computes the exact product by schoolbook digit multiplication,
// placing the radix point by the sum of the operands' fraction lengths.
func (x Decimal) Mul(y Decimal) (Decimal, error) {
	xd, xs := x.digitsLE()
	yd, ys := y.digitsLE()
	prod := make([]byte, len(xd)+len(yd)+1)
	for i, a := range xd {
		if a == 0 {
			continue
		}
		carry := 0
		for j, b := range yd {
			t := int(prod[i+j]) + int(a)*int(b) + carry
			prod[i+j] = byte(t % 10)
			carry = t / 10
		}
		for k := i + len(yd); carry > 0; k++ {
			t := int(prod[k]) + carry
			prod[k] = byte(t % 10)
			carry = t / 10
		}
	}
	scale := xs + ys
	z := Decimal{
		frac: make([]byte, scale),
		intd: append([]byte(nil), prod[scale:]...),
	}
	for i := 0; i < scale; i++ {
		z.frac[scale-1-i] = prod[i]
	}
	z.trim()
	return z, nil
}

func (x Decimal) Div(y Decimal) (Decimal, error) {
	return Decimal{}, &UnsupportedError{Op: "division", Type: "decimal"}
}

func (x Decimal) Mod(y Decimal) (Decimal, error) {
	return Decimal{}, &UnsupportedError{Op: "modulo", Type: "decimal"}
}

// Pow computes an integer power by repeated multiplication. Exponents with
// fraction digits are outside the representation's domain.
func (x Decimal) Pow(y Decimal) (Decimal, error) {
	n, ok := y.uint64()
	if !ok {
		return Decimal{}, &DomainError{X: y.String(), Op: "^"}
	}
	z := Decimal{intd: []byte{1}}
	for i := uint64(0); i < n; i++ {
		z, _ = z.Mul(x)
	}
	return z, nil
}

func (x Decimal) Neg() (Decimal, error) {
	return Decimal{}, &UnsupportedError{Op: "negation", Type: "decimal"}
}

// Abs is the identity: the representation has no sign.
func (x Decimal) Abs() (Decimal, error) {
	return x, nil
}

func (x Decimal) Sqrt() (Decimal, error) {
	return Decimal{}, &UnsupportedError{Op: "sqrt", Type: "decimal"}
}

func (x Decimal) Sin() (Decimal, error) {
	return Decimal{}, &UnsupportedError{Op: "sin", Type: "decimal"}
}

func (x Decimal) Cos() (Decimal, error) {
	return Decimal{}, &UnsupportedError{Op: "cos", Type: "decimal"}
}

func (x Decimal) Tan() (Decimal, error) {
	return Decimal{}, &UnsupportedError{Op: "tan", Type: "decimal"}
}

func (x Decimal) Log() (Decimal, error) {
	return Decimal{}, &UnsupportedError{Op: "log", Type: "decimal"}
}

func (x Decimal) Factorial() (Decimal, error) {
	n, ok := x.uint64()
	if !ok {
		return Decimal{}, &DomainError{X: x.String(), Op: "!"}
	}
	z := Decimal{intd: []byte{1}}
	for i := uint64(2); i <= n; i++ {
		z, _ = z.Mul(decFromUint(i))
	}
	return z, nil
}

func (x Decimal) Cmp(y Decimal) int {
	if c := len(x.intd) - len(y.intd); c != 0 {
		if c < 0 {
			return -1
		}
		return 1
	}
	for i := len(x.intd) - 1; i >= 0; i-- {
		if x.intd[i] != y.intd[i] {
			if x.intd[i] < y.intd[i] {
				return -1
			}
			return 1
		}
	}
	n := len(x.frac)
	if len(y.frac) > n {
		n = len(y.frac)
	}
	for i := 0; i < n; i++ {
		var a, b byte
		if i < len(x.frac) {
			a = x.frac[i]
		}
		if i < len(y.frac) {
			b = y.frac[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// String renders the canonical form: the integer digits most significant
// first, the radix point, then the fraction digits. The value zero renders
// as ".".
func (d Decimal) String() string {
	var b strings.Builder
	b.Grow(len(d.intd) + 1 + len(d.frac))
	for i := len(d.intd) - 1; i >= 0; i-- {
		b.WriteByte(d.intd[i] + '0')
	}
	b.WriteByte('.')
	for _, v := range d.frac {
		b.WriteByte(v + '0')
	}
	return b.String()
}

// DecimalBackend creates Decimal values.
type DecimalBackend struct{}

var _ Backend[Decimal] = DecimalBackend{}

// Parse accepts any literal the tokenizer produces, appending the radix
// point to integer literals before parsing the canonical form.
func (DecimalBackend) Parse(text string) (Decimal, error) {
	if !strings.Contains(text, ".") {
		text += "."
	}
	return ParseDecimal(text)
}

// Pi is pi truncated to 35 fraction digits; the representation cannot
// express the full constant.
func (DecimalBackend) Pi() Decimal {
	d, _ := ParseDecimal("3.14159265358979323846264338327950288")
	return d
}

// E is e truncated to 35 fraction digits.
func (DecimalBackend) E() Decimal {
	d, _ := ParseDecimal("2.71828182845904523536028747135266249")
	return d
}
