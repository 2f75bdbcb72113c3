package crunch

import (
	"errors"
	"testing"
)

func mustDecimal(t *testing.T, text string) Decimal {
	t.Helper()
	d, err := ParseDecimal(text)
	if err != nil {
		t.Fatalf("parsing %q: %v", text, err)
	}
	return d
}

func TestParseDecimal(t *testing.T) {
	// Parsing normalizes: trailing fraction zeros and leading integer zeros
	// are not semantic, and zero renders as the bare radix point.
	cases := []struct {
		text string
		want string
	}{
		{"12.3", "12.3"},
		{"12.30", "12.3"},
		{"012.3", "12.3"},
		{".5", ".5"},
		{"0.5", ".5"},
		{"5.", "5."},
		{"5.0", "5."},
		{"0.0", "."},
		{".", "."},
		{"000.000", "."},
		{"10.01", "10.01"},
	}
	for _, c := range cases {
		d := mustDecimal(t, c.text)
		if got := d.String(); got != c.want {
			t.Errorf("parsing %q: want %q, got %q", c.text, c.want, got)
		}
	}

	for _, text := range []string{"", "12", "1.2a", "x.5", "1.2.3", "1-2."} {
		if d, err := ParseDecimal(text); err == nil {
			t.Errorf("parsing %q: no error (got %v)", text, d)
		}
	}
}

func TestDecimalAdd(t *testing.T) {
	cases := []struct {
		x, y string
		want string
	}{
		{"2.", "2.", "4."},
		{"0.", "5.5", "5.5"},
		{".9", ".1", "1."},
		{".95", ".05", "1."},
		{"9.99", ".01", "10."},
		{"95.", "5.", "100."},
		{"999.", "1.", "1000."},
		{".5", ".25", ".75"},
		{"1.05", "2.5", "3.55"},
		{"12.30", ".7", "13."},
	}
	for _, c := range cases {
		x, y := mustDecimal(t, c.x), mustDecimal(t, c.y)
		z, err := x.Add(y)
		if err != nil {
			t.Errorf("%v + %v: %v", x, y, err)
			continue
		}
		if got := z.String(); got != c.want {
			t.Errorf("%q + %q: want %q, got %q", c.x, c.y, c.want, got)
		}
		// Addition commutes.
		w, err := y.Add(x)
		if err != nil {
			t.Errorf("%v + %v: %v", y, x, err)
			continue
		}
		if w.String() != c.want {
			t.Errorf("%q + %q: want %q, got %q", c.y, c.x, c.want, w)
		}
		// Operands are unchanged.
		if x.String() != mustDecimal(t, c.x).String() || y.String() != mustDecimal(t, c.y).String() {
			t.Errorf("%q + %q mutated an operand: %v, %v", c.x, c.y, x, y)
		}
	}
}

func TestDecimalMul(t *testing.T) {
	cases := []struct {
		x, y string
		want string
	}{
		{"2.", "3.", "6."},
		{"1.5", "1.5", "2.25"},
		{".5", ".5", ".25"},
		{"12.", "12.", "144."},
		{"0.", "5.5", "."},
		{"99.", "99.", "9801."},
		{"12.3", ".7", "8.61"},
		{"1.", "123.456", "123.456"},
	}
	for _, c := range cases {
		x, y := mustDecimal(t, c.x), mustDecimal(t, c.y)
		z, err := x.Mul(y)
		if err != nil {
			t.Errorf("%v * %v: %v", x, y, err)
			continue
		}
		if got := z.String(); got != c.want {
			t.Errorf("%q * %q: want %q, got %q", c.x, c.y, c.want, got)
		}
	}
}

func TestDecimalPow(t *testing.T) {
	cases := []struct {
		x, y string
		want string
	}{
		{"2.", "10.", "1024."},
		{"1.5", "2.", "2.25"},
		{"2.", "0.", "1."},
		{"0.", "0.", "1."},
		{".1", "3.", ".001"},
	}
	for _, c := range cases {
		z, err := mustDecimal(t, c.x).Pow(mustDecimal(t, c.y))
		if err != nil {
			t.Errorf("%q ^ %q: %v", c.x, c.y, err)
			continue
		}
		if got := z.String(); got != c.want {
			t.Errorf("%q ^ %q: want %q, got %q", c.x, c.y, c.want, got)
		}
	}

	// Fractional exponents are outside the domain.
	_, err := mustDecimal(t, "2.").Pow(mustDecimal(t, ".5"))
	var de *DomainError
	if !errors.As(err, &de) {
		t.Errorf(`2. ^ .5: want *DomainError, got %v`, err)
	}
}

func TestDecimalFactorial(t *testing.T) {
	cases := []struct {
		x    string
		want string
	}{
		{".", "1."},
		{"1.", "1."},
		{"5.", "120."},
		{"10.", "3628800."},
		{"20.", "2432902008176640000."},
	}
	for _, c := range cases {
		z, err := mustDecimal(t, c.x).Factorial()
		if err != nil {
			t.Errorf("%q!: %v", c.x, err)
			continue
		}
		if got := z.String(); got != c.want {
			t.Errorf("%q!: want %q, got %q", c.x, c.want, got)
		}
	}

	_, err := mustDecimal(t, "1.5").Factorial()
	var de *DomainError
	if !errors.As(err, &de) {
		t.Errorf("1.5!: want *DomainError, got %v", err)
	}
}

func TestDecimalCmp(t *testing.T) {
	cases := []struct {
		x, y string
		want int
	}{
		{"1.", "2.", -1},
		{"2.", "1.", 1},
		{"2.", "2.", 0},
		{"10.", "9.", 1},
		{".1", ".2", -1},
		{".5", ".45", 1},
		{"1.5", "1.50", 0},
		{".", "0.0", 0},
		{".", ".1", -1},
		{"12.3", "12.30", 0},
	}
	for _, c := range cases {
		x, y := mustDecimal(t, c.x), mustDecimal(t, c.y)
		if got := x.Cmp(y); got != c.want {
			t.Errorf("Cmp(%q, %q) = %d, want %d", c.x, c.y, got, c.want)
		}
		if got := y.Cmp(x); got != -c.want {
			t.Errorf("Cmp(%q, %q) = %d, want %d", c.y, c.x, got, -c.want)
		}
	}
}

func TestDecimalUnsupported(t *testing.T) {
	x, y := mustDecimal(t, "2."), mustDecimal(t, "1.")
	ops := map[string]func() (Decimal, error){
		"subtraction": func() (Decimal, error) { return x.Sub(y) },
		"division":    func() (Decimal, error) { return x.Div(y) },
		"modulo":      func() (Decimal, error) { return x.Mod(y) },
		"negation":    x.Neg,
		"sqrt":        x.Sqrt,
		"sin":         x.Sin,
		"cos":         x.Cos,
		"tan":         x.Tan,
		"log":         x.Log,
	}
	for name, op := range ops {
		_, err := op()
		var ue *UnsupportedError
		if !errors.As(err, &ue) {
			t.Errorf("%s: want *UnsupportedError, got %v", name, err)
			continue
		}
		if ue.Op != name || ue.Type != "decimal" {
			t.Errorf("%s: error names op %q on type %q", name, ue.Op, ue.Type)
		}
	}
}

func TestDecimalBackend(t *testing.T) {
	b := DecimalBackend{}
	// Integer literals from the tokenizer gain the radix point.
	cases := []struct {
		text string
		want string
	}{
		{"12", "12."},
		{"12.5", "12.5"},
		{"0", "."},
		{".5", ".5"},
	}
	for _, c := range cases {
		d, err := b.Parse(c.text)
		if err != nil {
			t.Errorf("parsing %q: %v", c.text, err)
			continue
		}
		if got := d.String(); got != c.want {
			t.Errorf("parsing %q: want %q, got %q", c.text, c.want, got)
		}
	}

	pi := b.Pi()
	three := mustDecimal(t, "3.")
	four := mustDecimal(t, "4.")
	if pi.Cmp(three) <= 0 || pi.Cmp(four) >= 0 {
		t.Errorf("Pi() = %v, want between 3 and 4", pi)
	}
	e := b.E()
	if e.Cmp(three) >= 0 {
		t.Errorf("E() = %v, want less than 3", e)
	}
}
