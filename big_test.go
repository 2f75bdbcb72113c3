package crunch

import (
	"errors"
	"strconv"
	"testing"
)

func mustBig(t *testing.T, b BigBackend, text string) Big {
	t.Helper()
	x, err := b.Parse(text)
	if err != nil {
		t.Fatalf("parsing %q: %v", text, err)
	}
	return x
}

// bigNear reports whether a Big value rendered to a float64 is within a
// small relative tolerance of want.
func bigNear(t *testing.T, x Big, want float64) bool {
	t.Helper()
	f, err := strconv.ParseFloat(x.String(), 64)
	if err != nil {
		t.Fatalf("rendering %v: %v", x, err)
	}
	d := f - want
	if d < 0 {
		d = -d
	}
	scale := want
	if scale < 0 {
		scale = -scale
	}
	if scale < 1 {
		scale = 1
	}
	return d <= 1e-12*scale
}

func TestBigOps(t *testing.T) {
	b := NewBigBackend(64)
	x, y := mustBig(t, b, "7"), mustBig(t, b, "4")

	r, err := x.Add(y)
	if err != nil || !bigNear(t, r, 11) {
		t.Errorf("7 + 4 = %v, %v", r, err)
	}
	r, err = x.Sub(y)
	if err != nil || !bigNear(t, r, 3) {
		t.Errorf("7 - 4 = %v, %v", r, err)
	}
	r, err = x.Mul(y)
	if err != nil || !bigNear(t, r, 28) {
		t.Errorf("7 * 4 = %v, %v", r, err)
	}
	r, err = x.Div(y)
	if err != nil || !bigNear(t, r, 1.75) {
		t.Errorf("7 / 4 = %v, %v", r, err)
	}
	r, err = x.Mod(y)
	if err != nil || !bigNear(t, r, 3) {
		t.Errorf("7 %% 4 = %v, %v", r, err)
	}
	r, err = mustBig(t, b, "-7").Mod(y)
	if err != nil || !bigNear(t, r, -3) {
		t.Errorf("-7 %% 4 = %v, %v", r, err)
	}
	r, err = mustBig(t, b, "2").Pow(mustBig(t, b, "10"))
	if err != nil || !bigNear(t, r, 1024) {
		t.Errorf("2 ^ 10 = %v, %v", r, err)
	}
	r, err = mustBig(t, b, "-5").Abs()
	if err != nil || !bigNear(t, r, 5) {
		t.Errorf("|-5| = %v, %v", r, err)
	}
	r, err = mustBig(t, b, "2").Sqrt()
	if err != nil || !bigNear(t, r, 1.4142135623730951) {
		t.Errorf("sqrt(2) = %v, %v", r, err)
	}
	r, err = mustBig(t, b, "1000").Log()
	if err != nil || !bigNear(t, r, 3) {
		t.Errorf("log(1000) = %v, %v", r, err)
	}
	r, err = mustBig(t, b, "20").Factorial()
	if err != nil || !bigNear(t, r, 2432902008176640000) {
		t.Errorf("20! = %v, %v", r, err)
	}
}

func TestBigDomainErrors(t *testing.T) {
	b := NewBigBackend(64)
	cases := []struct {
		name string
		run  func() (Big, error)
	}{
		{"0/0", func() (Big, error) { return mustBig(t, b, "0").Div(mustBig(t, b, "0")) }},
		{"1%0", func() (Big, error) { return mustBig(t, b, "1").Mod(mustBig(t, b, "0")) }},
		{"inf%3", func() (Big, error) {
			inf, err := mustBig(t, b, "1").Div(mustBig(t, b, "0"))
			if err != nil {
				t.Fatalf("1/0: %v", err)
			}
			if !inf.f.IsInf() {
				t.Fatalf("1/0 = %v, want +Inf", inf)
			}
			return inf.Mod(mustBig(t, b, "3"))
		}},
		{"-2^2", func() (Big, error) { return mustBig(t, b, "-2").Pow(mustBig(t, b, "2")) }},
		{"sqrt(-1)", func() (Big, error) { return mustBig(t, b, "-1").Sqrt() }},
		{"log(0)", func() (Big, error) { return mustBig(t, b, "0").Log() }},
		{"log(-1)", func() (Big, error) { return mustBig(t, b, "-1").Log() }},
		{"(-1)!", func() (Big, error) { return mustBig(t, b, "-1").Factorial() }},
		{"1.5!", func() (Big, error) { return mustBig(t, b, "1.5").Factorial() }},
	}
	for _, c := range cases {
		_, err := c.run()
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("%s: want *DomainError, got %v", c.name, err)
		}
	}

	for _, c := range []struct {
		name string
		run  func() (Big, error)
	}{
		{"sin", mustBig(t, b, "1").Sin},
		{"cos", mustBig(t, b, "1").Cos},
		{"tan", mustBig(t, b, "1").Tan},
	} {
		_, err := c.run()
		var ue *UnsupportedError
		if !errors.As(err, &ue) || ue.Op != c.name || ue.Type != "big" {
			t.Errorf("%s: want *UnsupportedError for big, got %v", c.name, err)
		}
	}
}

func TestBigPrecision(t *testing.T) {
	// Results carry the precision of the values that produced them.
	b := NewBigBackend(256)
	x := mustBig(t, b, "2")
	r, err := x.Sqrt()
	if err != nil {
		t.Fatalf("sqrt(2): %v", err)
	}
	if r.f.Prec() != 256 {
		t.Errorf("sqrt(2) has precision %d, want 256", r.f.Prec())
	}
	// More precision means more digits agree with the true value.
	s := r.String()
	const digits = "1.414213562373095048801688724209698078"
	if len(s) < len(digits) || s[:len(digits)] != digits {
		t.Errorf("sqrt(2) at 256 bits = %q, want prefix %q", s, digits)
	}
}

func TestBigBackendDefaults(t *testing.T) {
	b := NewBigBackend(0)
	x := mustBig(t, b, "1")
	if x.f.Prec() != 64 {
		t.Errorf("default precision is %d, want 64", x.f.Prec())
	}
	if !bigNear(t, b.Pi(), 3.141592653589793) {
		t.Errorf("Pi() = %v", b.Pi())
	}
	if !bigNear(t, b.E(), 2.718281828459045) {
		t.Errorf("E() = %v", b.E())
	}
}
