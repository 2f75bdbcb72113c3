package crunch

import "sort"

// Variant is the content bound to an identifier: a numeric value or a
// user-defined function.
type Variant[N Num[N]] struct {
	// Num is the bound value. It is meaningful only when Fn is nil.
	Num N
	// Fn is the bound function, if any.
	Fn *UserFunc
}

// IsFunc reports whether the binding is a function.
func (v Variant[N]) IsFunc() bool {
	return v.Fn != nil
}

// UserFunc is a user-defined function: ordered parameter names and a body
// evaluated with the parameters bound to the call's arguments.
type UserFunc struct {
	Params []string
	Body   *Expr
}

// Binding is one environment entry, for display.
type Binding[N Num[N]] struct {
	Name string
	Variant[N]
}

// Interpreter evaluates expression trees against one numeric backend and
// one mutable variable environment, both fixed for its lifetime.
// Assignments mutate the environment in place, so results accumulate
// across calls to Eval. An Interpreter is not safe for concurrent use;
// give each session its own.
type Interpreter[N Num[N]] struct {
	backend Backend[N]
	vars    map[string]Variant[N]
}

// Option is an option used when creating an interpreter.
type Option[N Num[N]] interface {
	apply(*Interpreter[N])
}

type varopt[N Num[N]] struct {
	name string
	val  N
}

func (o varopt[N]) apply(in *Interpreter[N]) {
	in.vars[o.name] = Variant[N]{Num: o.val}
}

// SetVar sets the value of a variable in the new interpreter.
func SetVar[N Num[N]](name string, val N) Option[N] {
	return varopt[N]{name, val}
}

type varsopt[N Num[N]] map[string]N

func (o varsopt[N]) apply(in *Interpreter[N]) {
	for name, val := range o {
		in.vars[name] = Variant[N]{Num: val}
	}
}

// SetVars sets the values of any number of variables in the new
// interpreter.
func SetVars[N Num[N]](vars map[string]N) Option[N] {
	return varsopt[N](vars)
}

// New creates an interpreter bound to a numeric backend. The given options
// are applied in order.
func New[N Num[N]](backend Backend[N], opts ...Option[N]) *Interpreter[N] {
	in := &Interpreter[N]{
		backend: backend,
		vars:    make(map[string]Variant[N]),
	}
	for _, opt := range opts {
		opt.apply(in)
	}
	return in
}

// Set binds a variable to a value, overwriting any prior binding. Returns
// the interpreter for chaining.
func (in *Interpreter[N]) Set(name string, val N) *Interpreter[N] {
	in.vars[name] = Variant[N]{Num: val}
	return in
}

// Define binds a user function, overwriting any prior binding.
func (in *Interpreter[N]) Define(name string, params []string, body *Expr) {
	in.vars[name] = Variant[N]{Fn: &UserFunc{Params: params, Body: body}}
}

// Lookup returns the current binding of a name.
func (in *Interpreter[N]) Lookup(name string) (Variant[N], bool) {
	v, ok := in.vars[name]
	return v, ok
}

// Vars lists the environment for display, value bindings before function
// bindings and names sorted within each kind.
func (in *Interpreter[N]) Vars() []Binding[N] {
	v := make([]Binding[N], 0, len(in.vars))
	for name, b := range in.vars {
		v = append(v, Binding[N]{Name: name, Variant: b})
	}
	sort.Slice(v, func(i, j int) bool { return bindingLess(v[i], v[j]) })
	return v
}

func bindingLess[N Num[N]](a, b Binding[N]) bool {
	if a.IsFunc() != b.IsFunc() {
		return !a.IsFunc()
	}
	return a.Name < b.Name
}

// Eval evaluates an expression and returns its value. Evaluating a
// function definition binds the function and returns the zero value;
// callers that care should check Expr.IsDefinition. Errors from evaluation
// are the interpret error types in this package or errors from the bound
// backend's operations.
func (in *Interpreter[N]) Eval(e *Expr) (N, error) {
	return in.eval(e.n)
}

func (in *Interpreter[N]) eval(n *node) (N, error) {
	var zero N
	switch n.kind {
	case nodeNum:
		return in.backend.Parse(n.name)
	case nodeConst:
		switch n.cn {
		case ConstPi:
			return in.backend.Pi(), nil
		case ConstE:
			return in.backend.E(), nil
		}
		panic("crunch: unknown constant " + n.cn.String())
	case nodeName:
		v, ok := in.vars[n.name]
		if !ok {
			return zero, &NameError{Name: n.name}
		}
		if v.Fn != nil {
			return zero, &FunctionAsVarError{Name: n.name}
		}
		return v.Num, nil
	case nodeNeg:
		x, err := in.eval(n.left)
		if err != nil {
			return zero, err
		}
		return x.Neg()
	case nodeFact:
		x, err := in.eval(n.left)
		if err != nil {
			return zero, err
		}
		return x.Factorial()
	case nodeBin:
		l, err := in.eval(n.left)
		if err != nil {
			return zero, err
		}
		r, err := in.eval(n.right)
		if err != nil {
			return zero, err
		}
		switch n.op {
		case OpPlus:
			return l.Add(r)
		case OpMinus:
			return l.Sub(r)
		case OpStar:
			return l.Mul(r)
		case OpSlash:
			return l.Div(r)
		case OpPercent:
			return l.Mod(r)
		}
		panic("crunch: invalid binary operator " + n.op.String())
	case nodePow:
		l, err := in.eval(n.left)
		if err != nil {
			return zero, err
		}
		r, err := in.eval(n.right)
		if err != nil {
			return zero, err
		}
		return l.Pow(r)
	case nodeCall:
		return in.call(n)
	case nodeAssign:
		v, err := in.eval(n.left)
		if err != nil {
			return zero, err
		}
		in.vars[n.name] = Variant[N]{Num: v}
		return v, nil
	case nodeDefine:
		params := make([]string, len(n.args))
		for i, a := range n.args {
			params[i] = a.name
		}
		in.Define(n.name, params, &Expr{n: n.left})
		return zero, nil
	}
	panic("crunch: invalid AST node " + n.kind.String())
}

func (in *Interpreter[N]) call(n *node) (N, error) {
	var zero N
	if n.fn != BuiltinNone {
		// Builtins are unary.
		switch {
		case len(n.args) < 1:
			return zero, &TooFewArgsError{Name: n.name, Min: 1}
		case len(n.args) > 1:
			return zero, &TooManyArgsError{Name: n.name, Max: 1}
		}
		x, err := in.eval(n.args[0])
		if err != nil {
			return zero, err
		}
		return applyBuiltin(n.fn, x)
	}
	v, ok := in.vars[n.name]
	if !ok {
		return zero, &NameError{Name: n.name}
	}
	if v.Fn == nil {
		return zero, &NotFunctionError{Name: n.name}
	}
	fn := v.Fn
	switch {
	case len(n.args) < len(fn.Params):
		return zero, &TooFewArgsError{Name: n.name, Min: len(fn.Params)}
	case len(n.args) > len(fn.Params):
		return zero, &TooManyArgsError{Name: n.name, Max: len(fn.Params)}
	}
	// Arguments evaluate in the caller's environment before any parameter
	// is bound.
	vals := make([]N, len(n.args))
	for i, a := range n.args {
		x, err := in.eval(a)
		if err != nil {
			return zero, err
		}
		vals[i] = x
	}
	// Bind parameters as a scoped overlay, restored after the call so the
	// caller's bindings for those names survive.
	saved := make(map[string]Variant[N], len(fn.Params))
	shadowed := make(map[string]bool, len(fn.Params))
	for i, p := range fn.Params {
		if old, ok := in.vars[p]; ok && !shadowed[p] {
			saved[p] = old
			shadowed[p] = true
		}
		in.vars[p] = Variant[N]{Num: vals[i]}
	}
	r, err := in.eval(fn.Body.n)
	for _, p := range fn.Params {
		if shadowed[p] {
			in.vars[p] = saved[p]
		} else {
			delete(in.vars, p)
		}
	}
	return r, err
}

// EvalString is a shortcut to tokenize, parse, and evaluate a string
// expression with a fresh interpreter.
func EvalString[N Num[N]](backend Backend[N], src string, opts ...Option[N]) (N, error) {
	var zero N
	toks, err := Tokenize(src)
	if err != nil {
		return zero, err
	}
	e, err := Parse(toks)
	if err != nil {
		return zero, err
	}
	return New(backend, opts...).Eval(e)
}
