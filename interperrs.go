package crunch

import "strconv"

// NameError is an error from a lookup of a name that is missing from the
// environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "no variable or function " + strconv.Quote(err.Name) + " exists"
}

// NotFunctionError is an error from calling an identifier that is bound to
// a value.
type NotFunctionError struct {
	Name string
}

func (err *NotFunctionError) Error() string {
	return "the variable " + strconv.Quote(err.Name) + " cannot be used like a function with arguments"
}

// FunctionAsVarError is an error from using an identifier that is bound to
// a function without calling it.
type FunctionAsVarError struct {
	Name string
}

func (err *FunctionAsVarError) Error() string {
	return "the function " + strconv.Quote(err.Name) + " cannot be used without arguments"
}

// TooFewArgsError is an error from a call with fewer arguments than the
// function's parameters.
type TooFewArgsError struct {
	Name string
	// Min is the number of parameters the function declares.
	Min int
}

func (err *TooFewArgsError) Error() string {
	return "function " + strconv.Quote(err.Name) + " did not receive minimum of " + strconv.Itoa(err.Min) + " argument" + plural(err.Min)
}

// TooManyArgsError is an error from a call with more arguments than the
// function's parameters.
type TooManyArgsError struct {
	Name string
	// Max is the number of parameters the function declares.
	Max int
}

func (err *TooManyArgsError) Error() string {
	return "function " + strconv.Quote(err.Name) + " received more than the maximum " + strconv.Itoa(err.Max) + " argument" + plural(err.Max)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
