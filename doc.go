// Package crunch implements an interactive expression evaluator.
//
// Text is tokenized, parsed into an expression tree, and evaluated against
// a mutable variable environment. The interpreter is written once against
// the Num capability contract, so the same expressions evaluate over native
// float64, arbitrary-precision floating point, or exact fixed-point decimal
// arithmetic, depending on which backend is bound to the interpreter.
//
// Assignments are expressions: "x = 5" both binds x and yields 5. A call
// shape on the left of = at the top level defines a function, as in
// "f(a, b) = a*b", which can then be called with exactly two arguments. Errors from tokenizing and
// parsing carry the byte range of the offending input for caret-style
// reporting.
package crunch
