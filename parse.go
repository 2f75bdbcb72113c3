package crunch

// expr        = assignment
// assignment  = IDENT '=' assignment
//             | IDENT '(' params ')' '=' assignment
//             | additive
// additive    = multiplicative { ('+'|'-') multiplicative }
// multiplicative = unary { ('*'|'/'|'%') unary }
// unary       = '-' unary | power
// power       = postfix [ '^' unary ]
// postfix     = primary { '!' }
// primary     = NUMBER [ '(' expr ')' ]
//             | CONST
//             | FUNC '(' args ')' | FUNC unary
//             | IDENT [ '(' args ')' ]
//             | '(' expr ')'
//             | '|' expr '|'
// args        = [ expr { ',' expr } ]
//
// A number immediately followed by '(' is an implicit multiplication.
// Argument counts are checked at evaluation time, not here. A function
// definition is valid only at the top level: nested, it would contribute
// no value to the enclosing expression.

// Parse parses a token sequence into an expression tree. Identical token
// sequences always produce identical trees or identical errors. Errors are
// of type *ParseError and carry the byte span of the offending token, or a
// synthetic one-past-the-end span when the input ends early.
func Parse(toks []Token) (*Expr, error) {
	p := parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, &ParseError{Code: UnexpectedToken, Text: tok.Text, At: tok.Span}
	}
	return &Expr{n: n}, nil
}

type parser struct {
	toks []Token
	pos  int
	// depth counts enclosing delimiters. Definitions parse only at depth 0.
	depth int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// peekOp reports whether the next token is one of the given operators.
func (p *parser) peekOp(ops ...Op) (Op, bool) {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenOp {
		return OpNone, false
	}
	for _, op := range ops {
		if tok.Op == op {
			return op, true
		}
	}
	return OpNone, false
}

// eofSpan synthesizes a one-past-the-end span for unexpected-EOF reporting.
func (p *parser) eofSpan() Span {
	if len(p.toks) == 0 {
		return Span{0, 1}
	}
	end := p.toks[len(p.toks)-1].Span.End
	return Span{end, end + 1}
}

func (p *parser) expr() (*node, error) {
	return p.assignment()
}

// assignment parses the loosest tier. The left side is parsed as an
// additive expression first; a following '=' reinterprets it as an
// assignment target or, when it is a call whose arguments are all plain
// identifiers, as a function definition.
func (p *parser) assignment() (*node, error) {
	lhs, err := p.additive()
	if err != nil {
		return nil, err
	}
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenOp || tok.Op != OpEquals {
		return lhs, nil
	}
	switch {
	case lhs.kind == nodeName:
		p.pos++
		rhs, err := p.assignment()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeAssign, name: lhs.name, left: rhs}, nil
	case lhs.kind == nodeCall && lhs.fn == BuiltinNone && allNames(lhs.args):
		if p.depth > 0 {
			return nil, &ParseError{Code: UnexpectedToken, Text: tok.Text, At: tok.Span}
		}
		p.pos++
		rhs, err := p.assignment()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeDefine, name: lhs.name, args: lhs.args, left: rhs}, nil
	}
	return nil, &ParseError{Code: UnexpectedToken, Text: tok.Text, At: tok.Span}
}

func allNames(args []*node) bool {
	for _, a := range args {
		if a.kind != nodeName {
			return false
		}
	}
	return true
}

func (p *parser) additive() (*node, error) {
	n, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp(OpPlus, OpMinus)
		if !ok {
			return n, nil
		}
		p.pos++
		rhs, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBin, op: op, left: n, right: rhs}
	}
}

func (p *parser) multiplicative() (*node, error) {
	n, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peekOp(OpStar, OpSlash, OpPercent)
		if !ok {
			return n, nil
		}
		p.pos++
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBin, op: op, left: n, right: rhs}
	}
}

func (p *parser) unary() (*node, error) {
	if _, ok := p.peekOp(OpMinus); ok {
		p.pos++
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: rhs}, nil
	}
	return p.power()
}

// power parses exponentiation. The exponent is a unary term, so '^' is
// right-associative and binds tighter than unary minus: -x^2 is -(x^2) and
// 2^3^2 is 2^(3^2).
func (p *parser) power() (*node, error) {
	n, err := p.postfix()
	if err != nil {
		return nil, err
	}
	if _, ok := p.peekOp(OpCaret); !ok {
		return n, nil
	}
	p.pos++
	rhs, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodePow, left: n, right: rhs}, nil
}

func (p *parser) postfix() (*node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		if _, ok := p.peekOp(OpBang); !ok {
			return n, nil
		}
		p.pos++
		n = &node{kind: nodeFact, left: n}
	}
}

func (p *parser) primary() (*node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &ParseError{Code: UnexpectedEOF, At: p.eofSpan()}
	}
	switch tok.Kind {
	case TokenNumber:
		n := &node{kind: nodeNum, name: tok.Text}
		if _, ok := p.peekOp(OpLParen); !ok {
			return n, nil
		}
		// Implicit multiplication: 12.3(0.7) is 12.3 * 0.7.
		p.pos++
		p.depth++
		rhs, err := p.expr()
		p.depth--
		if err != nil {
			return nil, err
		}
		if err := p.close(OpRParen); err != nil {
			return nil, err
		}
		return &node{kind: nodeBin, op: OpStar, left: n, right: rhs}, nil
	case TokenConst:
		return &node{kind: nodeConst, cn: tok.Const}, nil
	case TokenFunc:
		if _, ok := p.peekOp(OpLParen); ok {
			p.pos++
			args, err := p.args()
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeCall, fn: tok.Fn, name: tok.Text, args: args}, nil
		}
		// A builtin takes the immediately following factor as its
		// argument: sqrt 4 + 1 is sqrt(4) + 1.
		arg, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, fn: tok.Fn, name: tok.Text, args: []*node{arg}}, nil
	case TokenIdent:
		if _, ok := p.peekOp(OpLParen); !ok {
			return &node{kind: nodeName, name: tok.Text}, nil
		}
		p.pos++
		args, err := p.args()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, name: tok.Text, args: args}, nil
	case TokenOp:
		switch tok.Op {
		case OpLParen:
			p.depth++
			n, err := p.expr()
			p.depth--
			if err != nil {
				return nil, err
			}
			if err := p.close(OpRParen); err != nil {
				return nil, err
			}
			return n, nil
		case OpPipe:
			p.depth++
			n, err := p.expr()
			p.depth--
			if err != nil {
				return nil, err
			}
			if err := p.close(OpPipe); err != nil {
				return nil, err
			}
			return &node{kind: nodeCall, fn: BuiltinAbs, name: "abs", args: []*node{n}}, nil
		}
	}
	return nil, &ParseError{Code: UnexpectedToken, Text: tok.Text, At: tok.Span}
}

// close consumes the closing delimiter op, reporting
// ExpectedClosingDelimiter otherwise.
func (p *parser) close(op Op) error {
	tok, ok := p.next()
	if !ok {
		return &ParseError{Code: ExpectedClosingDelimiter, Text: op.String(), At: p.eofSpan()}
	}
	if tok.Kind != TokenOp || tok.Op != op {
		return &ParseError{Code: ExpectedClosingDelimiter, Text: tok.Text, At: tok.Span}
	}
	return nil
}

// args parses a comma-separated argument list after its opening parenthesis
// has been consumed. An empty list is allowed; argument counts are checked
// at evaluation time.
func (p *parser) args() ([]*node, error) {
	if _, ok := p.peekOp(OpRParen); ok {
		p.pos++
		return nil, nil
	}
	var args []*node
	for {
		p.depth++
		a, err := p.expr()
		p.depth--
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		tok, ok := p.next()
		if !ok {
			return nil, &ParseError{Code: ExpectedClosingDelimiter, Text: ")", At: p.eofSpan()}
		}
		if tok.Kind != TokenOp {
			return nil, &ParseError{Code: UnexpectedToken, Text: tok.Text, At: tok.Span}
		}
		switch tok.Op {
		case OpComma:
			continue
		case OpRParen:
			return args, nil
		}
		return nil, &ParseError{Code: UnexpectedToken, Text: tok.Text, At: tok.Span}
	}
}
