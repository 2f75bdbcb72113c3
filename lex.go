package crunch

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start, End int
}

// Token is a single lexical element of an expression.
type Token struct {
	Kind TokenKind
	// Op is the operator when Kind is TokenOp.
	Op Op
	// Fn is the built-in function when Kind is TokenFunc.
	Fn Builtin
	// Const is the constant when Kind is TokenConst.
	Const Constant
	// Text is the source text of the token. Identifier, function, and
	// constant names are lowercased.
	Text string
	// Span is the byte range the token was lexed from.
	Span Span
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Span.Start)
}

type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNumber is a decimal numeric literal.
	TokenNumber
	// TokenOp is an operator or delimiter.
	TokenOp
	// TokenFunc is a built-in function name.
	TokenFunc
	// TokenConst is a named constant.
	TokenConst
	// TokenIdent is a variable or user function name.
	TokenIdent
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOp:
		return "Op"
	case TokenFunc:
		return "Func"
	case TokenConst:
		return "Const"
	case TokenIdent:
		return "Ident"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Op enumerates the operators and delimiters.
type Op int

const (
	OpNone Op = iota
	OpPlus
	OpMinus
	OpStar
	OpSlash
	OpPercent
	OpCaret
	OpLParen
	OpRParen
	// OpPipe delimits an absolute value, as in |x|.
	OpPipe
	OpEquals
	OpComma
	// OpBang is the postfix factorial operator.
	OpBang
)

var opRunes = map[rune]Op{
	'+': OpPlus,
	'-': OpMinus,
	'*': OpStar,
	'/': OpSlash,
	'%': OpPercent,
	'^': OpCaret,
	'(': OpLParen,
	')': OpRParen,
	'|': OpPipe,
	'=': OpEquals,
	',': OpComma,
	'!': OpBang,
}

func (op Op) String() string {
	for r, o := range opRunes {
		if o == op {
			return string(r)
		}
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Builtin enumerates the built-in functions. Every builtin is unary.
type Builtin int

const (
	BuiltinNone Builtin = iota
	BuiltinSqrt
	BuiltinSin
	BuiltinCos
	BuiltinTan
	// BuiltinLog is the base-10 logarithm.
	BuiltinLog
	BuiltinAbs
)

var builtinNames = map[string]Builtin{
	"sqrt": BuiltinSqrt,
	"sin":  BuiltinSin,
	"cos":  BuiltinCos,
	"tan":  BuiltinTan,
	"log":  BuiltinLog,
	"abs":  BuiltinAbs,
}

func (fn Builtin) String() string {
	for s, f := range builtinNames {
		if f == fn {
			return s
		}
	}
	return "Builtin(" + strconv.Itoa(int(fn)) + ")"
}

// Constant enumerates the named constants.
type Constant int

const (
	ConstNone Constant = iota
	ConstPi
	ConstE
)

var constNames = map[string]Constant{
	"pi": ConstPi,
	"e":  ConstE,
}

func (c Constant) String() string {
	for s, k := range constNames {
		if k == c {
			return s
		}
	}
	return "Constant(" + strconv.Itoa(int(c)) + ")"
}

// Tokenize scans src into a token sequence in a single left-to-right pass.
// Whitespace separates tokens and is otherwise ignored. A digit or a dot
// starts a numeric literal; a letter starts a name, which is lowercased and
// matched against constants, then built-in functions, then taken as an
// identifier. Any other rune is an error. Errors are of type *LexError and
// carry the byte span of the offending text.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	for i := 0; i < len(src); {
		r, sz := utf8.DecodeRuneInString(src[i:])
		if op, ok := opRunes[r]; ok {
			toks = append(toks, Token{Kind: TokenOp, Op: op, Text: src[i : i+sz], Span: Span{i, i + sz}})
			i += sz
			continue
		}
		switch {
		case unicode.IsSpace(r):
			i += sz
		case r == '.' || '0' <= r && r <= '9':
			j := i + sz
			for j < len(src) && (src[j] == '.' || '0' <= src[j] && src[j] <= '9') {
				j++
			}
			text := src[i:j]
			if _, err := strconv.ParseFloat(text, 64); err != nil {
				return nil, &LexError{Code: InvalidNumber, Text: text, At: Span{i, j}}
			}
			toks = append(toks, Token{Kind: TokenNumber, Text: text, Span: Span{i, j}})
			i = j
		case unicode.IsLetter(r):
			j := i + sz
			for j < len(src) {
				r, sz := utf8.DecodeRuneInString(src[j:])
				if !unicode.IsLetter(r) {
					break
				}
				j += sz
			}
			text := strings.ToLower(src[i:j])
			tok := Token{Text: text, Span: Span{i, j}}
			switch {
			case constNames[text] != ConstNone:
				tok.Kind, tok.Const = TokenConst, constNames[text]
			case builtinNames[text] != BuiltinNone:
				tok.Kind, tok.Fn = TokenFunc, builtinNames[text]
			default:
				tok.Kind = TokenIdent
			}
			toks = append(toks, tok)
			i = j
		default:
			return nil, &LexError{Code: InvalidCharacter, Text: string(r), At: Span{i, i + sz}}
		}
	}
	return toks, nil
}

// LexErrorCode classifies tokenization errors.
type LexErrorCode int

const (
	// InvalidCharacter indicates a rune that cannot begin any token.
	InvalidCharacter LexErrorCode = iota + 1
	// InvalidNumber indicates a malformed numeric literal, e.g. "1.2.3".
	InvalidNumber
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	Code LexErrorCode
	// Text is the offending rune or literal text.
	Text string
	// At is the byte span of the offending text.
	At Span
}

func (err *LexError) Error() string {
	switch err.Code {
	case InvalidCharacter:
		return errspan(err.At, "invalid character "+strconv.Quote(err.Text))
	case InvalidNumber:
		return errspan(err.At, "invalid number "+strconv.Quote(err.Text))
	}
	return errspan(err.At, "invalid token "+strconv.Quote(err.Text))
}

func (err *LexError) Span() Span {
	return err.At
}
