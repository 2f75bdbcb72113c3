package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/crunch"
)

const historyFile = ".crunch_history"

var noColor bool

func red(s string) string {
	if noColor {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}

func green(s string) string {
	if noColor {
		return s
	}
	return "\x1b[32m" + s + "\x1b[0m"
}

func yellow(s string) string {
	if noColor {
		return s
	}
	return "\x1b[33m" + s + "\x1b[0m"
}

func blue(s string) string {
	if noColor {
		return s
	}
	return "\x1b[94m" + s + "\x1b[0m"
}

// binding is one environment entry with its value already rendered.
type binding struct {
	name  string
	value string
	isFn  bool
}

// session erases the interpreter's numeric type so the REPL can drive any
// backend chosen at startup.
type session interface {
	eval(e *crunch.Expr) (string, error)
	bindings() []binding
}

type runner[N crunch.Num[N]] struct {
	in *crunch.Interpreter[N]
}

func (r *runner[N]) eval(e *crunch.Expr) (string, error) {
	v, err := r.in.Eval(e)
	if err != nil {
		return "", err
	}
	if e.IsDefinition() {
		return "", nil
	}
	return v.String(), nil
}

func (r *runner[N]) bindings() []binding {
	vars := r.in.Vars()
	bs := make([]binding, len(vars))
	for i, v := range vars {
		bs[i] = binding{name: v.Name, isFn: v.IsFunc()}
		if !v.IsFunc() {
			bs[i].value = v.Num.String()
		}
	}
	return bs
}

func main() {
	log.SetFlags(0)
	var (
		btokens, bexpr, bvars bool
		backend               string
		prec                  int
	)
	flag.BoolVar(&btokens, "t", false, "print the token sequence")
	flag.BoolVar(&bexpr, "s", false, "print the syntax tree")
	flag.BoolVar(&bvars, "v", false, "print the variable map after each evaluation")
	flag.BoolVar(&noColor, "no-color", false, "prevent colored text")
	flag.StringVar(&backend, "backend", "float", "numeric backend: float, big, or decimal")
	flag.IntVar(&prec, "p", 64, "precision of big calculations in bits")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	var s session
	switch backend {
	case "float":
		s = &runner[crunch.Float]{in: crunch.New[crunch.Float](crunch.FloatBackend{})}
	case "big":
		s = &runner[crunch.Big]{in: crunch.New[crunch.Big](crunch.NewBigBackend(uint(prec)))}
	case "decimal":
		s = &runner[crunch.Decimal]{in: crunch.New[crunch.Decimal](crunch.DecimalBackend{})}
	default:
		log.Fatalf("unknown backend %q", backend)
	}

	if flag.NArg() > 0 {
		if !evaluate(s, strings.Join(flag.Args(), " "), btokens, bexpr, bvars, "") {
			os.Exit(1)
		}
		return
	}

	repl(s, btokens, bexpr, bvars)
}

func repl(s session, btokens, bexpr, bvars bool) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Println("crunch interactive expression interpreter.")
	fmt.Println(`Try "help" for commands and examples.`)

loop:
	for {
		input, err := line.Prompt(blue("> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}
			log.Println(err)
			continue
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		switch strings.TrimSpace(input) {
		case "":
			continue
		case "quit", "exit":
			break loop
		case "help":
			printHelp()
			continue
		case "vars":
			printVars(s)
			continue
		case "clear":
			fmt.Print("\x1bc")
			continue
		}
		if strings.HasPrefix(input, ":") {
			// Note line.
			continue
		}
		evaluate(s, input, btokens, bexpr, bvars, ":")
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}

var commands = [...][2]string{
	{"quit|exit", "Close crunch"},
	{"help", "Show this help information"},
	{"vars", "Display all of the active variables"},
	{"clear", "Clear prior output"},
	{":", "Write notes"},
}

func printHelp() {
	fmt.Println("Commands")
	for _, c := range commands {
		pad := 10 - len(c[0])
		if pad < 1 {
			pad = 1
		}
		fmt.Println(green(c[0]) + strings.Repeat(" ", pad) + c[1])
	}
	fmt.Println("\nExamples")
	fmt.Println("\t12.3(0.7)")
	fmt.Println("\t|-9| + 3!")
	fmt.Println("\tx = abs(-5)")
	fmt.Println("\tf(a, b) = a^b")
	fmt.Println("\t-x^4")
}

func printVars(s session) {
	for _, b := range s.bindings() {
		if b.isFn {
			fmt.Println(green(b.name) + "(..)")
		} else {
			fmt.Println(green(b.name) + " = " + b.value)
		}
	}
}

// evaluate runs one input through the whole pipeline and prints the result
// or a diagnostic. It reports whether evaluation succeeded.
func evaluate(s session, input string, btokens, bexpr, bvars bool, prefix string) bool {
	ok := run(s, input, btokens, bexpr, prefix)
	if bvars {
		for _, b := range s.bindings() {
			if b.isFn {
				fmt.Println(yellow(b.name + "(..)"))
			} else {
				fmt.Println(yellow(b.name + " = " + b.value))
			}
		}
	}
	return ok
}

func run(s session, input string, btokens, bexpr bool, prefix string) bool {
	toks, err := crunch.Tokenize(input)
	if err != nil {
		printInputError(err)
		return false
	}
	if btokens {
		fmt.Println(yellow(fmt.Sprintf("Tokens: %v", toks)))
	}
	e, err := crunch.Parse(toks)
	if err != nil {
		printInputError(err)
		return false
	}
	if bexpr {
		fmt.Println(yellow("Expr: " + e.String()))
	}
	r, err := s.eval(e)
	if err != nil {
		fmt.Println(red(err.Error()))
		return false
	}
	switch {
	case e.IsDefinition():
		fmt.Println(green(prefix) + " " + e.String())
	case prefix == "":
		fmt.Println(r)
	default:
		fmt.Println(green(prefix) + " " + r)
	}
	return true
}

// printInputError renders a caret underline beneath the byte span of a
// tokenize or parse error. The two-space indent accounts for the prompt.
func printInputError(err error) {
	var ie crunch.InputError
	if !errors.As(err, &ie) {
		fmt.Println(red(err.Error()))
		return
	}
	sp := ie.Span()
	n := sp.End - sp.Start
	if n < 1 {
		n = 1
	}
	fmt.Println("  " + strings.Repeat(" ", sp.Start) + red(strings.Repeat("^", n)+" "+err.Error()))
}
