// Package calc evaluates arithmetic expressions over a fixed grammar and
// provides the numeric helpers the calculator tool exposes. Expressions are
// parsed with a small recursive-descent parser — there is no delegation to
// any general-purpose evaluator.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Named constants usable in expressions.
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
	"phi": (1 + math.Sqrt(5)) / 2,
}

// Evaluate parses and evaluates a mathematical expression.
// Grammar: numbers, named constants, unary +/-, binary + - * / % ^,
// parentheses (square brackets are accepted as grouping), and a fixed
// function table. '**' and the unicode × ÷ operators are normalized.
func Evaluate(expr string) (float64, error) {
	p := &parser{input: normalize(expr)}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected %q at position %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

// Calculate is the agent-facing wrapper: it formats the result or returns
// an "Error: ..." string instead of failing.
func Calculate(expr string) string {
	v, err := Evaluate(expr)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return FormatResult(v)
}

// normalize maps notation variants onto the grammar's operators.
func normalize(expr string) string {
	r := strings.NewReplacer(
		"**", "^",
		"×", "*",
		"÷", "/",
		"[", "(",
		"]", ")",
	)
	return r.Replace(expr)
}

type parser struct {
	input string
	pos   int
}

// parseExpr handles addition and subtraction.
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

// parseTerm handles multiplication, division and modulo.
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		case '%':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("modulo by zero")
			}
			left = math.Mod(left, right)
		default:
			return left, nil
		}
	}
}

// parseUnary handles unary sign.
func (p *parser) parseUnary() (float64, error) {
	p.skipSpace()
	switch p.peek() {
	case '+':
		p.pos++
		return p.parseUnary()
	case '-':
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	}
	return p.parsePower()
}

// parsePower handles exponentiation, which binds tighter than unary sign on
// the right and is right-associative: 2^3^2 = 2^(3^2).
func (p *parser) parsePower() (float64, error) {
	base, err := p.parseAtom()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.peek() == '^' {
		p.pos++
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

// parseAtom handles numbers, constants, function calls and grouping.
func (p *parser) parseAtom() (float64, error) {
	p.skipSpace()

	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("unexpected end of expression")
	}

	c := p.input[p.pos]

	if c == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis at position %d", p.pos)
		}
		p.pos++
		return v, nil
	}

	if c >= '0' && c <= '9' || c == '.' {
		return p.parseNumber()
	}

	if isIdentStart(rune(c)) {
		return p.parseIdent()
	}

	return 0, fmt.Errorf("unexpected %q at position %d", c, p.pos)
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q at position %d", p.input[start:p.pos], start)
	}
	return v, nil
}

func (p *parser) parseIdent() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && isIdentPart(rune(p.input[p.pos])) {
		p.pos++
	}
	name := strings.ToLower(p.input[start:p.pos])

	p.skipSpace()
	if p.peek() == '(' {
		p.pos++
		args, err := p.parseArgs()
		if err != nil {
			return 0, err
		}
		return applyFunc(name, args, start)
	}

	if v, ok := constants[name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown identifier %q at position %d", name, start)
}

func (p *parser) parseArgs() ([]float64, error) {
	var args []float64

	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return args, nil
	}

	for {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return args, nil
		default:
			return nil, fmt.Errorf("expected ',' or ')' at position %d", p.pos)
		}
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentPart(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }

// applyFunc dispatches a call to the fixed function table.
func applyFunc(name string, args []float64, pos int) (float64, error) {
	oneArg := func(f func(float64) float64) (float64, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		return f(args[0]), nil
	}

	switch name {
	case "sin":
		return oneArg(math.Sin)
	case "cos":
		return oneArg(math.Cos)
	case "tan":
		return oneArg(math.Tan)
	case "asin":
		if len(args) == 1 && (args[0] < -1 || args[0] > 1) {
			return 0, fmt.Errorf("asin argument out of range [-1, 1]")
		}
		return oneArg(math.Asin)
	case "acos":
		if len(args) == 1 && (args[0] < -1 || args[0] > 1) {
			return 0, fmt.Errorf("acos argument out of range [-1, 1]")
		}
		return oneArg(math.Acos)
	case "atan":
		return oneArg(math.Atan)
	case "sqrt":
		if len(args) == 1 && args[0] < 0 {
			return 0, fmt.Errorf("square root of negative number")
		}
		return oneArg(math.Sqrt)
	case "abs":
		return oneArg(math.Abs)
	case "floor":
		return oneArg(math.Floor)
	case "ceil":
		return oneArg(math.Ceil)
	case "round":
		return oneArg(math.Round)
	case "log", "ln":
		if len(args) == 1 && args[0] <= 0 {
			return 0, fmt.Errorf("logarithm of non-positive number")
		}
		return oneArg(math.Log)
	case "log10":
		if len(args) == 1 && args[0] <= 0 {
			return 0, fmt.Errorf("logarithm of non-positive number")
		}
		return oneArg(math.Log10)
	case "log2":
		if len(args) == 1 && args[0] <= 0 {
			return 0, fmt.Errorf("logarithm of non-positive number")
		}
		return oneArg(math.Log2)
	case "min":
		if len(args) == 0 {
			return 0, fmt.Errorf("min expects at least 1 argument")
		}
		v := args[0]
		for _, a := range args[1:] {
			v = math.Min(v, a)
		}
		return v, nil
	case "max":
		if len(args) == 0 {
			return 0, fmt.Errorf("max expects at least 1 argument")
		}
		v := args[0]
		for _, a := range args[1:] {
			v = math.Max(v, a)
		}
		return v, nil
	}

	return 0, fmt.Errorf("unknown function %q at position %d", name, pos)
}
