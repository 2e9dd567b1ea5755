package drill

import "fmt"

// Operator is one of the four arithmetic operations a problem can use.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// Symbol returns the glyph shown between the two operands.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}

// Problem is a single generated question. It is a plain value and is never
// modified after generation.
type Problem struct {
	Operand1    int
	Operand2    int
	Operator    Operator
	Answer      int
	DisplayText string // operands in binary, e.g. "1010 + 11"
}

// NewProblem builds a Problem from its operands, computing the answer and
// the binary display text. Division is integer division.
func NewProblem(a, b int, op Operator) Problem {
	var answer int
	switch op {
	case OpAdd:
		answer = a + b
	case OpSubtract:
		answer = a - b
	case OpMultiply:
		answer = a * b
	case OpDivide:
		if b != 0 {
			answer = a / b
		}
	}
	return Problem{
		Operand1:    a,
		Operand2:    b,
		Operator:    op,
		Answer:      answer,
		DisplayText: fmt.Sprintf("%s %s %s", ToBinaryString(a), op.Symbol(), ToBinaryString(b)),
	}
}

// Decimal renders the worked problem in base 10, e.g. "10 + 3 = 13".
func (p Problem) Decimal() string {
	return fmt.Sprintf("%d %s %d = %d", p.Operand1, p.Operator.Symbol(), p.Operand2, p.Answer)
}
