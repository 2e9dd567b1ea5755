package drill

// Numeric bounds for generated problems.
const (
	maxAddSubOperand = 16
	maxMulOperand    = 10
	maxDivisor       = 32
	maxQuotient      = 16
	maxDividend      = 32

	divisionChance = 0.3
)

var otherOperators = []Operator{OpAdd, OpSubtract, OpMultiply}

// Generator produces random problems. It is not safe for concurrent use;
// the game controller serializes access under its own lock.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator drawing from src.
func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Next returns a division problem 30% of the time and an add, subtract or
// multiply problem otherwise.
func (g *Generator) Next() Problem {
	if g.src.Float64() < divisionChance {
		return g.Division()
	}
	return g.Other()
}

// Division returns dividend ÷ divisor with an exact integer quotient.
// The dividend never exceeds 32 and never equals the divisor; draws that
// break either rule are thrown away and redrawn.
func (g *Generator) Division() Problem {
	for {
		divisor := g.between(1, maxDivisor)
		quotient := g.between(1, maxQuotient)
		dividend := divisor * quotient
		if dividend > maxDividend || dividend == divisor {
			continue
		}
		return NewProblem(dividend, divisor, OpDivide)
	}
}

// Other returns an addition, subtraction or multiplication problem.
// Subtraction operands are ordered so the answer is never negative.
func (g *Generator) Other() Problem {
	op := otherOperators[g.src.IntN(len(otherOperators))]

	switch op {
	case OpSubtract:
		a := g.between(1, maxAddSubOperand)
		b := g.between(1, maxAddSubOperand)
		if a < b {
			a, b = b, a
		}
		return NewProblem(a, b, OpSubtract)
	case OpMultiply:
		return NewProblem(g.between(1, maxMulOperand), g.between(1, maxMulOperand), OpMultiply)
	default:
		return NewProblem(g.between(1, maxAddSubOperand), g.between(1, maxAddSubOperand), OpAdd)
	}
}

// between returns a uniform value in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.src.IntN(hi-lo+1)
}
