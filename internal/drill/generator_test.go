package drill

import "testing"

// scriptedSource replays fixed draws so individual sampling paths can be
// asserted exactly.
type scriptedSource struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	s.t.Helper()
	if len(s.ints) == 0 {
		s.t.Fatalf("IntN(%d) called with no scripted ints left", n)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted int %d out of range for IntN(%d)", v, n)
	}
	return v
}

func (s *scriptedSource) Float64() float64 {
	s.t.Helper()
	if len(s.floats) == 0 {
		s.t.Fatal("Float64 called with no scripted floats left")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestDivision_PropertiesHoldAcrossSeeds(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 20; seed++ {
		g := NewGenerator(NewSource(seed))
		for i := 0; i < 500; i++ {
			p := g.Division()
			if p.Operator != OpDivide {
				t.Fatalf("operator = %v, want divide", p.Operator)
			}
			if p.Operand1 > 32 {
				t.Fatalf("dividend %d exceeds 32", p.Operand1)
			}
			if p.Operand1 == p.Operand2 {
				t.Fatalf("dividend equals divisor: %+v", p)
			}
			if p.Operand1 != p.Operand2*p.Answer {
				t.Fatalf("dividend %d != divisor %d * quotient %d", p.Operand1, p.Operand2, p.Answer)
			}
			if p.Answer < 1 || p.Answer > 16 {
				t.Fatalf("quotient %d out of [1,16]", p.Answer)
			}
		}
	}
}

func TestDivision_ResamplesRejectedDraws(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{t: t, ints: []int{
		4, 0, // 5 * 1 = 5, dividend == divisor
		19, 1, // 20 * 2 = 40, too large
		3, 2, // 4 * 3 = 12, accepted
	}}
	p := NewGenerator(src).Division()

	if p.Operand1 != 12 || p.Operand2 != 4 || p.Answer != 3 {
		t.Fatalf("problem = %+v, want 12 ÷ 4 = 3", p)
	}
	if p.DisplayText != "1100 ÷ 100" {
		t.Fatalf("display = %q, want %q", p.DisplayText, "1100 ÷ 100")
	}
	if len(src.ints) != 0 {
		t.Fatalf("%d scripted draws left unused", len(src.ints))
	}
}

func TestOther_SubtractionIsOrdered(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{t: t, ints: []int{1, 2, 8}} // subtract, 3, 9
	p := NewGenerator(src).Other()

	if p.Operator != OpSubtract {
		t.Fatalf("operator = %v, want subtract", p.Operator)
	}
	if p.Operand1 != 9 || p.Operand2 != 3 || p.Answer != 6 {
		t.Fatalf("problem = %+v, want 9 - 3 = 6", p)
	}
	if p.DisplayText != "1001 - 11" {
		t.Fatalf("display = %q, want %q", p.DisplayText, "1001 - 11")
	}
}

func TestOther_PropertiesHoldAcrossSeeds(t *testing.T) {
	t.Parallel()

	seen := map[Operator]bool{}
	for seed := uint64(1); seed <= 20; seed++ {
		g := NewGenerator(NewSource(seed))
		for i := 0; i < 500; i++ {
			p := g.Other()
			seen[p.Operator] = true
			switch p.Operator {
			case OpAdd:
				if p.Operand1 < 1 || p.Operand1 > 16 || p.Operand2 < 1 || p.Operand2 > 16 {
					t.Fatalf("add operands out of range: %+v", p)
				}
				if p.Answer != p.Operand1+p.Operand2 {
					t.Fatalf("add answer wrong: %+v", p)
				}
			case OpSubtract:
				if p.Operand2 < 1 || p.Operand1 < p.Operand2 || p.Operand1 > 16 {
					t.Fatalf("subtract operands not ordered in range: %+v", p)
				}
				if p.Answer != p.Operand1-p.Operand2 || p.Answer < 0 {
					t.Fatalf("subtract answer wrong: %+v", p)
				}
			case OpMultiply:
				if p.Operand1 < 1 || p.Operand1 > 10 || p.Operand2 < 1 || p.Operand2 > 10 {
					t.Fatalf("multiply operands out of range: %+v", p)
				}
				if p.Answer != p.Operand1*p.Operand2 {
					t.Fatalf("multiply answer wrong: %+v", p)
				}
			default:
				t.Fatalf("unexpected operator %v from Other", p.Operator)
			}
		}
	}
	for _, op := range otherOperators {
		if !seen[op] {
			t.Errorf("operator %v never generated", op)
		}
	}
}

func TestNext_DispatchesOnDivisionChance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		roll float64
		ints []int
		want Operator
	}{
		{name: "below threshold divides", roll: 0.29, ints: []int{1, 3}, want: OpDivide},
		{name: "at threshold falls through", roll: 0.3, ints: []int{0, 0, 0}, want: OpAdd},
		{name: "high roll multiplies", roll: 0.99, ints: []int{2, 1, 1}, want: OpMultiply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := &scriptedSource{t: t, floats: []float64{tt.roll}, ints: tt.ints}
			if got := NewGenerator(src).Next().Operator; got != tt.want {
				t.Fatalf("operator = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNext_MixesOperatorsRoughlyAsConfigured(t *testing.T) {
	t.Parallel()

	g := NewGenerator(NewSource(42))
	const n = 10000
	divisions := 0
	for i := 0; i < n; i++ {
		if g.Next().Operator == OpDivide {
			divisions++
		}
	}
	ratio := float64(divisions) / n
	if ratio < 0.27 || ratio > 0.33 {
		t.Fatalf("division ratio = %.3f, want about 0.3", ratio)
	}
}

func TestProblem_Decimal(t *testing.T) {
	t.Parallel()

	if got := NewProblem(10, 3, OpAdd).Decimal(); got != "10 + 3 = 13" {
		t.Fatalf("decimal = %q", got)
	}
	if got := NewProblem(7, 4, OpMultiply).Decimal(); got != "7 × 4 = 28" {
		t.Fatalf("decimal = %q", got)
	}
}
