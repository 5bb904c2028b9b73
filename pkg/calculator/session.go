package calculator

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/charithe/scicalc/pkg/expr"
)

// Session holds the keypad state that lives outside the evaluator: the last
// answer, the memory register and the angle mode. Both values reach the
// evaluator only as text spliced into the next expression.
// This is not thread-safe and should only be accessed by a single goroutine.
type Session struct {
	Mode expr.AngleMode

	evaluator Evaluator
	ans       float64
	memory    float64
}

func NewSession(evaluator Evaluator) *Session {
	return &Session{evaluator: evaluator}
}

// Ans returns the last successful result, or 0.
func (s *Session) Ans() float64 {
	return s.ans
}

// Memory returns the memory register.
func (s *Session) Memory() float64 {
	return s.memory
}

// Eval evaluates input after replacing every standalone "Ans" with the last
// answer. A successful, non-NaN result becomes the new answer.
func (s *Session) Eval(ctx context.Context, input string) (float64, error) {
	v, err := s.evaluator.Evaluate(ctx, s.expand(input), s.Mode)
	if err != nil {
		return v, err
	}
	if !math.IsNaN(v) {
		s.ans = v
	}
	return v, nil
}

// MemoryAdd evaluates input and adds it to memory. NaN results leave the
// memory untouched.
func (s *Session) MemoryAdd(ctx context.Context, input string) error {
	return s.accumulate(ctx, input, 1)
}

// MemorySubtract evaluates input and subtracts it from memory. NaN results
// leave the memory untouched.
func (s *Session) MemorySubtract(ctx context.Context, input string) error {
	return s.accumulate(ctx, input, -1)
}

func (s *Session) accumulate(ctx context.Context, input string, sign float64) error {
	v, err := s.evaluator.Evaluate(ctx, s.expand(input), s.Mode)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		return nil
	}
	s.memory += sign * v
	return nil
}

// MemoryRecall appends the memory value to input.
func (s *Session) MemoryRecall(input string) string {
	return input + formatNumber(s.memory)
}

func (s *Session) MemoryClear() {
	s.memory = 0
}

func (s *Session) expand(input string) string {
	var b strings.Builder
	for i := 0; i < len(input); {
		if isAnsAt(input, i) && !isLetterAt(input, i-1) && !isLetterAt(input, i+3) {
			b.WriteString("(" + formatNumber(s.ans) + ")")
			i += 3
			continue
		}
		b.WriteByte(input[i])
		i++
	}
	return b.String()
}

func isAnsAt(s string, i int) bool {
	if i+3 > len(s) {
		return false
	}
	for j, c := range []byte("ans") {
		if s[i+j]|0x20 != c {
			return false
		}
	}
	return true
}

func isLetterAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// formatNumber renders v as expression text that evaluates back to v.
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "(1/0)"
	case math.IsInf(v, -1):
		return "(-1/0)"
	case math.IsNaN(v):
		return "(0/0)"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var spokenWords = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)into`), "*"},
	{regexp.MustCompile(`(?i)times`), "*"},
	{regexp.MustCompile(`(?i)plus`), "+"},
	{regexp.MustCompile(`(?i)minus`), "-"},
	{regexp.MustCompile(`(?i)divided by`), "/"},
}

// CleanSpoken rewrites the operator words of a voice transcript, such as
// "3 times 4 minus 2", into operator symbols.
func CleanSpoken(s string) string {
	for _, w := range spokenWords {
		s = w.re.ReplaceAllLiteralString(s, w.repl)
	}
	return s
}
