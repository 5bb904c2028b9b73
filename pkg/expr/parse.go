package expr

// InsertImplicitMultiplication returns a copy of toks with a * operator
// inserted wherever juxtaposition implies a product: after a number, constant
// or ) and before a number, constant, function or (. A function followed by
// ( is application, not a product, and operators never trigger insertion.
func InsertImplicitMultiplication(toks []Token) []Token {
	if len(toks) == 0 {
		return nil
	}
	out := make([]Token, 0, len(toks)+len(toks)/2)
	out = append(out, toks[0])
	for i := 1; i < len(toks); i++ {
		if toks[i-1].isValue() && toks[i].startsValue() {
			out = append(out, Token{Kind: Operator, Text: "*", Pos: toks[i].Pos})
		}
		out = append(out, toks[i])
	}
	return out
}

// markUnary returns a copy of toks in which every - that begins an operand is
// replaced by the unary minus. A - is unary when it is the first token or
// directly follows an operator, a ( or a separator.
func markUnary(toks []Token) []Token {
	out := make([]Token, len(toks))
	copy(out, toks)
	for i, tok := range out {
		if tok.Kind != Operator || tok.Text != "-" {
			continue
		}
		if i == 0 {
			out[i].Text = unaryMinus
			continue
		}
		switch toks[i-1].Kind {
		case Operator, LeftParen, Separator:
			out[i].Text = unaryMinus
		}
	}
	return out
}

// stackPrec is the precedence of a pending operator stack entry. Functions
// rank below every operator so only ), a separator or the final flush
// release them.
func stackPrec(tok Token) int {
	if tok.Kind != Operator {
		return 0
	}
	return lookupOperator(tok.Text).prec
}

// ToPostfix converts an infix token sequence into postfix order with the
// shunting-yard algorithm.
//
// Unbalanced parentheses are tolerated: a stray ) closes nothing and an
// unclosed ( is dropped at the end. The returned sequence is always complete;
// the error, if any, is a MismatchedParens for the first offending
// parenthesis and callers may choose to tolerate it.
func ToPostfix(toks []Token) ([]Token, error) {
	toks = markUnary(toks)

	var (
		output   = make([]Token, 0, len(toks))
		stack    []Token
		mismatch error
	)
	top := func() (Token, bool) {
		if len(stack) == 0 {
			return Token{}, false
		}
		return stack[len(stack)-1], true
	}
	pop := func() Token {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return t
	}
	// flush moves entries to the output until a ( is on top. It reports
	// whether a ( was found.
	flush := func() bool {
		for len(stack) > 0 {
			if t, _ := top(); t.Kind == LeftParen {
				return true
			}
			output = append(output, pop())
		}
		return false
	}

	for _, tok := range toks {
		switch tok.Kind {
		case Number, Constant:
			output = append(output, tok)

		case Function, LeftParen:
			stack = append(stack, tok)

		case Separator:
			flush()

		case Operator:
			op := lookupOperator(tok.Text)
			for {
				t, ok := top()
				if !ok || t.Kind == LeftParen {
					break
				}
				p := stackPrec(t)
				if op.prec < p || op.assoc == leftAssoc && op.prec == p {
					output = append(output, pop())
					continue
				}
				break
			}
			stack = append(stack, tok)

		case RightParen:
			if !flush() {
				if mismatch == nil {
					mismatch = newError(MismatchedParens, tok)
				}
				continue
			}
			pop()
			if t, ok := top(); ok && t.Kind == Function {
				output = append(output, pop())
			}
		}
	}

	for len(stack) > 0 {
		t := pop()
		if t.Kind == LeftParen || t.Kind == RightParen {
			if mismatch == nil {
				mismatch = newError(MismatchedParens, t)
			}
			continue
		}
		output = append(output, t)
	}
	return output, mismatch
}
