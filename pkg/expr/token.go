package expr

import "strconv"

// Kind classifies a token.
type Kind int

const (
	// Number is a numeric literal as written.
	Number Kind = iota
	// Constant is a lower-cased identifier found in the constant table.
	Constant
	// Function is any other lower-cased identifier.
	Function
	// Operator is one of the operator symbols, or the unary minus "u-".
	Operator
	// LeftParen is (.
	LeftParen
	// RightParen is ).
	RightParen
	// Separator is the function argument separator ,.
	Separator
)

var kindNames = [...]string{
	Number:     "Number",
	Constant:   "Constant",
	Function:   "Function",
	Operator:   "Operator",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	Separator:  "Separator",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Token is the unit passed between the pipeline stages.
type Token struct {
	Kind Kind
	Text string
	// Pos is the 1-based rune offset of the token in the normalized input.
	// Synthetic tokens carry the position of the token they precede.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// isValue reports whether the token ends an operand, i.e. whether a value
// written directly after it is an implicit product.
func (t Token) isValue() bool {
	return t.Kind == Number || t.Kind == Constant || t.Kind == RightParen
}

// startsValue reports whether the token can begin an operand.
func (t Token) startsValue() bool {
	return t.Kind == Number || t.Kind == Constant || t.Kind == Function || t.Kind == LeftParen
}
