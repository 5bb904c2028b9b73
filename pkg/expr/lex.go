package expr

import (
	"strings"
	"unicode"
)

// Operators contains the runes which are lexed as operators.
const Operators = "+-*/^!%"

// Tokenize scans a normalized expression into tokens. Whitespace is discarded
// before scanning, so "1 2" is the number 12.
//
// Characters that match no token rule are skipped. The returned tokens are
// always complete; the error, if any, is a LexicalReject for the first
// skipped character and callers may choose to tolerate it.
func Tokenize(s string) ([]Token, error) {
	src := make([]rune, 0, len(s))
	pos := make([]int, 0, len(s))
	p := 0
	for _, r := range s {
		p++
		if unicode.IsSpace(r) {
			continue
		}
		src = append(src, r)
		pos = append(pos, p)
	}

	var (
		toks   []Token
		reject error
	)
	for i := 0; i < len(src); {
		r := src[i]
		switch {
		case isDigit(r) || r == '.' && i+1 < len(src) && isDigit(src[i+1]):
			j := i
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			if j < len(src) && src[j] == '.' {
				j++
				for j < len(src) && isDigit(src[j]) {
					j++
				}
			}
			toks = append(toks, Token{Kind: Number, Text: string(src[i:j]), Pos: pos[i]})
			i = j
		case isIdentStart(r):
			j := i + 1
			for j < len(src) && isIdentPart(src[j]) {
				j++
			}
			name := strings.ToLower(string(src[i:j]))
			kind := Function
			if _, ok := constants[name]; ok {
				kind = Constant
			}
			toks = append(toks, Token{Kind: kind, Text: name, Pos: pos[i]})
			i = j
		case strings.ContainsRune(Operators, r):
			toks = append(toks, Token{Kind: Operator, Text: string(r), Pos: pos[i]})
			i++
		case r == '(':
			toks = append(toks, Token{Kind: LeftParen, Text: "(", Pos: pos[i]})
			i++
		case r == ')':
			toks = append(toks, Token{Kind: RightParen, Text: ")", Pos: pos[i]})
			i++
		case r == ',':
			toks = append(toks, Token{Kind: Separator, Text: ",", Pos: pos[i]})
			i++
		default:
			if reject == nil {
				reject = &Error{Kind: LexicalReject, Symbol: string(r), Pos: pos[i]}
			}
			i++
		}
	}
	return toks, reject
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
