// Package expr evaluates calculator expressions as a person types them.
//
// An expression passes through five stages: Normalize rewrites glyphs such as
// × and √ into ASCII, Tokenize scans the result, InsertImplicitMultiplication
// turns "2pi" and "2(3)" into products, ToPostfix orders the tokens with the
// shunting-yard algorithm and EvalPostfix runs the postfix sequence on a
// stack. Evaluate chains them and returns NaN on any failure; Eval returns the
// reason instead.
//
// "-2^2" is 4: the unary minus binds tighter than ^. "2^3^2" is 512.
// Functions take their arguments in parentheses, so "sin30" is only the
// unknown function sin30, while "2sin(30)" is 2*sin(30).
package expr
