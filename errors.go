package crunch

import (
	"strconv"
	"unicode"
)

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

// BracketError indicates mismatched parentheses: an opening ( that the
// input ends before closing, or a stray ) with no open group.
type BracketError struct {
	// Col is the position of the offending parenthesis.
	Col int
	// Left is the unterminated opening parenthesis, if any.
	Left string
	// Right is the unmatched closing parenthesis, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open group")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int { return err.Col }

// DepthError indicates parenthesis nesting beyond the supported limit.
type DepthError struct {
	// Col is the position of the parenthesis that exceeded the limit.
	Col int
	// Limit is the maximum nesting depth.
	Limit int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "groups nested deeper than "+strconv.Itoa(err.Limit)+" levels")
}

func (err *DepthError) Pos() int { return err.Col }

// TokenError indicates a character outside the recognized token set.
type TokenError struct {
	// Col is the position of the character.
	Col int
	// Rune is the character that was not understood.
	Rune rune
}

func (err *TokenError) Error() string {
	r := string(err.Rune)
	if !unicode.IsGraphic(err.Rune) {
		r = strconv.QuoteRune(err.Rune)
	}
	return errpos(err.Col, "unexpected character "+r)
}

func (err *TokenError) Pos() int { return err.Col }

// NumberError indicates a #-prefixed literal whose hexadecimal text is
// empty or invalid.
type NumberError struct {
	// Col is the position of the #.
	Col int
	// Text is the literal as scanned, including the #.
	Text string
}

func (err *NumberError) Error() string {
	if err.Text == "#" {
		return errpos(err.Col, "hex literal with no digits")
	}
	return errpos(err.Col, "invalid hex literal "+err.Text)
}

func (err *NumberError) Pos() int { return err.Col }

// OperandError indicates an operator with no term to bind on one side
// during resolution.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator's token.
	Op string
	// Left reports whether the missing operand is the left-hand one.
	Left bool
}

func (err *OperandError) Error() string {
	side := "right"
	if err.Left {
		side = "left"
	}
	return errpos(err.Col, "missing "+side+"-hand operand for "+strconv.Quote(err.Op))
}

func (err *OperandError) Pos() int { return err.Col }

// ResolveError indicates a group that did not collapse to a single term
// after resolution, e.g. two literals with no operator between them.
type ResolveError struct {
	// Col is the position of the first term that did not bind.
	Col int
	// N is the number of terms remaining in the group.
	N int
}

func (err *ResolveError) Error() string {
	return errpos(err.Col, "expression did not fully resolve ("+strconv.Itoa(err.N)+" terms remain)")
}

func (err *ResolveError) Pos() int { return err.Col }

// EmptyExpressionError indicates an empty input or an empty group.
type EmptyExpressionError struct {
	// Col is the position of the group that had no terms.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "empty expression")
}

func (err *EmptyExpressionError) Pos() int { return err.Col }

// LiteralError indicates literal text that failed to parse as a number
// during evaluation.
type LiteralError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal's text.
	Text string
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "invalid numeric literal "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int { return err.Col }

// InternalError indicates an operator placeholder that survived past
// resolution into evaluation. It is reported rather than recovered, but it
// should not occur when resolution runs first.
type InternalError struct {
	// Col is the position of the placeholder.
	Col int
	// Op is the placeholder's token.
	Op string
}

func (err *InternalError) Error() string {
	return errpos(err.Col, "unresolved operator "+strconv.Quote(err.Op)+" reached evaluation")
}

func (err *InternalError) Pos() int { return err.Col }

// DomainError indicates arguments outside the domain an operation supports
// under arbitrary-precision evaluation.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator's token.
	Op string
}

func (err *DomainError) Error() string {
	return errpos(err.Col, "operands outside the domain of "+strconv.Quote(err.Op))
}

func (err *DomainError) Pos() int { return err.Col }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*BracketError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*ResolveError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*InternalError)(nil)
	_ InputError = (*DomainError)(nil)
)
