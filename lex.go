package crunch

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// maxDepth bounds parenthesis nesting so that hostile input cannot exhaust
// the stack through recursive group tokenization.
const maxDepth = 64

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	g    grammar
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// tokenize scans one parenthesis level into a flat term sequence. No
// precedence is applied; operators come out as unresolved placeholders.
// Parenthesized substrings are captured whole and tokenized recursively
// with the same algorithm.
func (l *lexer) tokenize(depth int) ([]term, error) {
	var body []term
	for {
		col := l.rune
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return body, nil
			}
			return nil, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			text, err := l.scanNum()
			if err != nil {
				return nil, err
			}
			body = append(body, &literal{text: text, col: col})
		case r == '#' && l.g.hex:
			text, err := l.scanHex(col)
			if err != nil {
				return nil, err
			}
			body = append(body, &literal{text: text, col: col})
		case r == '(':
			if depth >= maxDepth {
				return nil, &DepthError{Col: col, Limit: maxDepth}
			}
			sub, err := l.capture(col)
			if err != nil {
				return nil, err
			}
			inner := &lexer{src: strings.NewReader(sub), rune: col + 1, g: l.g}
			b, err := inner.tokenize(depth + 1)
			if err != nil {
				return nil, err
			}
			body = append(body, &group{body: b, col: col})
		case r == ')':
			return nil, &BracketError{Col: col, Right: ")"}
		default:
			if k, ok := l.g.ops[r]; ok {
				body = append(body, &operator{kind: k, col: col})
				continue
			}
			return nil, &TokenError{Col: col, Rune: r}
		}
	}
}

// capture consumes the balanced substring opened by a ( the caller already
// read. A depth counter tracks nested pairs; only a ) at depth zero closes
// the group. open is the column of the opening parenthesis.
func (l *lexer) capture(open int) (string, error) {
	var b strings.Builder
	depth := 0
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", &BracketError{Col: open, Left: "("}
			}
			return "", err
		}
		switch r {
		case ')':
			if depth == 0 {
				return b.String(), nil
			}
			depth--
		case '(':
			depth++
		}
		b.WriteRune(r)
	}
}

// scanNum greedily consumes digits and, when the grammar allows decimals,
// at most one decimal point. A number ending in the point gets a trailing
// zero appended so it parses as a valid float later.
func (l *lexer) scanNum() (string, error) {
	defer l.buf.Reset()
	dot := false
scan:
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		switch {
		case '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		case r == '.' && l.g.decimals && !dot:
			dot = true
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			break scan
		}
	}
	text := l.buf.String()
	if strings.HasSuffix(text, ".") {
		text += "0"
	}
	return text, nil
}

// scanHex consumes the hexadecimal digits following a # and returns the
// decimal text of their value. col is the column of the #.
func (l *lexer) scanHex(col int) (string, error) {
	defer l.buf.Reset()
scan:
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			break scan
		}
	}
	text := l.buf.String()
	if text == "" {
		return "", &NumberError{Col: col, Text: "#"}
	}
	v, err := strconv.ParseUint(text, 16, 64)
	if err != nil {
		return "", &NumberError{Col: col, Text: "#" + text}
	}
	return strconv.FormatUint(v, 10), nil
}
