package sparse

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Parse reads an array literal in which empty positions denote holes:
//
//	a, _ := sparse.Parse("[10, 2, , 4]")
//	a.Len()   // 4
//	a.Has(2)  // false
//
// Elements are JSON values (numbers decode as float64), single-quoted
// strings, nested array literals, or the bare word undefined, which yields
// a present nil. A single trailing comma is ignored, so "[1, 2, ]" has
// length 2 while "[1, , ]" has length 2 with a hole at index 1.
//
// Malformed input fails with [ErrSyntax].
func Parse(src string) (*Array[any], error) {
	src = strings.TrimSpace(src)
	if len(src) < 2 || src[0] != '[' || src[len(src)-1] != ']' {
		return nil, fmt.Errorf("%w: must be enclosed in brackets", ErrSyntax)
	}
	inner := src[1 : len(src)-1]
	if strings.TrimSpace(inner) == "" {
		return Empty[any](), nil
	}
	pieces, err := splitElements(inner)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(pieces[len(pieces)-1]) == "" {
		pieces = pieces[:len(pieces)-1]
	}

	out := WithLength[any](len(pieces))
	for i, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		v, err := parseElement(piece)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrSyntax, i, err)
		}
		out.values[i] = v
		out.present.Set(uint(i))
	}
	return out, nil
}

// MustParse is like [Parse] but panics on error. It is meant for tests and
// package-level fixtures.
func MustParse(src string) *Array[any] {
	a, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return a
}

// splitElements splits s at the commas that are not nested in brackets,
// braces or quotes.
func splitElements(s string) ([]string, error) {
	var (
		pieces []string
		depth  int
		quote  byte
		escape bool
		start  int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch {
			case escape:
				escape = false
			case c == '\\':
				escape = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced %q at offset %d", ErrSyntax, c, i+1)
			}
		case ',':
			if depth == 0 {
				pieces = append(pieces, s[start:i])
				start = i + 1
			}
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("%w: unterminated string", ErrSyntax)
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced brackets", ErrSyntax)
	}
	return append(pieces, s[start:]), nil
}

func parseElement(piece string) (any, error) {
	switch {
	case piece == "undefined":
		return nil, nil
	case piece[0] == '[':
		return Parse(piece)
	case piece[0] == '\'':
		if len(piece) < 2 || piece[len(piece)-1] != '\'' {
			return nil, fmt.Errorf("malformed string %s", piece)
		}
		return strings.ReplaceAll(piece[1:len(piece)-1], `\'`, "'"), nil
	}
	var v any
	if err := json.Unmarshal([]byte(piece), &v); err != nil {
		return nil, err
	}
	return v, nil
}
