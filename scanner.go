package placeholders

import (
	"strings"

	"golang.org/x/text/language"
)

// The escapable set of the placeholder expression grammar. A backslash before
// any of these neutralizes it and is stripped; before anything else the
// backslash stays literal.
const escapable = "{},|()#."

func isEscapable(c byte) bool { return strings.IndexByte(escapable, c) >= 0 }

// unescapeExpr strips backslashes that precede escapable characters.
func unescapeExpr(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isEscapable(s[i+1]) {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// escapeExpr is the inverse of unescapeExpr, used to build canonical field
// keys that cannot collide.
func escapeExpr(s string) string {
	if !strings.ContainsAny(s, escapable) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if isEscapable(s[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// splitUnescaped splits s on every unescaped occurrence of sep that sits at
// parenthesis depth zero. Empty entries are preserved.
func splitUnescaped(s string, sep byte) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && isEscapable(s[i+1]) {
			i++
			continue
		}
		switch {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == sep && depth == 0:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

// parseBody parses a placeholder body (the text between an unescaped '{' and
// its matching '}') into a field chain with optional metadata and fallback.
//
// The body is scanned left to right tracking escape state and parenthesis
// depth. At depth zero the first unescaped '#' splits metadata from the
// remainder, and the last unescaped '|' of the remainder splits the field
// chain from the fallback literal.
func parseBody(body string, locale language.Tag) (*MessageField, error) {
	metaEnd := -1
	fbStart := -1
	depth := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) && isEscapable(body[i+1]) {
			i++
			continue
		}
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, &SyntaxError{Source: body, Pos: i, Msg: "unbalanced ')'"}
			}
		case '#':
			if depth == 0 && metaEnd < 0 {
				metaEnd = i
			}
		case '|':
			if depth == 0 {
				fbStart = i
			}
		}
	}
	if depth != 0 {
		return nil, &SyntaxError{Source: body, Pos: len(body), Msg: "unbalanced '('"}
	}

	meta := ""
	hasMeta := false
	rest := body
	if metaEnd >= 0 {
		meta = body[:metaEnd]
		hasMeta = true
		rest = body[metaEnd+1:]
		// Pipes inside the metadata section do not open a fallback.
		if fbStart < metaEnd {
			fbStart = -1
		} else {
			fbStart -= metaEnd + 1
		}
	}

	fallback := ""
	hasFallback := false
	chain := rest
	if fbStart >= 0 {
		chain = rest[:fbStart]
		fallback = unescapeExpr(rest[fbStart+1:])
		hasFallback = true
	}

	field, err := parseChain(chain, locale)
	if err != nil {
		return nil, err
	}
	field.metadata = meta
	field.hasMeta = hasMeta
	field.fallback = fallback
	field.hasFallback = hasFallback
	field.key = field.computeKey()
	return field, nil
}

// parseChain parses a dot-separated field chain into a right-leaning linked
// chain of segments. Dots inside parameter lists do not split.
func parseChain(chain string, locale language.Tag) (*MessageField, error) {
	segments := splitUnescaped(chain, '.')
	root := &MessageField{}
	cur := root
	for idx, seg := range segments {
		name, params, err := parseSegment(seg)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, &SyntaxError{Source: chain, Pos: 0, Msg: "empty field name"}
		}
		if idx == 0 {
			cur.name = name
			cur.params = params
			cur.locale = locale
			continue
		}
		next := &MessageField{name: name, params: params, locale: locale}
		cur.sub = next
		cur = next
	}
	return root, nil
}

// parseSegment splits one chain segment into its name and its optional
// parenthesized parameter list. An empty list "()" yields a single empty
// parameter; empty interior and trailing entries are preserved. Parameters
// are kept raw apart from escape resolution: nested calls inside a parameter
// are not parsed here.
func parseSegment(seg string) (string, []string, error) {
	open := -1
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c == '\\' && i+1 < len(seg) && isEscapable(seg[i+1]) {
			i++
			continue
		}
		if c == '(' {
			open = i
			break
		}
	}
	if open < 0 {
		return unescapeExpr(seg), nil, nil
	}

	name := unescapeExpr(seg[:open])
	params := make([]string, 0, 2)
	depth := 1
	start := open + 1
	for i := open + 1; i < len(seg); i++ {
		c := seg[i]
		if c == '\\' && i+1 < len(seg) && isEscapable(seg[i+1]) {
			i++
			continue
		}
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if i != len(seg)-1 {
					return "", nil, &SyntaxError{Source: seg, Pos: i + 1, Msg: "unexpected text after parameter list"}
				}
				params = append(params, unescapeExpr(seg[start:i]))
				return name, params, nil
			}
		case ',':
			if depth == 1 {
				params = append(params, unescapeExpr(seg[start:i]))
				start = i + 1
			}
		}
	}
	return "", nil, &SyntaxError{Source: seg, Pos: len(seg), Msg: "unbalanced '('"}
}

// ParseField parses a standalone field-chain expression, such as the path
// argument of Context.Value. The same grammar as placeholder bodies applies,
// including metadata and fallback sections.
func ParseField(expr string) (*MessageField, error) {
	return parseBody(expr, language.Und)
}
