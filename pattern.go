package placeholders

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
)

type patternTokenKind uint8

const (
	tokenLiteral patternTokenKind = iota
	tokenRequired
	tokenOptional
)

// patternToken is one element of a compiled duration pattern: a literal run,
// a required "[unit]" token or an optional "(unit)" token, the latter two
// optionally carrying a "<form,...>" pluralization clause evaluated against
// the token's own value.
type patternToken struct {
	kind  patternTokenKind
	text  string // literal text
	unit  int    // index into durationUnits
	forms []string
}

// DurationPattern is a compiled duration pattern, immutable and safe to
// share across concurrent renders.
type DurationPattern struct {
	raw    string
	tokens []patternToken
}

// Raw returns the pattern source.
func (dp *DurationPattern) Raw() string { return dp.raw }

// patternCache holds compiled patterns per distinct pattern string.
// Successful compilations only; failures stay cheap to report repeatedly.
var patternCache sync.Map // string -> *DurationPattern

func compiledPattern(pattern string) (*DurationPattern, error) {
	if v, ok := patternCache.Load(pattern); ok {
		return v.(*DurationPattern), nil
	}
	dp, err := CompileDurationPattern(pattern)
	if err != nil {
		return nil, err
	}
	patternCache.Store(pattern, dp)
	return dp, nil
}

// CompileDurationPattern parses a custom duration pattern into its token
// sequence. "[unit]" is required, "(unit)" optional, either may be followed
// by "<form,form,...>"; everything else is literal text. Units are d, h, m,
// s, ms, ns.
func CompileDurationPattern(pattern string) (*DurationPattern, error) {
	dp := &DurationPattern{raw: pattern}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			dp.tokens = append(dp.tokens, patternToken{kind: tokenLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(pattern) {
		c := pattern[i]
		switch c {
		case '[', '(':
			closer := byte(']')
			kind := tokenRequired
			if c == '(' {
				closer = ')'
				kind = tokenOptional
			}
			end := strings.IndexByte(pattern[i+1:], closer)
			if end < 0 {
				return nil, &PatternError{Pattern: pattern, Pos: i, Msg: "unbalanced '" + string(c) + "'"}
			}
			unit := pattern[i+1 : i+1+end]
			ui := durationUnitIndex(unit)
			if ui < 0 {
				return nil, &PatternError{Pattern: pattern, Pos: i + 1, Msg: "unknown unit '" + unit + "'"}
			}
			flush()
			tok := patternToken{kind: kind, unit: ui}
			i += end + 2
			if i < len(pattern) && pattern[i] == '<' {
				cl := strings.IndexByte(pattern[i+1:], '>')
				if cl < 0 {
					return nil, &PatternError{Pattern: pattern, Pos: i, Msg: "unbalanced '<'"}
				}
				tok.forms = strings.Split(pattern[i+1:i+1+cl], ",")
				i += cl + 2
			}
			dp.tokens = append(dp.tokens, tok)
		case ']', ')', '>':
			return nil, &PatternError{Pattern: pattern, Pos: i, Msg: "unbalanced '" + string(c) + "'"}
		case '<':
			return nil, &PatternError{Pattern: pattern, Pos: i, Msg: "pluralization clause without a unit token"}
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return dp, nil
}

// Render formats a duration against the compiled pattern. Required tokens
// always render their component value; optional tokens render only when the
// value is non-zero, and suppress the literal glued to their right with
// them. Pluralization clauses select a form by the token's own value. The
// sign of a negative duration renders as a single leading minus.
func (dp *DurationPattern) Render(d time.Duration, locale language.Tag, provider PluralProvider) string {
	parts, neg := splitDuration(d)
	var b strings.Builder
	skipLiteral := false
	for _, tok := range dp.tokens {
		if tok.kind == tokenLiteral {
			if skipLiteral {
				skipLiteral = false
				continue
			}
			b.WriteString(tok.text)
			continue
		}
		skipLiteral = false
		v := parts[tok.unit]
		if tok.kind == tokenOptional && v == 0 {
			skipLiteral = true
			continue
		}
		b.WriteString(strconv.FormatInt(v, 10))
		if len(tok.forms) > 0 && provider != nil {
			idx := provider.Index(locale, v, len(tok.forms))
			if idx >= 0 && idx < len(tok.forms) {
				b.WriteString(tok.forms[idx])
			}
		}
	}
	out := b.String()
	if neg && out != "" {
		out = "-" + out
	}
	return out
}
