package placeholders

import (
	"errors"
	"fmt"
)

// Sentinel errors allow errors.Is checks against the parameterized error
// types below. Compile-time errors (template and pattern syntax) are always
// fatal; render-time errors are subject to the context fail mode.
var (
	ErrTemplateSyntax = errors.New("template syntax error")
	ErrPatternSyntax  = errors.New("duration pattern syntax error")

	ErrPlaceholderNotFound = errors.New("placeholder not found")
	ErrUnresolvedField     = errors.New("unresolved placeholder field")
	ErrNullField           = errors.New("placeholder field resolved to null")

	ErrForeignMessage = errors.New("context is bound to another message")
	ErrNoMessage      = errors.New("context has no message to render")
)

// SyntaxError reports a malformed template or placeholder expression.
// Pos is a byte offset into Source.
type SyntaxError struct {
	Source string
	Pos    int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template syntax error at %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrTemplateSyntax }

// PatternError reports a malformed duration pattern.
type PatternError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("duration pattern error at %d in %q: %s", e.Pos, e.Pattern, e.Msg)
}

func (e *PatternError) Unwrap() error { return ErrPatternSyntax }

// UnresolvedFieldError is returned by FailFast contexts when a placeholder
// has no binding and no usable handler.
type UnresolvedFieldError struct {
	Path    string
	Message string
}

func (e *UnresolvedFieldError) Error() string {
	return fmt.Sprintf("missing placeholder '%s' for message '%s'", e.Path, e.Message)
}

func (e *UnresolvedFieldError) Unwrap() error { return ErrUnresolvedField }

// NullFieldError is returned by FailFast contexts when a placeholder chain
// resolves to null.
type NullFieldError struct {
	Path    string
	Message string
}

func (e *NullFieldError) Error() string {
	return fmt.Sprintf("rendered null for placeholder '%s' for message '%s'", e.Path, e.Message)
}

func (e *NullFieldError) Unwrap() error { return ErrNullField }

// NotFoundError is returned by value extraction when the root binding of the
// requested path is absent from the context. Unlike rendering, extraction has
// no textual fallback, so this is an error regardless of the fail mode.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("placeholder '%s' not found in context", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrPlaceholderNotFound }
