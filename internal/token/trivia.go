package token

import "pyfieldlint/internal/source"

// TriviaKind classifies non-significant source text attached to tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaComment
	TriviaLineContinuation
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComment:
		return "Comment"
	case TriviaLineContinuation:
		return "LineContinuation"
	}
	return "Unknown"
}

// Trivia is a run of whitespace, a comment, or a backslash continuation
// preceding a significant token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
