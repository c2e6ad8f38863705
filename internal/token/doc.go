// Package token defines the Python-subset token vocabulary produced by the
// lexer and consumed by the parser.
//
// The vocabulary covers exactly what the checker needs to recover class
// structure from Python source: identifiers and keywords, the literal
// kinds, operators and delimiters, and the three structural tokens that
// encode Python's layout (Newline, Indent, Dedent). Comments, whitespace
// runs, and backslash continuations are preserved as Trivia attached to
// the following significant token so that spans stay exact.
package token
