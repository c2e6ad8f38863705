package token_test

import (
	"testing"

	"pyfieldlint/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		text string
		want token.Kind
	}{
		{"class", token.KwClass},
		{"def", token.KwDef},
		{"lambda", token.KwLambda},
		{"None", token.KwNone},
		{"True", token.KwTrue},
		{"match", token.Ident}, // soft keyword stays an identifier
		{"type", token.Ident},
		{"Field", token.Ident},
	}
	for _, tc := range cases {
		if got := token.LookupKeyword(tc.text); got != tc.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(token.Token{Kind: token.StringLit}).IsLiteral() {
		t.Error("StringLit should be a literal")
	}
	if !(token.Token{Kind: token.KwNone}).IsLiteral() {
		t.Error("None should be a literal")
	}
	if (token.Token{Kind: token.Ident}).IsLiteral() {
		t.Error("Ident is not a literal")
	}
	if !(token.Token{Kind: token.KwClass}).IsKeyword() {
		t.Error("class should be a keyword")
	}
	if (token.Token{Kind: token.KwNone}).IsIdent() {
		t.Error("None is not an identifier")
	}
	if !(token.Token{Kind: token.At}).OpensLine() {
		t.Error("@ opens a line")
	}
}

func TestKindString(t *testing.T) {
	if got := token.Dedent.String(); got != "Dedent" {
		t.Errorf("Dedent.String() = %q", got)
	}
	if got := token.Walrus.String(); got != "Walrus" {
		t.Errorf("Walrus.String() = %q", got)
	}
	if got := token.Kind(255).String(); got != "Unknown" {
		t.Errorf("out-of-range kind = %q", got)
	}
}
