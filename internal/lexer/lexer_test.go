package lexer_test

import (
	"testing"

	"pyfieldlint/internal/lexer"
	"pyfieldlint/internal/source"
	"pyfieldlint/internal/token"
)

type testReporter struct {
	kinds []string
}

func (r *testReporter) Report(kind string, _ source.Span, _ string) {
	r.kinds = append(r.kinds, kind)
}

func lexAll(t *testing.T, src string) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.py", []byte(src)))
	rep := &testReporter{}
	lx := lexer.New(f, lexer.Options{Reporter: rep})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, rep
		}
		if len(toks) > 10000 {
			t.Fatal("lexer did not reach EOF")
		}
	}
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, src string, want []token.Kind) {
	t.Helper()
	toks, _ := lexAll(t, src)
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v\ngot:  %v\nwant: %v", i, got[i], want[i], got, want)
		}
	}
}

func TestSimpleClass(t *testing.T) {
	src := "class A:\n    x: int = 1\n"
	expectKinds(t, src, []token.Kind{
		token.KwClass, token.Ident, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Colon, token.Ident,
		token.Assign, token.IntLit, token.Newline,
		token.Dedent, token.EOF,
	})
}

func TestLayoutSuppressedInsideBrackets(t *testing.T) {
	src := "x = Field(\n    default=1,\n)\n"
	expectKinds(t, src, []token.Kind{
		token.Ident, token.Assign, token.Ident, token.LParen,
		token.Ident, token.Assign, token.IntLit, token.Comma,
		token.RParen, token.Newline, token.EOF,
	})
}

func TestBlankAndCommentLinesCarryNoLayout(t *testing.T) {
	src := "class A:\n\n    # a comment\n    x: int\n"
	expectKinds(t, src, []token.Kind{
		token.KwClass, token.Ident, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Colon, token.Ident, token.Newline,
		token.Dedent, token.EOF,
	})
}

func TestMissingTrailingNewlineSynthesized(t *testing.T) {
	expectKinds(t, "x = 1", []token.Kind{
		token.Ident, token.Assign, token.IntLit, token.Newline, token.EOF,
	})
}

func TestDedentsClosedAtEOF(t *testing.T) {
	src := "class A:\n    class B:\n        x: int"
	expectKinds(t, src, []token.Kind{
		token.KwClass, token.Ident, token.Colon, token.Newline,
		token.Indent, token.KwClass, token.Ident, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Colon, token.Ident, token.Newline,
		token.Dedent, token.Dedent, token.EOF,
	})
}

func TestInconsistentDedentReported(t *testing.T) {
	src := "if x:\n        a = 1\n    b = 2\n"
	_, rep := lexAll(t, src)
	found := false
	for _, k := range rep.kinds {
		if k == lexer.KindInconsistentDedent {
			found = true
		}
	}
	if !found {
		t.Errorf("want inconsistent dedent report, got %v", rep.kinds)
	}
}

func TestStringKinds(t *testing.T) {
	toks, _ := lexAll(t, "a = 'x'\nb = f\"hi {name}\"\nc = \"\"\"one\ntwo\"\"\"\n")
	var lits []token.Kind
	for _, tok := range toks {
		if tok.Kind == token.StringLit || tok.Kind == token.FStringLit {
			lits = append(lits, tok.Kind)
		}
	}
	want := []token.Kind{token.StringLit, token.FStringLit, token.StringLit}
	if len(lits) != len(want) {
		t.Fatalf("literals = %v, want %v", lits, want)
	}
	for i := range want {
		if lits[i] != want[i] {
			t.Fatalf("literal %d = %v, want %v", i, lits[i], want[i])
		}
	}
	// The triple-quoted string spans two physical lines but is one token
	// and produces exactly one Newline per logical line.
	newlines := 0
	for _, tok := range toks {
		if tok.Kind == token.Newline {
			newlines++
		}
	}
	if newlines != 3 {
		t.Errorf("newlines = %d, want 3", newlines)
	}
}

func TestUnterminatedStringReported(t *testing.T) {
	_, rep := lexAll(t, "x = \"abc\n")
	if len(rep.kinds) == 0 || rep.kinds[0] != lexer.KindUnterminatedString {
		t.Errorf("reports = %v, want unterminated_string", rep.kinds)
	}
}

func TestNumbers(t *testing.T) {
	toks, _ := lexAll(t, "a = 0xFF\nb = 3.14\nc = .5\nd = 1e10\ne = 2j\nf = 10\n")
	var nums []token.Kind
	for _, tok := range toks {
		if tok.Kind == token.IntLit || tok.Kind == token.FloatLit {
			nums = append(nums, tok.Kind)
		}
	}
	want := []token.Kind{
		token.IntLit, token.FloatLit, token.FloatLit,
		token.FloatLit, token.FloatLit, token.IntLit,
	}
	if len(nums) != len(want) {
		t.Fatalf("numbers = %v, want %v", nums, want)
	}
	for i := range want {
		if nums[i] != want[i] {
			t.Errorf("number %d = %v, want %v", i, nums[i], want[i])
		}
	}
}

func TestOperators(t *testing.T) {
	expectKinds(t, "x += y ** z // w\n", []token.Kind{
		token.Ident, token.AugAssign, token.Ident, token.DoubleStar,
		token.Ident, token.DoubleSlash, token.Ident, token.Newline, token.EOF,
	})
	expectKinds(t, "(x := 1)\n", []token.Kind{
		token.LParen, token.Ident, token.Walrus, token.IntLit, token.RParen,
		token.Newline, token.EOF,
	})
	expectKinds(t, "x = ...\n", []token.Kind{
		token.Ident, token.Assign, token.EllipsisLit, token.Newline, token.EOF,
	})
}

func TestLineContinuation(t *testing.T) {
	expectKinds(t, "x = 1 + \\\n    2\n", []token.Kind{
		token.Ident, token.Assign, token.IntLit, token.Plus, token.IntLit,
		token.Newline, token.EOF,
	})
}

func TestUnknownCharReported(t *testing.T) {
	toks, rep := lexAll(t, "x = 1 ?\n")
	if len(rep.kinds) == 0 || rep.kinds[0] != lexer.KindUnknownChar {
		t.Errorf("reports = %v, want unknown_char", rep.kinds)
	}
	sawInvalid := false
	for _, tok := range toks {
		if tok.Kind == token.Invalid {
			sawInvalid = true
		}
	}
	if !sawInvalid {
		t.Error("want an Invalid token for the unknown character")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.py", []byte("class A: pass\n")))
	lx := lexer.New(f, lexer.Options{})

	p := lx.Peek()
	n := lx.Next()
	if p.Kind != token.KwClass || n.Kind != token.KwClass {
		t.Fatalf("peek = %v, next = %v, want KwClass twice", p.Kind, n.Kind)
	}
	if lx.Next().Kind != token.Ident {
		t.Fatal("expected Ident after class keyword")
	}
}

func TestLeadingCommentTrivia(t *testing.T) {
	toks, _ := lexAll(t, "# header\nx = 1\n")
	if toks[0].Kind != token.Ident {
		t.Fatalf("first token = %v, want Ident", toks[0].Kind)
	}
	sawComment := false
	for _, tr := range toks[0].Leading {
		if tr.Kind == token.TriviaComment {
			sawComment = true
		}
	}
	if !sawComment {
		t.Errorf("leading trivia = %v, want a comment", toks[0].Leading)
	}
}

func TestSpans(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("class Foo:\n    bar: str\n"))
	f := fs.Get(id)
	lx := lexer.New(f, lexer.Options{})

	lx.Next() // class
	name := lx.Next()
	if name.Text != "Foo" {
		t.Fatalf("name = %q", name.Text)
	}
	start, _ := fs.Resolve(name.Span)
	if start.Line != 1 || start.Col != 7 {
		t.Errorf("Foo at %d:%d, want 1:7", start.Line, start.Col)
	}

	for lx.Peek().Text != "bar" {
		if lx.Next().Kind == token.EOF {
			t.Fatal("never reached bar")
		}
	}
	start, _ = fs.Resolve(lx.Next().Span)
	if start.Line != 2 || start.Col != 5 {
		t.Errorf("bar at %d:%d, want 2:5", start.Line, start.Col)
	}
}
