package rules_test

import (
	"testing"

	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/lexer"
	"pyfieldlint/internal/parser"
	"pyfieldlint/internal/pyfacts"
	"pyfieldlint/internal/rules"
	"pyfieldlint/internal/source"
)

func classFacts(t *testing.T, src string) *pyfacts.ClassFacts {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.py", []byte(src)))
	mod := parser.Parse(f, lexer.New(f, lexer.Options{}), parser.Options{})
	facts := pyfacts.Collect(mod)
	if len(facts) != 1 {
		t.Fatalf("classes = %d, want 1", len(facts))
	}
	return facts[0]
}

func evaluate(t *testing.T, src string) *diag.Bag {
	t.Helper()
	bag := diag.NewBag(16)
	rules.Evaluate(classFacts(t, src), diag.BagReporter{Bag: bag})
	return bag
}

func codesOf(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func expectCodes(t *testing.T, bag *diag.Bag, want ...diag.Code) {
	t.Helper()
	got := codesOf(bag)
	if len(got) != len(want) {
		t.Fatalf("codes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("codes = %v, want %v", got, want)
		}
	}
}

func TestOneDiagnosticPerField(t *testing.T) {
	src := "class M(BaseModel):\n" +
		"    a: int\n" +
		"    b: int = 5\n" +
		"    c: str = Field(default=\"x\")\n" +
		"    d: str = Field(default=\"x\", description=\"\")\n" +
		"    e: str = Field(default=\"x\", description=\"docs\")\n"
	bag := evaluate(t, src)
	expectCodes(t, bag,
		diag.FieldNoDefault,
		diag.FieldDefaultNotField,
		diag.FieldNoDescription,
		diag.FieldEmptyDescription,
	)
}

func TestMessagesNameTheField(t *testing.T) {
	bag := evaluate(t, "class M(BaseModel):\n    bar: str\n")
	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(items))
	}
	d := items[0]
	if d.Code != diag.FieldNoDefault || d.Severity != diag.SevWarning {
		t.Errorf("diagnostic = %v %v", d.Code, d.Severity)
	}
	want := `found a Pydantic field "bar" which has no default`
	if d.Message != want {
		t.Errorf("message = %q, want %q", d.Message, want)
	}
}

func TestNoDefaultIsTerminal(t *testing.T) {
	// A field with no default never also reports about descriptions.
	bag := evaluate(t, "class M(BaseModel):\n    a: int\n")
	expectCodes(t, bag, diag.FieldNoDefault)
}

func TestOtherCallDefault(t *testing.T) {
	bag := evaluate(t, "class M(BaseModel):\n    a: str = make_default()\n")
	expectCodes(t, bag, diag.FieldDefaultNotField)
}

func TestClassVarSkipped(t *testing.T) {
	src := "class M(BaseModel):\n" +
		"    counter: ClassVar[int] = 0\n" +
		"    named: typing.ClassVar[str]\n"
	bag := evaluate(t, src)
	expectCodes(t, bag)
}

func TestPrivateAttrSkipped(t *testing.T) {
	bag := evaluate(t, "class M(BaseModel):\n    _secret: str = PrivateAttr(default=\"\")\n")
	expectCodes(t, bag)
}

func TestDocumentedFieldsAreClean(t *testing.T) {
	src := "class M(BaseModel):\n" +
		"    a: str = Field(default=\"x\", description=\"the a\")\n" +
		"    b: int = Field(default=0, description=compute_doc())\n"
	bag := evaluate(t, src)
	expectCodes(t, bag)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	f := classFacts(t, "class M(BaseModel):\n    a: int\n    b: str = Field()\n")
	first := diag.NewBag(16)
	rules.Evaluate(f, diag.BagReporter{Bag: first})
	second := diag.NewBag(16)
	rules.Evaluate(f, diag.BagReporter{Bag: second})

	a, b := first.Items(), second.Items()
	if len(a) != len(b) {
		t.Fatalf("runs differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Code != b[i].Code || a[i].Message != b[i].Message || a[i].Primary != b[i].Primary {
			t.Fatalf("run mismatch at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestCheckGatesOnClassifier(t *testing.T) {
	bag := diag.NewBag(16)
	rejected := classFacts(t, "@dataclass\nclass M(BaseModel):\n    a: int\n")
	if rules.Check(rejected, diag.BagReporter{Bag: bag}) {
		t.Error("dataclass should be rejected")
	}
	if bag.Len() != 0 {
		t.Errorf("rejected class produced %d diagnostics", bag.Len())
	}

	accepted := classFacts(t, "class M(BaseModel):\n    a: int\n")
	if !rules.Check(accepted, diag.BagReporter{Bag: bag}) {
		t.Error("model should be accepted")
	}
	if bag.Len() != 1 {
		t.Errorf("diagnostics = %d, want 1", bag.Len())
	}
}

func TestDiagnosticPointsAtFieldName(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.py", []byte("class M(BaseModel):\n    bar: str\n")))
	mod := parser.Parse(f, lexer.New(f, lexer.Options{}), parser.Options{})
	facts := pyfacts.Collect(mod)

	bag := diag.NewBag(16)
	rules.Evaluate(facts[0], diag.BagReporter{Bag: bag})
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", bag.Len())
	}
	start, _ := fs.Resolve(bag.Items()[0].Primary)
	if start.Line != 2 || start.Col != 5 {
		t.Errorf("primary at %d:%d, want 2:5", start.Line, start.Col)
	}
}
