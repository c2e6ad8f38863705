package classify_test

import (
	"testing"

	"pyfieldlint/internal/classify"
	"pyfieldlint/internal/lexer"
	"pyfieldlint/internal/parser"
	"pyfieldlint/internal/pyfacts"
	"pyfieldlint/internal/source"
)

func firstClass(t *testing.T, src string) *pyfacts.ClassFacts {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.py", []byte(src)))
	mod := parser.Parse(f, lexer.New(f, lexer.Options{}), parser.Options{})
	facts := pyfacts.Collect(mod)
	if len(facts) == 0 {
		t.Fatal("no classes parsed")
	}
	return facts[0]
}

func TestExplain(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		accept bool
		rule   string
	}{
		{
			"no bases",
			"class Plain:\n    x: int\n",
			false, "no-bases",
		},
		{
			"dataclass outranks a model base",
			"@dataclass\nclass M(BaseModel):\n    x: int\n",
			false, "dataclass-decorator",
		},
		{
			"dotted dataclass decorator",
			"@dataclasses.dataclass\nclass M(Base):\n    x: int\n",
			false, "dataclass-decorator",
		},
		{
			"typed dict",
			"class M(TypedDict):\n    x: int\n",
			false, "typeddict-base",
		},
		{
			"dotted typed dict",
			"class M(typing.TypedDict):\n    x: int\n",
			false, "typeddict-base",
		},
		{
			"init method opts out",
			"class M(Base):\n    x: int\n    def __init__(self):\n        pass\n",
			false, "init-method",
		},
		{
			"relationship default opts out",
			"class M(SQLModel):\n    items: list = Relationship(back_populates=\"m\")\n",
			false, "relationship-default",
		},
		{
			"pydantic base",
			"class M(BaseModel):\n    def helper(self):\n        pass\n",
			true, "model-base",
		},
		{
			"dotted pydantic base",
			"class M(pydantic.BaseModel):\n    pass\n",
			true, "model-base",
		},
		{
			"generic model base",
			"class M(GenericModel):\n    x: int\n",
			true, "model-base",
		},
		{
			"validator method",
			"class M(Base):\n    x: int\n    y = 1\n    @validator(\"x\")\n    def check(cls, v):\n        return v\n",
			true, "validator-method",
		},
		{
			"root validator",
			"class M(Base):\n    y = 1\n    @root_validator\n    def check(cls, values):\n        return values\n",
			true, "validator-method",
		},
		{
			"config inner class",
			"class M(Base):\n    y = 1\n    class Config:\n        extra = \"forbid\"\n",
			true, "config-inner-class",
		},
		{
			"all annotated body",
			"class M(Unknown):\n    x: int\n    y: str = \"a\"\n",
			true, "annotated-body",
		},
		{
			"field call default",
			"class M(Unknown):\n    y = 1\n    x: str = Field(default=\"a\")\n",
			true, "field-call-default",
		},
		{
			"no signal",
			"class M(Unknown):\n    y = 1\n",
			false, "no-signal",
		},
		{
			"docstring breaks the pure body but not a model base",
			"class M(BaseModel):\n    \"\"\"doc\"\"\"\n    x: int\n",
			true, "model-base",
		},
		{
			"docstring breaks the pure body with an unknown base",
			"class M(Unknown):\n    \"\"\"doc\"\"\"\n    x: int\n",
			false, "no-signal",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := firstClass(t, tc.src)
			accept, rule := classify.Explain(f)
			if accept != tc.accept || rule != tc.rule {
				t.Errorf("Explain = (%v, %q), want (%v, %q)", accept, rule, tc.accept, tc.rule)
			}
			if classify.Classify(f) != tc.accept {
				t.Errorf("Classify disagrees with Explain")
			}
		})
	}
}

func TestUnresolvableBaseDoesNotMatchByName(t *testing.T) {
	// A dynamic base keeps the class inheriting but cannot match
	// BaseModel; only the pure annotated body accepts it.
	f := firstClass(t, "class M(make_base()):\n    x: int\n")
	accept, rule := classify.Explain(f)
	if !accept || rule != "annotated-body" {
		t.Errorf("Explain = (%v, %q), want (true, annotated-body)", accept, rule)
	}
}
