package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"pyfieldlint/internal/diagfmt"
	"pyfieldlint/internal/driver"
	"pyfieldlint/internal/lexer"
	"pyfieldlint/internal/source"
	"pyfieldlint/internal/token"
)

func checked(t *testing.T, src string) *driver.CheckResult {
	t.Helper()
	res := driver.CheckSource("m.py", []byte(src), 100)
	res.Bag.Sort()
	return res
}

const oneFinding = "class MyModel(BaseModel):\n    bar: str\n"

func TestShort(t *testing.T) {
	res := checked(t, oneFinding)
	var sb strings.Builder
	diagfmt.Short(&sb, res.Bag, res.FileSet)
	want := "m.py:2:5: WARNING PF001 found a Pydantic field \"bar\" which has no default\n"
	if sb.String() != want {
		t.Errorf("short = %q, want %q", sb.String(), want)
	}
}

func TestPretty(t *testing.T) {
	res := checked(t, oneFinding)
	var sb strings.Builder
	diagfmt.Pretty(&sb, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		PathMode: diagfmt.PathModeBasename,
	})
	out := sb.String()

	if !strings.Contains(out, "m.py:2:5: WARNING PF001:") {
		t.Errorf("missing header in:\n%s", out)
	}
	if !strings.Contains(out, "    bar: str") {
		t.Errorf("missing source line in:\n%s", out)
	}
	// The underline covers the three-character field name.
	if !strings.Contains(out, "    ^~~\n") {
		t.Errorf("missing caret underline in:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	res := checked(t, oneFinding)
	var sb strings.Builder
	err := diagfmt.JSON(&sb, res.Bag, res.FileSet, diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         diagfmt.PathModeBasename,
	})
	if err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(sb.String()), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "PF001" || d.Severity != "WARNING" {
		t.Errorf("code/severity = %s/%s", d.Code, d.Severity)
	}
	if d.Location.File != "m.py" || d.Location.StartLine != 2 || d.Location.StartCol != 5 {
		t.Errorf("location = %+v", d.Location)
	}
}

func TestJSONMaxLimit(t *testing.T) {
	res := checked(t, "class M(BaseModel):\n    a: int\n    b: int\n    c: int\n")
	out := diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("count = %d, want 2", out.Count)
	}
}

func TestSarif(t *testing.T) {
	res := checked(t, oneFinding)
	var sb strings.Builder
	err := diagfmt.Sarif(&sb, res.Bag, res.FileSet, diagfmt.SarifRunMeta{
		ToolName:    "pyfieldlint",
		ToolVersion: "0.0.0-test",
	})
	if err != nil {
		t.Fatal(err)
	}

	var log struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Level   string `json:"level"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal([]byte(sb.String()), &log); err != nil {
		t.Fatal(err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("version = %q, runs = %d", log.Version, len(log.Runs))
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "pyfieldlint" {
		t.Errorf("driver name = %q", run.Tool.Driver.Name)
	}
	if len(run.Results) != 1 || run.Results[0].RuleID != "PF001" || run.Results[0].Level != "warning" {
		t.Errorf("results = %+v", run.Results)
	}
	if len(run.Tool.Driver.Rules) != 1 || run.Tool.Driver.Rules[0].ID != "PF001" {
		t.Errorf("rules = %+v", run.Tool.Driver.Rules)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.py", []byte("x = 1\n")))
	lx := lexer.New(f, lexer.Options{})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var sb strings.Builder
	if err := diagfmt.FormatTokensPretty(&sb, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "Ident") || !strings.Contains(out, "\"x\"") {
		t.Errorf("missing ident in:\n%s", out)
	}
	if !strings.Contains(out, "EOF") {
		t.Errorf("missing EOF in:\n%s", out)
	}

	sb.Reset()
	if err := diagfmt.FormatTokensJSON(&sb, tokens); err != nil {
		t.Fatal(err)
	}
	var decoded []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 5 || decoded[0].Kind != "Ident" {
		t.Errorf("decoded tokens = %+v", decoded)
	}
}
