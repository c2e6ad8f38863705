package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/driver"
)

const maxDiags = 100

func TestCheckSourceGolden(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			"no default",
			"class MyModel(BaseModel):\n    bar: str\n",
			"m.py:2:5: WARNING PF001 found a Pydantic field \"bar\" which has no default\n",
		},
		{
			"literal default",
			"class MyModel(BaseModel):\n    bar: str = \"qux\"\n",
			"m.py:2:5: WARNING PF002 found a Pydantic field \"bar\" which has a default that is not a Field\n",
		},
		{
			"field without description",
			"class MyModel(BaseModel):\n    bar: str = Field(default=\"qux\")\n",
			"m.py:2:5: WARNING PF003 found a Pydantic field \"bar\" which has a Field default with no description\n",
		},
		{
			"field with empty description",
			"class MyModel(BaseModel):\n    bar: str = Field(default=\"qux\", description=\"\")\n",
			"m.py:2:5: WARNING PF004 found a Pydantic field \"bar\" which has a Field default with an empty description\n",
		},
		{
			"documented field",
			"class MyModel(BaseModel):\n    bar: str = Field(default=\"qux\", description=\"docs\")\n",
			"",
		},
		{
			"documented field with positional default",
			"class MyModel(BaseModel):\n    bar: int = Field(5, description=\"the bar value\")\n",
			"",
		},
		{
			"rejected class is silent",
			"@dataclass\nclass MyModel(BaseModel):\n    bar: str\n",
			"",
		},
		{
			"plain class is silent",
			"class Helper:\n    bar: str\n",
			"",
		},
		{
			"nested model",
			"class Outer(BaseModel):\n    class Inner(BaseModel):\n        x: int\n    y: int\n",
			"m.py:3:9: WARNING PF001 found a Pydantic field \"x\" which has no default\n" +
				"m.py:4:5: WARNING PF001 found a Pydantic field \"y\" which has no default\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := driver.CheckSource("m.py", []byte(tc.src), maxDiags)
			got := diag.FormatShort(res.Bag.Items(), res.FileSet)
			if got != tc.want {
				t.Errorf("got:\n%swant:\n%s", got, tc.want)
			}
		})
	}
}

func TestCheckFileAndExplain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "models.py")
	src := "class User(BaseModel):\n" +
		"    name: str = Field(description=\"the name\")\n" +
		"    age: int\n" +
		"class Util:\n" +
		"    pass\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := driver.CheckFile(path, maxDiags)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", res.Bag.Len())
	}
	if len(res.Classes) != 2 {
		t.Fatalf("classes = %d, want 2", len(res.Classes))
	}

	_, verdicts, err := driver.ExplainClasses(path, maxDiags)
	if err != nil {
		t.Fatal(err)
	}
	if len(verdicts) != 2 {
		t.Fatalf("verdicts = %d, want 2", len(verdicts))
	}
	if !verdicts[0].Accepted || verdicts[0].Rule != "model-base" {
		t.Errorf("User verdict = %+v", verdicts[0])
	}
	if verdicts[1].Accepted || verdicts[1].Rule != "no-bases" {
		t.Errorf("Util verdict = %+v", verdicts[1])
	}
}

func TestListPyFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		p := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.py", "")
	write("b.txt", "")
	write("pkg/c.py", "")
	write("vendor/d.py", "")

	files, err := driver.ListPyFiles(dir, []string{"vendor"})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v, want a.py and pkg/c.py", files)
	}
	if filepath.Base(files[0]) != "a.py" || filepath.Base(files[1]) != "c.py" {
		t.Errorf("files = %v", files)
	}
}

func TestCheckFilesParallel(t *testing.T) {
	dir := t.TempDir()
	srcs := map[string]string{
		"one.py":   "class A(BaseModel):\n    x: int\n",
		"two.py":   "class B(BaseModel):\n    y: str = Field(description=\"ok\")\n",
		"three.py": "class C(BaseModel):\n    z: int\n    w: int\n",
	}
	var files []string
	for name, src := range srcs {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		files = append(files, p)
	}

	fileSet, results, err := driver.CheckFiles(context.Background(), dir, files, driver.DirOptions{
		MaxDiagnostics: maxDiags,
		Jobs:           2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if fileSet.Len() != 3 || len(results) != 3 {
		t.Fatalf("fileSet = %d files, results = %d", fileSet.Len(), len(results))
	}
	// Results keep the input order.
	for i, r := range results {
		if r.Path != files[i] {
			t.Errorf("result %d path = %s, want %s", i, r.Path, files[i])
		}
	}

	merged := driver.MergeBags(results)
	if merged.Len() != 3 {
		t.Errorf("merged diagnostics = %d, want 3", merged.Len())
	}
	if merged.CountFieldRules() != 3 {
		t.Errorf("field rule findings = %d, want 3", merged.CountFieldRules())
	}
}

func TestCheckFilesMissingFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.py")
	if err := os.WriteFile(good, []byte("class A(BaseModel):\n    x: int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.py")

	var events []driver.Event
	ch := make(chan driver.Event, 2)
	_, results, err := driver.CheckFiles(context.Background(), dir, []string{good, missing}, driver.DirOptions{
		MaxDiagnostics: maxDiags,
		Events:         ch,
	})
	if err != nil {
		t.Fatal(err)
	}
	close(ch)
	for ev := range ch {
		events = append(events, ev)
	}

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Bag.Len() != 1 {
		t.Errorf("good file diagnostics = %d, want 1", results[0].Bag.Len())
	}
	if !results[1].Bag.HasErrors() {
		t.Error("missing file should produce an I/O error diagnostic")
	}
	if results[1].Bag.Items()[0].Code != diag.IOLoadFileError {
		t.Errorf("code = %v, want IOLoadFileError", results[1].Bag.Items()[0].Code)
	}
	if len(events) != 2 {
		t.Errorf("events = %d, want 2", len(events))
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cacheDir := t.TempDir()
	cache, err := driver.OpenDiskCacheAt(cacheDir)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "m.py")
	if err := os.WriteFile(path, []byte("class A(BaseModel):\n    x: int\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := driver.DirOptions{MaxDiagnostics: maxDiags, Cache: cache}

	fs1, first, err := driver.CheckFiles(context.Background(), dir, []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Error("first run should not be cached")
	}

	fs2, second, err := driver.CheckFiles(context.Background(), dir, []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Error("second run should hit the cache")
	}

	got1 := diag.FormatShort(first[0].Bag.Items(), fs1)
	got2 := diag.FormatShort(second[0].Bag.Items(), fs2)
	if got1 != got2 || got1 == "" {
		t.Errorf("cached run differs:\nfirst:  %q\nsecond: %q", got1, got2)
	}

	// Changing the content invalidates the entry.
	if err := os.WriteFile(path, []byte("class A(BaseModel):\n    x: int = Field(description=\"ok\")\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, third, err := driver.CheckFiles(context.Background(), dir, []string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third[0].Cached {
		t.Error("changed content should miss the cache")
	}
	if third[0].Bag.Len() != 0 {
		t.Errorf("diagnostics = %d, want 0", third[0].Bag.Len())
	}
}

func TestDiskCachePayload(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := driver.Digest{1, 2, 3}
	in := driver.DiskPayload{
		Schema: 1,
		Diags: []driver.CachedDiag{
			{Severity: 1, Code: 1, Message: "m", Start: 4, End: 7},
		},
	}
	if err := cache.Put(key, &in); err != nil {
		t.Fatal(err)
	}

	var out driver.DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("get = %v, %v", ok, err)
	}
	if len(out.Diags) != 1 || out.Diags[0] != in.Diags[0] {
		t.Errorf("payload = %+v", out)
	}

	var miss driver.DiskPayload
	ok, err = cache.Get(driver.Digest{9}, &miss)
	if err != nil || ok {
		t.Errorf("miss = %v, %v, want false, nil", ok, err)
	}
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.py")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := driver.Tokenize(path, maxDiags)
	if err != nil {
		t.Fatal(err)
	}
	// Ident Assign IntLit Newline EOF
	if len(res.Tokens) != 5 {
		t.Errorf("tokens = %d, want 5", len(res.Tokens))
	}
}
