package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCSSMinification checks that CSS is minified as expected
func TestCSSMinification(t *testing.T) {
	m := newMinifier()

	input := `
		body {
			color: #fff;
			margin: 0  ;
		}
	`
	expected := `body{color:#fff;margin:0}`

	var b strings.Builder
	if err := m.Minify("text/css", &b, strings.NewReader(input)); err != nil {
		t.Fatalf("CSS minification failed: %v", err)
	}
	if got := b.String(); got != expected {
		t.Errorf("CSS minification mismatch:\nGot:      %q\nExpected: %q", got, expected)
	}
}

// TestJSMinification checks that JavaScript is minified as expected
func TestJSMinification(t *testing.T) {
	m := newMinifier()

	input := `
		function add(a, b) {
			return a + b;
		}
	`
	expected := `function add(e,t){return e+t}`

	var b strings.Builder
	if err := m.Minify("application/javascript", &b, strings.NewReader(input)); err != nil {
		t.Fatalf("JS minification failed: %v", err)
	}
	if got := b.String(); got != expected {
		t.Errorf("JS minification mismatch:\nGot:      %q\nExpected: %q", got, expected)
	}
}

// TestHTMLMinificationKeepsTemplateActions checks Go template actions survive minification
func TestHTMLMinificationKeepsTemplateActions(t *testing.T) {
	m := newMinifier()

	input := `<html>
	<head>
		<title>{{ .title }}</title>
	</head>
	<body>
		<p>   Привет   </p>
	</body>
</html>`

	var b strings.Builder
	if err := m.Minify("text/html", &b, strings.NewReader(input)); err != nil {
		t.Fatalf("HTML minification failed: %v", err)
	}
	got := b.String()
	if !strings.Contains(got, ".title") || !strings.Contains(got, "{{") {
		t.Errorf("template action lost: %q", got)
	}
	if len(got) >= len(input) {
		t.Errorf("expected output to shrink, got %d bytes from %d", len(got), len(input))
	}
}

func TestMediaTypeFor(t *testing.T) {
	tests := map[string]string{
		"templates/index.html": "text/html",
		"static/style.CSS":     "text/css",
		"static/app.js":        "application/javascript",
		"static/logo.png":      "",
		"README":               "",
	}
	for path, want := range tests {
		if got := mediaTypeFor(path); got != want {
			t.Errorf("mediaTypeFor(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestMinifyTree(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if err := os.MkdirAll("static/img", 0755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"static/style.css": "body {\n  margin: 0 ;\n}\n",
		"static/app.js":    "function add(a, b) {\n  return a + b;\n}\n",
		"static/img/a.png": "PNGDATA",
		"static/notes.txt": "not an asset",
	}
	for name, content := range files {
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	n, err := minifyTree(newMinifier(), "static", "dist")
	if err != nil {
		t.Fatalf("minifyTree: %v", err)
	}
	if n != 2 {
		t.Errorf("minified %d files, want 2", n)
	}

	css, err := os.ReadFile(filepath.Join("dist", "static", "style.css"))
	if err != nil {
		t.Fatalf("expected dist/static/style.css: %v", err)
	}
	if string(css) != "body{margin:0}" {
		t.Errorf("dist css = %q", css)
	}
	if _, err := os.Stat(filepath.Join("dist", "static", "img", "a.png")); !os.IsNotExist(err) {
		t.Errorf("non-asset files should not be copied, stat err = %v", err)
	}
}
