package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoadDirectories(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.txt": "second document",
		"a.txt": "first document",
		"c.md":  "third document",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}

	ld := NewLoader([]string{".txt", ".md"}, true)
	docs, err := ld.LoadDirectories(context.Background(), []string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3", len(docs))
	}
	// Path order: a.txt, b.txt, c.md
	if docs[0].Text != "first document" || docs[1].Text != "second document" {
		t.Errorf("documents out of path order: %q, %q", docs[0].Text, docs[1].Text)
	}
	for i, doc := range docs {
		if doc.ID != i {
			t.Errorf("doc %d has ID %d", i, doc.ID)
		}
		if doc.Title == "" || doc.Source == "" {
			t.Errorf("doc %d missing title or source: %+v", i, doc)
		}
	}
}

func TestLoaderExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("kept"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skip.bin"), []byte("skipped"), 0600); err != nil {
		t.Fatal(err)
	}

	ld := NewLoader([]string{".txt"}, true)
	docs, err := ld.LoadDirectories(context.Background(), []string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Text != "kept" {
		t.Errorf("got %+v", docs)
	}
}

func TestLoaderNonRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "top.txt"), []byte("top"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "nested.txt"), []byte("nested"), 0600); err != nil {
		t.Fatal(err)
	}

	ld := NewLoader([]string{".txt"}, false)
	docs, err := ld.LoadDirectories(context.Background(), []string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Text != "top" {
		t.Errorf("non-recursive load should only see top.txt: %+v", docs)
	}

	ld = NewLoader([]string{".txt"}, true)
	docs, err = ld.LoadDirectories(context.Background(), []string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Errorf("recursive load should see both files, got %d", len(docs))
	}
}

func TestLoaderSkipsEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "empty.txt"), []byte("   \n\t  "), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "full.txt"), []byte("content"), 0600); err != nil {
		t.Fatal(err)
	}

	ld := NewLoader(nil, true)
	docs, err := ld.LoadDirectories(context.Background(), []string{dir})
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Text != "content" {
		t.Errorf("got %+v", docs)
	}
}

func TestLoaderMissingDirectory(t *testing.T) {
	ld := NewLoader(nil, true)
	if _, err := ld.LoadDirectories(context.Background(), []string{"/nonexistent/corpus"}); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  hello  world  ", "hello world"},
		{"line1\n\nline2\tend", "line1 line2 end"},
		{"", ""},
		{"single", "single"},
	}
	for _, tt := range tests {
		if got := Preprocess(tt.in); got != tt.want {
			t.Errorf("Preprocess(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
