package post

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var testDate = time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)

func TestDirNameAndURL(t *testing.T) {
	p := New("My New Post", testDate, "post")

	if p.Slug != "my-new-post" {
		t.Fatalf("slug = %q, want my-new-post", p.Slug)
	}
	if got := p.DirName(); got != "2024-03-05-my-new-post" {
		t.Fatalf("dir name = %q", got)
	}
	if got := p.URL(); got != "/2024/03/05/my-new-post/" {
		t.Fatalf("url = %q", got)
	}
}

func TestFrontMatterExactBytes(t *testing.T) {
	p := New("My New Post", testDate, "post")

	want := "---\n" +
		"layout: post\n" +
		"layout: post\n" +
		"title: My New Post\n" +
		"date: 2024-03-05\n" +
		"url: /2024/03/05/my-new-post/\n" +
		"tags:\n" +
		"  - \n" +
		"---\n" +
		"\n"

	if got := string(p.FrontMatter()); got != want {
		t.Fatalf("front matter mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestFrontMatterTitleVerbatim(t *testing.T) {
	// The title is written as typed, punctuation and all; only the slug is
	// transformed.
	p := New("Hello, World! 2024", testDate, "post")

	fm := string(p.FrontMatter())
	if want := "title: Hello, World! 2024\n"; !strings.Contains(fm, want) {
		t.Fatalf("front matter missing %q:\n%s", want, fm)
	}
	if want := "url: /2024/03/05/hello--world--2024/\n"; !strings.Contains(fm, want) {
		t.Fatalf("front matter missing %q:\n%s", want, fm)
	}
}

func TestFrontMatterWithTags(t *testing.T) {
	p := New("Tagged", testDate, "post")
	p.Tags = []string{"go", "blogging"}

	fm := string(p.FrontMatter())
	if want := "tags:\n  - go\n  - blogging\n---\n"; !strings.Contains(fm, want) {
		t.Fatalf("front matter missing tag block:\n%s", fm)
	}
	if strings.Contains(fm, "  - \n") {
		t.Fatalf("empty placeholder present alongside real tags:\n%s", fm)
	}
}

func TestScaffold(t *testing.T) {
	postsDir := t.TempDir()
	p := New("My New Post", testDate, "post")

	dir, err := Scaffold(postsDir, p)
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(postsDir, "2024-03-05-my-new-post") {
		t.Fatalf("dir = %s", dir)
	}

	data, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(p.FrontMatter()) {
		t.Fatalf("index.md does not match front matter template")
	}
}

func TestScaffoldOverwritesExisting(t *testing.T) {
	postsDir := t.TempDir()
	p := New("My New Post", testDate, "post")

	if _, err := Scaffold(postsDir, p); err != nil {
		t.Fatal(err)
	}

	// Clobber the file, then scaffold again: the directory creation is
	// idempotent and the content write replaces whatever is there.
	indexPath := filepath.Join(postsDir, p.DirName(), "index.md")
	if err := os.WriteFile(indexPath, []byte("edited by hand\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Scaffold(postsDir, p); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(indexPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(p.FrontMatter()) {
		t.Fatalf("second scaffold did not overwrite index.md")
	}
}
