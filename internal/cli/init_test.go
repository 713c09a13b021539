package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveInitDir(t *testing.T) {
	t.Run("site flag takes precedence", func(t *testing.T) {
		dir, err := resolveInitDir("/custom/path", []string{"ignored"})
		if err != nil {
			t.Fatal(err)
		}
		if dir != "/custom/path" {
			t.Fatalf("got %s, want /custom/path", dir)
		}
	})

	t.Run("dot uses cwd", func(t *testing.T) {
		cwd, _ := os.Getwd()
		dir, err := resolveInitDir("", []string{"."})
		if err != nil {
			t.Fatal(err)
		}
		if dir != cwd {
			t.Fatalf("got %s, want %s", dir, cwd)
		}
	})

	t.Run("named arg creates subdirectory", func(t *testing.T) {
		cwd, _ := os.Getwd()
		dir, err := resolveInitDir("", []string{"my-blog"})
		if err != nil {
			t.Fatal(err)
		}
		want := filepath.Join(cwd, "my-blog")
		if dir != want {
			t.Fatalf("got %s, want %s", dir, want)
		}
	})
}

func TestNextAvailableDir(t *testing.T) {
	base := t.TempDir()

	t.Run("returns blog-1 when empty", func(t *testing.T) {
		dir, err := nextAvailableDir(base)
		if err != nil {
			t.Fatal(err)
		}
		want := filepath.Join(base, "blog-1")
		if dir != want {
			t.Fatalf("got %s, want %s", dir, want)
		}
	})

	t.Run("skips existing directories", func(t *testing.T) {
		if err := os.Mkdir(filepath.Join(base, "blog-1"), 0o755); err != nil {
			t.Fatal(err)
		}
		dir, err := nextAvailableDir(base)
		if err != nil {
			t.Fatal(err)
		}
		want := filepath.Join(base, "blog-2")
		if dir != want {
			t.Fatalf("got %s, want %s", dir, want)
		}
	})
}

func TestInitCreatesWorkspace(t *testing.T) {
	site := filepath.Join(t.TempDir(), "myblog")

	out, err := runCommand(t, "init", "--site", site)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Initialized site at") {
		t.Fatalf("unexpected output: %q", out)
	}

	for _, path := range []string{
		filepath.Join(site, "blog.yaml"),
		filepath.Join(site, "content", "posts"),
		filepath.Join(site, ".blogctl", "logs"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("missing %s: %v", path, err)
		}
	}
}

func TestInitIsIdempotent(t *testing.T) {
	site := filepath.Join(t.TempDir(), "myblog")

	if _, err := runCommand(t, "init", "--site", site); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "init", "--site", site)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "already initialized") {
		t.Fatalf("unexpected output: %q", out)
	}
}
