package paths

import (
	"os"
	"path/filepath"
	"testing"

	"blogctl/internal/config"
)

func TestResolveUsesFlag(t *testing.T) {
	dir := t.TempDir()
	sp, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if sp.Root != dir {
		t.Fatalf("root = %s, want %s", sp.Root, dir)
	}
	if sp.ConfigFile != filepath.Join(dir, "blog.yaml") {
		t.Fatalf("config file = %s", sp.ConfigFile)
	}
	if sp.PostsDir != filepath.Join(dir, "content", "posts") {
		t.Fatalf("posts dir = %s", sp.PostsDir)
	}
}

func TestResolveDefaultsToCwd(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	sp, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if sp.Root != cwd {
		t.Fatalf("root = %s, want %s", sp.Root, cwd)
	}
}

func TestApplyConfig(t *testing.T) {
	sp := newSitePaths("/site")

	t.Run("relative posts dir joins root", func(t *testing.T) {
		cfg := config.Config{Content: config.ContentConfig{PostsDir: "posts"}}
		got := ApplyConfig(sp, cfg)
		want := filepath.Join("/site", "posts")
		if got.PostsDir != want {
			t.Fatalf("posts dir = %s, want %s", got.PostsDir, want)
		}
	})

	t.Run("absolute posts dir kept", func(t *testing.T) {
		cfg := config.Config{Content: config.ContentConfig{PostsDir: "/elsewhere/posts"}}
		got := ApplyConfig(sp, cfg)
		if got.PostsDir != filepath.Clean("/elsewhere/posts") {
			t.Fatalf("posts dir = %s", got.PostsDir)
		}
	})

	t.Run("empty value keeps default", func(t *testing.T) {
		got := ApplyConfig(sp, config.Config{})
		if got.PostsDir != sp.PostsDir {
			t.Fatalf("posts dir = %s, want %s", got.PostsDir, sp.PostsDir)
		}
	})
}

func TestEnsureMetaDirs(t *testing.T) {
	sp := newSitePaths(t.TempDir())
	if err := sp.EnsureMetaDirs(); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{sp.MetaDir, sp.LogsDir} {
		exists, err := DirExists(dir)
		if err != nil {
			t.Fatal(err)
		}
		if !exists {
			t.Fatalf("directory %s not created", dir)
		}
	}
	// Second call is a no-op.
	if err := sp.EnsureMetaDirs(); err != nil {
		t.Fatal(err)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog.yaml")

	exists, err := FileExists(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("expected missing file")
	}

	if err := os.WriteFile(path, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	exists, err = FileExists(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("expected file to exist")
	}

	exists, err = FileExists(dir)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Fatal("directory reported as regular file")
	}
}
