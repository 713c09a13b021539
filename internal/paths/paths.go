package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"blogctl/internal/config"
)

// SitePaths captures canonical locations inside a blog workspace.
type SitePaths struct {
	Root       string
	ConfigFile string
	PostsDir   string
	MetaDir    string
	LogsDir    string
}

// Resolve determines the site root using the optional --site flag or the
// current working directory when the flag is empty.
func Resolve(siteFlag string) (SitePaths, error) {
	var (
		root string
		err  error
	)

	if siteFlag != "" {
		root, err = filepath.Abs(siteFlag)
	} else {
		root, err = os.Getwd()
	}
	if err != nil {
		return SitePaths{}, fmt.Errorf("resolve site root: %w", err)
	}

	return newSitePaths(root), nil
}

func newSitePaths(root string) SitePaths {
	metaDir := filepath.Join(root, ".blogctl")
	return SitePaths{
		Root:       root,
		ConfigFile: filepath.Join(root, "blog.yaml"),
		PostsDir:   filepath.Join(root, "content", "posts"),
		MetaDir:    metaDir,
		LogsDir:    filepath.Join(metaDir, "logs"),
	}
}

// ApplyConfig relocates the posts directory when the config overrides it.
func ApplyConfig(sp SitePaths, cfg config.Config) SitePaths {
	if dir := strings.TrimSpace(cfg.Content.PostsDir); dir != "" {
		sp.PostsDir = resolveSitePath(sp.Root, dir)
	}
	return sp
}

func resolveSitePath(root, value string) string {
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}

// EnsureRoot makes sure the site root exists on disk.
func (p SitePaths) EnsureRoot() error {
	if err := os.MkdirAll(p.Root, 0o755); err != nil {
		return fmt.Errorf("create site root: %w", err)
	}
	return nil
}

// EnsurePostsDir creates the posts directory and any missing parents.
func (p SitePaths) EnsurePostsDir() error {
	if err := os.MkdirAll(p.PostsDir, 0o755); err != nil {
		return fmt.Errorf("create posts directory: %w", err)
	}
	return nil
}

// EnsureMetaDirs creates the hidden .blogctl metadata directory and its logs
// subdirectory.
func (p SitePaths) EnsureMetaDirs() error {
	dirs := []string{p.MetaDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
