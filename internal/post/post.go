// Package post derives post records from titles and writes their scaffolds.
package post

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blogctl/internal/slug"
)

// Post describes a single scaffolded content entry.
type Post struct {
	Title  string
	Slug   string
	Layout string
	Date   time.Time
	Tags   []string
}

// New builds a post record from a title and publication date. The slug is
// derived deterministically from the title.
func New(title string, date time.Time, layout string) Post {
	return Post{
		Title:  title,
		Slug:   slug.Make(title),
		Layout: layout,
		Date:   date,
	}
}

// DirName returns the date-prefixed directory name, e.g.
// "2024-03-05-my-new-post".
func (p Post) DirName() string {
	return p.Date.Format("2006-01-02") + "-" + p.Slug
}

// URL returns the canonical URL path, e.g. "/2024/03/05/my-new-post/".
func (p Post) URL() string {
	return "/" + p.Date.Format("2006/01/02") + "/" + p.Slug + "/"
}

// FrontMatter renders the index.md contents. The output is byte-exact with
// the files already published by this convention, including the repeated
// layout line and the single empty tag placeholder when no tags are set; see
// DESIGN.md before changing either.
func (p Post) FrontMatter() []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "layout: %s\n", p.Layout)
	fmt.Fprintf(&b, "layout: %s\n", p.Layout)
	fmt.Fprintf(&b, "title: %s\n", p.Title)
	fmt.Fprintf(&b, "date: %s\n", p.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "url: %s\n", p.URL())
	b.WriteString("tags:\n")
	if len(p.Tags) == 0 {
		b.WriteString("  - \n")
	} else {
		for _, tag := range p.Tags {
			fmt.Fprintf(&b, "  - %s\n", tag)
		}
	}
	b.WriteString("---\n")
	b.WriteString("\n")
	return []byte(b.String())
}

// Scaffold creates the post directory under postsDir and writes index.md,
// overwriting any existing file at that path. Directory creation is
// idempotent. The created directory path is returned.
func Scaffold(postsDir string, p Post) (string, error) {
	dir := filepath.Join(postsDir, p.DirName())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create post directory: %w", err)
	}

	indexPath := filepath.Join(dir, "index.md")
	if err := os.WriteFile(indexPath, p.FrontMatter(), 0o644); err != nil {
		return "", fmt.Errorf("write index.md: %w", err)
	}

	return dir, nil
}
