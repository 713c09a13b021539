package post

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// dirNamePattern matches the date-prefixed directory convention produced by
// Scaffold: <yyyy-MM-dd>-<slug>.
var dirNamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.*)$`)

// Meta is the front matter read back from an index.md file. Date stays a
// string so the value can be compared textually against the directory name.
type Meta struct {
	Layout string   `yaml:"layout"`
	Title  string   `yaml:"title"`
	Date   string   `yaml:"date"`
	URL    string   `yaml:"url"`
	Tags   []string `yaml:"tags"`
}

// CleanTags drops the empty placeholder entry the scaffold writes when a post
// has no tags.
func (m Meta) CleanTags() []string {
	var out []string
	for _, t := range m.Tags {
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Entry is one post directory found under the posts dir. Err records a
// per-entry problem (missing or unparseable index.md) without aborting the
// scan.
type Entry struct {
	DirName string
	Date    string
	Slug    string
	Meta    Meta
	Err     error
}

// ParseIndex reads the front matter from index.md contents.
func ParseIndex(source []byte) (Meta, error) {
	var meta Meta
	if _, err := frontmatter.Parse(bytes.NewReader(source), &meta); err != nil {
		return Meta{}, fmt.Errorf("parse front matter: %w", err)
	}
	return meta, nil
}

// SplitDirName separates a post directory name into its date and slug parts.
// ok is false when the name does not follow the convention.
func SplitDirName(name string) (date, slug string, ok bool) {
	m := dirNamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Scan walks the posts directory and returns one entry per subdirectory,
// sorted by directory name. A missing posts directory yields an empty slice.
// Entries whose index.md is absent or malformed carry a non-nil Err; only
// errors reading the directory itself abort the scan.
func Scan(postsDir string) ([]Entry, error) {
	dirents, err := os.ReadDir(postsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read posts directory: %w", err)
	}

	var entries []Entry
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}

		entry := Entry{DirName: d.Name()}
		if date, slug, ok := SplitDirName(d.Name()); ok {
			entry.Date = date
			entry.Slug = slug
		}

		source, err := os.ReadFile(filepath.Join(postsDir, d.Name(), "index.md"))
		if err != nil {
			entry.Err = fmt.Errorf("read index.md: %w", err)
			entries = append(entries, entry)
			continue
		}

		meta, err := ParseIndex(source)
		if err != nil {
			entry.Err = err
			entries = append(entries, entry)
			continue
		}
		entry.Meta = meta
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DirName < entries[j].DirName
	})
	return entries, nil
}
