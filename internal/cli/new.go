package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"blogctl/internal/config"
	"blogctl/internal/logx"
	"blogctl/internal/paths"
	"blogctl/internal/post"
	"blogctl/internal/tui"
)

var (
	newDate        string
	newTags        []string
	newInteractive bool
)

const newUsage = `Usage: blogctl new <title>
Scaffolds content/posts/<yyyy-MM-dd>-<slug>/index.md for the given title.`

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [title]",
		Short: "Scaffold a new post from a title",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runNew,
	}

	cmd.Flags().StringVar(&newDate, "date", "", "Publication date as yyyy-MM-dd (defaults to today)")
	cmd.Flags().StringSliceVar(&newTags, "tags", nil, "Tags to record in the front matter")
	cmd.Flags().BoolVarP(&newInteractive, "interactive", "i", false, "Prompt for title, tags, and date")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	date, err := resolveNewDate(newDate, time.Now())
	if err != nil {
		return err
	}

	var (
		title string
		tags  = newTags
	)

	switch {
	case newInteractive:
		in, err := tui.RunPostForm(cmd.OutOrStdout(), date)
		if err != nil {
			return err
		}
		title = in.Title
		date = in.Date
		if len(in.Tags) > 0 {
			tags = in.Tags
		}
	case len(args) > 0:
		title = args[0]
	}

	// Missing title is not an error: print the usage note and do nothing,
	// matching the original scaffold tool.
	if title == "" {
		cmd.Println(newUsage)
		return nil
	}

	pp, err := paths.Resolve(siteDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(pp.ConfigFile)
	if err != nil {
		return err
	}
	pp = paths.ApplyConfig(pp, cfg)

	if err := pp.EnsureMetaDirs(); err != nil {
		return err
	}

	logger, closer, err := logx.New(pp)
	if err != nil {
		return err
	}
	defer closer.Close()

	p := post.New(title, date, cfg.Content.DefaultLayout)
	p.Tags = tags

	dir, err := post.Scaffold(pp.PostsDir, p)
	if err != nil {
		return err
	}
	logger.Printf("blogctl new: title=%q dir=%s url=%s", title, dir, p.URL())

	if outputJSON {
		return writeNewJSON(cmd, p, dir)
	}

	rel, err := filepath.Rel(pp.Root, dir)
	if err != nil {
		rel = dir
	}
	cmd.Printf("created %s\n", filepath.Join(rel, "index.md"))
	return nil
}

// resolveNewDate applies the --date override, keeping day precision in the
// local zone either way.
func resolveNewDate(flag string, now time.Time) (time.Time, error) {
	v := strings.TrimSpace(flag)
	if v == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	date, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --date %q: expected yyyy-MM-dd", v)
	}
	return date, nil
}

func writeNewJSON(cmd *cobra.Command, p post.Post, dir string) error {
	payload := struct {
		Title string   `json:"title"`
		Slug  string   `json:"slug"`
		Date  string   `json:"date"`
		URL   string   `json:"url"`
		Dir   string   `json:"dir"`
		Tags  []string `json:"tags,omitempty"`
	}{
		Title: p.Title,
		Slug:  p.Slug,
		Date:  p.Date.Format("2006-01-02"),
		URL:   p.URL(),
		Dir:   dir,
		Tags:  p.Tags,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal new output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
