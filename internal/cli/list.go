package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"blogctl/internal/config"
	"blogctl/internal/paths"
	"blogctl/internal/post"
	"blogctl/internal/tui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scaffolded posts",
		RunE:  runList,
	}
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	pp, err := paths.Resolve(siteDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(pp.ConfigFile)
	if err != nil {
		return err
	}
	pp = paths.ApplyConfig(pp, cfg)

	if err := ensureSiteDir(pp); err != nil {
		return err
	}

	entries, err := post.Scan(pp.PostsDir)
	if err != nil {
		return err
	}

	if outputJSON {
		return writeListJSON(cmd, pp.Root, entries)
	}

	writeListTable(cmd, pp.Root, entries)
	return nil
}

func ensureSiteDir(pp paths.SitePaths) error {
	exists, err := paths.DirExists(pp.Root)
	if err != nil {
		return fmt.Errorf("stat site dir: %w", err)
	}
	if !exists {
		return fmt.Errorf("site directory does not exist: %s", pp.Root)
	}
	return nil
}

func writeListTable(cmd *cobra.Command, siteRoot string, entries []post.Entry) {
	fmt.Fprintf(cmd.OutOrStdout(), "Site: %s\n", siteRoot)

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No posts found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSLUG\tTITLE\tTAGS\tSTATUS")
	for _, entry := range entries {
		status := tui.StatusStyle("ok").Render("ok")
		if entry.Err != nil {
			status = tui.StatusStyle("error").Render(entry.Err.Error())
		}

		tags := strings.Join(entry.Meta.CleanTags(), ", ")
		if tags == "" {
			tags = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			entry.Date,
			entry.Slug,
			entry.Meta.Title,
			tags,
			status,
		)
	}
	w.Flush()
}

func writeListJSON(cmd *cobra.Command, siteRoot string, entries []post.Entry) error {
	type jsonEntry struct {
		Dir   string   `json:"dir"`
		Date  string   `json:"date,omitempty"`
		Slug  string   `json:"slug,omitempty"`
		Title string   `json:"title,omitempty"`
		URL   string   `json:"url,omitempty"`
		Tags  []string `json:"tags,omitempty"`
		Error string   `json:"error,omitempty"`
	}

	payload := struct {
		Site  string      `json:"site"`
		Posts []jsonEntry `json:"posts"`
	}{Site: siteRoot, Posts: make([]jsonEntry, 0, len(entries))}

	for _, entry := range entries {
		je := jsonEntry{
			Dir:   entry.DirName,
			Date:  entry.Date,
			Slug:  entry.Slug,
			Title: entry.Meta.Title,
			URL:   entry.Meta.URL,
			Tags:  entry.Meta.CleanTags(),
		}
		if entry.Err != nil {
			je.Error = entry.Err.Error()
		}
		payload.Posts = append(payload.Posts, je)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal list output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
