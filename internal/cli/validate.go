package cli

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"blogctl/internal/config"
	"blogctl/internal/paths"
	"blogctl/internal/post"
	"blogctl/internal/tui"
)

var validateStrict bool

// slugCharset is the contract every published slug honors.
var slugCharset = regexp.MustCompile(`^[a-z0-9-]*$`)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check post directories against the content conventions",
		RunE:  runValidate,
	}

	cmd.Flags().BoolVar(&validateStrict, "strict", false, "fail when any post has issues")
	return cmd
}

// postIssues collects the problems found for one post directory.
type postIssues struct {
	Dir    string   `json:"dir"`
	Issues []string `json:"issues"`
}

func runValidate(cmd *cobra.Command, _ []string) error {
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

	report := validateEntries(entries)

	if outputJSON {
		if err := writeValidateJSON(cmd, len(entries), report); err != nil {
			return err
		}
	} else {
		writeValidateText(cmd, len(entries), report)
	}

	if validateStrict && len(report) > 0 {
		return fmt.Errorf("%d of %d posts have issues", len(report), len(entries))
	}
	return nil
}

func validateEntries(entries []post.Entry) []postIssues {
	var report []postIssues
	for _, entry := range entries {
		if issues := checkEntry(entry); len(issues) > 0 {
			report = append(report, postIssues{Dir: entry.DirName, Issues: issues})
		}
	}
	return report
}

func checkEntry(entry post.Entry) []string {
	var issues []string

	date, slug, ok := post.SplitDirName(entry.DirName)
	if !ok {
		issues = append(issues, "directory name is not <yyyy-MM-dd>-<slug>")
		return issues
	}

	if !slugCharset.MatchString(slug) {
		issues = append(issues, fmt.Sprintf("slug %q contains characters outside [a-z0-9-]", slug))
	}

	if entry.Err != nil {
		issues = append(issues, entry.Err.Error())
		return issues
	}

	if entry.Meta.Title == "" {
		issues = append(issues, "front matter has no title")
	}
	if entry.Meta.Date != date {
		issues = append(issues, fmt.Sprintf("front matter date %q does not match directory date %q", entry.Meta.Date, date))
	}

	wantURL := "/" + strings.ReplaceAll(date, "-", "/") + "/" + slug + "/"
	if entry.Meta.URL != wantURL {
		issues = append(issues, fmt.Sprintf("front matter url %q does not match %q", entry.Meta.URL, wantURL))
	}

	return issues
}

func writeValidateText(cmd *cobra.Command, total int, report []postIssues) {
	out := cmd.OutOrStdout()

	if len(report) == 0 {
		fmt.Fprintf(out, "%s %d posts checked, no issues found\n", tui.StatusStyle("ok").Render("ok:"), total)
		return
	}

	for _, pi := range report {
		fmt.Fprintf(out, "%s\n", tui.HeaderStyle.Render(pi.Dir))
		for _, issue := range pi.Issues {
			fmt.Fprintf(out, "  %s %s\n", tui.StatusStyle("error").Render("-"), issue)
		}
	}
	fmt.Fprintf(out, "%d of %d posts have issues\n", len(report), total)
}

func writeValidateJSON(cmd *cobra.Command, total int, report []postIssues) error {
	payload := struct {
		Checked int          `json:"checked"`
		Posts   []postIssues `json:"posts"`
	}{Checked: total, Posts: report}
	if payload.Posts == nil {
		payload.Posts = []postIssues{}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal validate output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
