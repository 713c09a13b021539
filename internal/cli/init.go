package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"blogctl/internal/config"
	"blogctl/internal/logx"
	"blogctl/internal/paths"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a blog workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}

	return cmd
}

func resolveInitDir(siteFlag string, args []string) (string, error) {
	if siteFlag != "" {
		return siteFlag, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	if len(args) > 0 {
		if args[0] == "." {
			return cwd, nil
		}
		return filepath.Join(cwd, args[0]), nil
	}

	return nextAvailableDir(cwd)
}

func nextAvailableDir(base string) (string, error) {
	for i := 1; ; i++ {
		candidate := filepath.Join(base, fmt.Sprintf("blog-%d", i))
		exists, err := paths.DirExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := resolveInitDir(siteDir, args)
	if err != nil {
		return err
	}

	pp, err := paths.Resolve(dir)
	if err != nil {
		return err
	}

	if err := pp.EnsureRoot(); err != nil {
		return err
	}
	if err := pp.EnsureMetaDirs(); err != nil {
		return err
	}

	logger, closer, err := logx.New(pp)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Printf("blogctl init: site=%s", pp.Root)

	created := make([]string, 0, 2)

	if err := ensurePostsDir(pp, &created, logger); err != nil {
		return err
	}

	if err := ensureConfig(pp, &created, logger); err != nil {
		return err
	}

	if len(created) == 0 {
		cmd.Printf("Site already initialized at %s\n", pp.Root)
		return nil
	}

	cmd.Printf("Initialized site at %s\n", pp.Root)
	for _, entry := range created {
		cmd.Printf("  created %s\n", entry)
	}

	return nil
}

func ensurePostsDir(pp paths.SitePaths, created *[]string, logger Logger) error {
	exists, err := paths.DirExists(pp.PostsDir)
	if err != nil {
		return fmt.Errorf("check posts directory: %w", err)
	}
	if exists {
		logger.Printf("posts directory exists: %s", pp.PostsDir)
		return nil
	}

	if err := pp.EnsurePostsDir(); err != nil {
		return err
	}
	logger.Printf("created posts directory: %s", pp.PostsDir)

	rel, err := filepath.Rel(pp.Root, pp.PostsDir)
	if err != nil {
		rel = pp.PostsDir
	}
	*created = append(*created, rel)
	return nil
}

func ensureConfig(pp paths.SitePaths, created *[]string, logger Logger) error {
	exists, err := paths.FileExists(pp.ConfigFile)
	if err != nil {
		return fmt.Errorf("check config: %w", err)
	}
	if exists {
		logger.Printf("config exists: %s", pp.ConfigFile)
		return nil
	}

	cfg := config.Default()
	cfg.ApplyDefaults()
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(pp.ConfigFile, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	logger.Printf("created config: %s", pp.ConfigFile)
	*created = append(*created, "blog.yaml")
	return nil
}

// Logger keeps the subset of log.Logger used locally, enabling easy testing.
type Logger interface {
	Printf(format string, v ...any)
}
