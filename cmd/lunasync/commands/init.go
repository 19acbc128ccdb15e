package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/lunasync"
)

func newInitCommand(a *app) *cobra.Command {
	var (
		dir   string
		title string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create lunasync.toml and content.toml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a, dir, title, force)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&title, "title", "", "page title")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}

func runInit(cmd *cobra.Command, a *app, dir, title string, force bool) error {
	configPath := filepath.Join(dir, DefaultConfigFile)
	contentPath := filepath.Join(dir, "content.toml")

	// Check if either file already exists
	if !force {
		for _, p := range []string{configPath, contentPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", p)
			}
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing LunaSync project in %s\n", dir)

	config := DefaultConfig()
	config.Site.Content = "content.toml"
	if title != "" {
		config.Site.Title = title
	}
	if err := SaveConfig(configPath, config); err != nil {
		return err
	}
	fmt.Fprintf(out, "  ✓ Created %s\n", DefaultConfigFile)

	if err := os.WriteFile(contentPath, lunasync.DefaultContentTOML(), 0644); err != nil {
		return fmt.Errorf("failed to create content.toml: %w", err)
	}
	fmt.Fprintln(out, "  ✓ Created content.toml")

	a.logger.Debug("project initialized", zap.String("dir", dir))

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Edit content.toml to change the page copy")
	fmt.Fprintln(out, "  2. Run 'lunasync export' to write index.html")
	fmt.Fprintln(out, "  3. Run 'lunasync preview' to try it in the terminal")
	return nil
}
