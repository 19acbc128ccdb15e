package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/lunasync"
	"github.com/agiangrant/lunasync/internal/tui"
)

func newPreviewCommand(a *app) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the page interactively in the terminal",
		Long: `Preview renders the page in the terminal. Scroll with the arrow keys,
press m for the mobile menu and tab into the contact form.

The terminal width picks the breakpoint (px_per_column in lunasync.toml), and
scrolling drives the navigation bar and section reveals (px_per_row).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(a, logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs here while the preview owns the terminal")
	return cmd
}

func runPreview(a *app, logFile string) error {
	content, err := a.content()
	if err != nil {
		return err
	}

	// The preview owns the terminal: logging to stderr would tear the screen.
	logger := zap.NewNop()
	if logFile != "" {
		zc := zap.NewDevelopmentConfig()
		zc.OutputPaths = []string{logFile}
		zc.ErrorOutputPaths = []string{logFile}
		if logger, err = zc.Build(); err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logger.Sync()
	}

	model := tui.New(content, tui.Options{
		PxPerColumn: a.config.Preview.PxPerColumn,
		PxPerRow:    a.config.Preview.PxPerRow,
		Year:        a.year(),
		Logger:      logger,
		Notifier:    lunasync.LogNotifier{Logger: logger},
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
