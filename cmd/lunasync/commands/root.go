package commands

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/lunasync"
)

// Version is printed by the version command.
const Version = "0.1.0"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	config     ProjectConfig
	logger     *zap.Logger
}

func (a *app) load() error {
	config, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	logger, err := NewLogger(config.Log)
	if err != nil {
		return err
	}
	a.config = config
	a.logger = logger
	return nil
}

// content loads the page copy. A relative content path is taken from the
// config file's directory.
func (a *app) content() (*lunasync.Content, error) {
	path := a.config.Site.Content
	if path != "" && !filepath.IsAbs(path) {
		base := a.configPath
		if base == "" {
			base = DefaultConfigFile
		}
		path = filepath.Join(filepath.Dir(base), path)
	}
	return lunasync.LoadContent(path)
}

func (a *app) year() int {
	if a.config.Site.Year > 0 {
		return a.config.Site.Year
	}
	return time.Now().Year()
}

// NewRootCommand creates the command tree. Each call returns a fresh tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lunasync",
		Short: "LunaSync landing page toolkit",
		Long: `lunasync renders the LunaSync landing page and drives its view state.

Pages can be exported as static HTML, replayed from YAML scripts of scroll,
menu and form interactions, or previewed interactively in the terminal.

Projects are configured via lunasync.toml in the current directory.
Run 'lunasync init' to create one with default settings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is ./lunasync.toml)")

	root.AddCommand(
		newInitCommand(a),
		newExportCommand(a),
		newReplayCommand(a),
		newPreviewCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
