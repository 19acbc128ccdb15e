package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/lunasync"
	"github.com/agiangrant/lunasync/internal/script"
)

func newReplayCommand(a *app) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Run a scripted interaction and print the state after each step",
		Long: `Replay feeds the steps of a YAML script through the page controller
and prints one JSON object per step: the step index, its action, the effects
it produced and the full state afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, a, args[0], pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	return cmd
}

func runReplay(cmd *cobra.Command, a *app, path string, pretty bool) error {
	content, err := a.content()
	if err != nil {
		return err
	}
	s, err := script.Load(path)
	if err != nil {
		return err
	}

	cfg := content.ControllerConfig()
	cfg.Logger = a.logger
	ctrl := lunasync.NewController(cfg)

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}

	err = s.Replay(ctrl, func(r script.Result) error {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.logger.Debug("replay finished", zap.String("script", path), zap.Int("steps", len(s.Steps)))
	return nil
}
