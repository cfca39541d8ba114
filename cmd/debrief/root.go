package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-debrief/internal/config"
	"github.com/goliatone/go-debrief/internal/logger"
	"github.com/goliatone/go-debrief/pkg/orchestrator"
	"github.com/goliatone/go-debrief/pkg/render"
	"github.com/goliatone/go-debrief/pkg/renderers/tui"
)

// app holds what PersistentPreRunE prepares for the subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger

	// promptDriver replaces the survey driver used by the prompt command.
	promptDriver tui.PromptDriver
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "debrief",
		Short:         "Interview debrief form: serve it, fill it in a terminal, check saved bundles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.verbose {
				cfg.Logger.Level = "debug"
			}
			log, err := logger.New(cfg.Logger)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newPromptCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newSchemaCmd(a))
	return root
}

// orchestrator builds the form pipeline from config. registry may be nil to
// use the default HTML renderer.
func (a *app) orchestrator(registry *render.Registry, defaultRenderer string) (*orchestrator.Orchestrator, error) {
	orch := orchestrator.New(
		orchestrator.WithCopyFile(a.cfg.Form.CopyFile),
		orchestrator.WithEndpoint(a.cfg.Form.Endpoint),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(defaultRenderer),
		orchestrator.WithLogger(a.logger),
	)
	if err := orch.Err(); err != nil {
		return nil, err
	}
	return orch, nil
}
