package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-debrief/pkg/orchestrator"
	"github.com/goliatone/go-debrief/pkg/render"
	"github.com/goliatone/go-debrief/pkg/renderers/vanilla"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		candidate candidateFlags
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the debrief form as a standalone HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var vanillaOpts []vanilla.Option
			if dir := a.cfg.Form.TemplatesDir; dir != "" {
				vanillaOpts = append(vanillaOpts, vanilla.WithTemplatesDir(dir))
			}
			renderer, err := vanilla.New(vanillaOpts...)
			if err != nil {
				return err
			}
			registry, err := render.NewRegistry(renderer)
			if err != nil {
				return err
			}
			orch, err := a.orchestrator(registry, renderer.Name())
			if err != nil {
				return err
			}

			uctx := candidate.context()
			out, err := orch.Generate(cmd.Context(), orchestrator.Request{
				Context: uctx,
				RenderOptions: render.RenderOptions{
					Hidden: render.MergeHiddenFields(nil, render.ContextHidden(uctx)...),
					Theme:  a.cfg.Theme.RendererConfig(),
				},
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, outPath, out)
		},
	}

	candidate.bind(cmd)
	cmd.Flags().StringVar(&outPath, "out", "", "Write the page to a file instead of stdout")
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
