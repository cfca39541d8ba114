package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-debrief/pkg/orchestrator"
	"github.com/goliatone/go-debrief/pkg/render"
	"github.com/goliatone/go-debrief/pkg/renderers/tui"
	"github.com/goliatone/go-debrief/pkg/uischema"
)

type candidateFlags struct {
	name      string
	firstName string
}

func (f *candidateFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "candidate", "", "Candidate full name used in the copy")
	cmd.Flags().StringVar(&f.firstName, "candidate-first", "", "Candidate first name (derived from --candidate when empty)")
}

func (f candidateFlags) context() uischema.Context {
	return uischema.Context{CandidateName: f.name, CandidateFirstName: f.firstName}
}

func newPromptCmd(a *app) *cobra.Command {
	var (
		candidate candidateFlags
		output    string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in a debrief interactively and print the bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, ok := tui.ParseOutputFormat(output)
			if !ok {
				return fmt.Errorf("unknown output format %q", output)
			}

			opts := []tui.Option{
				tui.WithOutputFormat(format),
				tui.WithLogger(a.logger),
				tui.WithMaxAttempts(a.cfg.Form.MaxAttempts),
			}
			if a.promptDriver != nil {
				opts = append(opts, tui.WithPromptDriver(a.promptDriver))
			} else {
				opts = append(opts, tui.WithPromptDriver(tui.NewSurveyDriver(cmd.ErrOrStderr())))
			}
			renderer, err := tui.New(opts...)
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
			out, err := orch.Generate(cmd.Context(), orchestrator.Request{
				Context:  candidate.context(),
				Renderer: renderer.Name(),
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, outPath, out)
		},
	}

	candidate.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", string(tui.OutputFormatJSON), "Bundle format: json, yaml or pretty")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the bundle to a file instead of stdout")
	return cmd
}
