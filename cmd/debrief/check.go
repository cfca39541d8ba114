package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-debrief/pkg/debrief"
)

func newCheckCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check <file.json|file.yaml>",
		Short: "Validate a saved debrief and print the accepted bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "json" && output != "yaml" {
				return fmt.Errorf("unknown output format %q", output)
			}
			values, err := readValues(args[0])
			if err != nil {
				return err
			}

			controller := debrief.New(debrief.WithLogger(a.logger))
			if err := controller.SetValues(values); err != nil {
				return fmt.Errorf("check %s: %w", args[0], err)
			}
			feedback, errs := controller.Validate()
			if len(errs) > 0 {
				for _, item := range errs.List() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", item.Field, item.Message)
				}
				a.logger.Debug("debrief check failed", zap.String("file", args[0]), zap.Int("errors", len(errs)))
				return fmt.Errorf("check %s: %d invalid field(s)", args[0], len(errs))
			}

			var payload []byte
			if output == "yaml" {
				payload, err = yaml.Marshal(feedback)
			} else {
				payload, err = json.MarshalIndent(feedback, "", "  ")
				payload = append(payload, '\n')
			}
			if err != nil {
				return fmt.Errorf("encode bundle: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(payload)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Bundle format: json or yaml")
	return cmd
}

// readValues decodes a debrief draft. Files ending in .json are read as
// JSON; anything else is read as YAML.
func readValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	values := map[string]any{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &values)
	} else {
		err = yaml.Unmarshal(data, &values)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return values, nil
}
