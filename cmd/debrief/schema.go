package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/openapi"
)

func newSchemaCmd(_ *app) *cobra.Command {
	var rules bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI contract or the field rule table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !rules {
				_, err := cmd.OutOrStdout().Write(openapi.Raw())
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FIELD\tKIND\tDEFAULT\tMESSAGES")
			for _, rule := range debrief.Rules() {
				def := "-"
				if rule.HasDefault() {
					def = fmt.Sprint(rule.Default)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rule.Field, rule.Kind, def, ruleMessages(rule))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&rules, "rules", false, "Print the field rule table instead of the contract")
	return cmd
}

func ruleMessages(rule debrief.FieldRule) string {
	var messages []string
	if !rule.HasDefault() {
		msg := rule.RequiredMessage
		if msg == "" {
			msg = debrief.MessageRequired
		}
		messages = append(messages, msg)
	}
	for _, check := range rule.Checks {
		if !slices.Contains(messages, check.Message) {
			messages = append(messages, check.Message)
		}
	}
	return strings.Join(messages, "; ")
}
