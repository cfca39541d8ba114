package tui

import (
	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/model"
)

// State binds a prompt session to a debrief controller. The first round asks
// every field; later rounds only ask the fields that failed the last submit.
type State struct {
	controller *debrief.Controller
	seeded     map[string]string
}

// NewState wraps controller. errs are messages known before the first round,
// for example from a rejected server submission; only the first is shown.
func NewState(controller *debrief.Controller, errs map[string][]string) *State {
	seeded := make(map[string]string, len(errs))
	for name, messages := range errs {
		if len(messages) > 0 && messages[0] != "" {
			seeded[name] = messages[0]
		}
	}
	return &State{controller: controller, seeded: seeded}
}

// Controller exposes the underlying controller.
func (s *State) Controller() *debrief.Controller {
	return s.controller
}

// Pending lists the fields to prompt in the next round, in form order.
func (s *State) Pending(form model.FormModel) []model.Field {
	if s.controller.Attempts() == 0 {
		return append([]model.Field(nil), form.Fields...)
	}
	errs := s.controller.Errors()
	var pending []model.Field
	for _, field := range form.Fields {
		if errs.Has(debrief.FieldName(field.Name)) {
			pending = append(pending, field)
		}
	}
	return pending
}

// ErrorFor returns the message to show above a field's prompt.
func (s *State) ErrorFor(name string) (string, bool) {
	if s.controller.Attempts() == 0 {
		msg, ok := s.seeded[name]
		return msg, ok
	}
	return s.controller.ErrorFor(debrief.FieldName(name))
}

// Value returns the current value of a field.
func (s *State) Value(name string) (any, bool) {
	return s.controller.Value(debrief.FieldName(name))
}

// Set records an answer.
func (s *State) Set(name string, value any) error {
	return s.controller.SetField(debrief.FieldName(name), value)
}
