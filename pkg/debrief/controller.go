package debrief

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Status is the coarse validation state of a form.
type Status string

const (
	StatusUnvalidated Status = "unvalidated"
	StatusValid       Status = "valid"
	StatusInvalid     Status = "invalid"
)

// Option configures a Controller.
type Option func(*Controller)

// WithSubmitter sets the destination for validated bundles. Without one the
// controller logs the bundle through its logger.
func WithSubmitter(submitter Submitter) Option {
	return func(c *Controller) {
		if submitter != nil {
			c.submitter = submitter
		}
	}
}

// WithLogger attaches a zap logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRules replaces the rule table.
func WithRules(rules []FieldRule) Option {
	return func(c *Controller) {
		if len(rules) > 0 {
			c.rules = append([]FieldRule(nil), rules...)
		}
	}
}

// WithInitialDraft overrides the draft the form mounts with.
func WithInitialDraft(d Draft) Option {
	return func(c *Controller) {
		c.initial = d
	}
}

// Controller owns the state of one form session: current values, touched and
// dirty tracking, visible errors and the submit flow. It is not safe for
// concurrent use; each session gets its own controller.
type Controller struct {
	rules     []FieldRule
	index     map[FieldName]int
	initial   Draft
	draft     Draft
	touched   map[FieldName]bool
	errors    FieldErrors
	status    Status
	attempts  int
	submitter Submitter
	logger    *zap.Logger
}

// New constructs a controller mounted with NewDraft values.
func New(options ...Option) *Controller {
	c := &Controller{
		rules:   Rules(),
		initial: NewDraft(),
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.submitter == nil {
		c.submitter = NewLogSubmitter(c.logger)
	}

	c.index = make(map[FieldName]int, len(c.rules))
	for i, rule := range c.rules {
		c.index[rule.Field] = i
	}
	c.Reset()
	return c
}

// Reset restores the freshly mounted state.
func (c *Controller) Reset() {
	c.draft = c.initial.clone()
	c.touched = make(map[FieldName]bool, len(c.rules))
	c.errors = nil
	c.status = StatusUnvalidated
	c.attempts = 0
}

// SetField updates a single field. It never re-validates other fields; once
// the form has been submitted at least once, the edited field alone is
// re-validated and its visible error updated or cleared.
func (c *Controller) SetField(name FieldName, value any) error {
	rule, ok := c.rule(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	normalized, set, err := normalize(rule.Kind, value)
	if err != nil {
		return fmt.Errorf("debrief: set %s: %w", name, err)
	}
	if err := c.draft.set(name, normalized, set); err != nil {
		return err
	}

	c.touched[name] = true
	c.status = StatusUnvalidated

	if c.attempts > 0 {
		c.revalidate(rule)
	}

	c.logger.Debug("debrief field updated",
		zap.String("field", string(name)),
		zap.Bool("set", set),
		zap.Bool("dirty", c.Dirty(name)),
	)
	return nil
}

// SetValues applies a batch of raw values in form order. Unknown keys and
// values of the wrong kind are collected and returned together; valid entries
// are still applied.
func (c *Controller) SetValues(values map[string]any) error {
	var errs []error
	seen := make(map[string]struct{}, len(values))
	for _, rule := range c.rules {
		key := string(rule.Field)
		raw, ok := values[key]
		if !ok {
			continue
		}
		seen[key] = struct{}{}
		if err := c.SetField(rule.Field, raw); err != nil {
			errs = append(errs, err)
		}
	}

	var unknown []string
	for key := range values {
		if _, ok := seen[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownField, key))
	}
	return errors.Join(errs...)
}

// Value returns the current value of name and whether it is set.
func (c *Controller) Value(name FieldName) (any, bool) {
	return c.draft.Value(name)
}

// Draft returns a copy of the current values.
func (c *Controller) Draft() Draft {
	return c.draft.clone()
}

// Touched reports whether the field was edited since the last Reset.
func (c *Controller) Touched(name FieldName) bool {
	return c.touched[name]
}

// Dirty reports whether the field differs from its mounted value.
func (c *Controller) Dirty(name FieldName) bool {
	current, currentSet := c.draft.Value(name)
	initial, initialSet := c.initial.Value(name)
	if currentSet != initialSet {
		return true
	}
	return currentSet && current != initial
}

// Errors returns a copy of the visible error state.
func (c *Controller) Errors() FieldErrors {
	return c.errors.clone()
}

// ErrorFor returns the visible error for one field.
func (c *Controller) ErrorFor(name FieldName) (string, bool) {
	msg, ok := c.errors[name]
	return msg, ok
}

// Status reports the outcome of the latest validation, reset to
// StatusUnvalidated by any edit.
func (c *Controller) Status() Status {
	return c.status
}

// Attempts is the number of Submit calls since the last Reset.
func (c *Controller) Attempts() int {
	return c.attempts
}

// Rules returns the rule table the controller validates with.
func (c *Controller) Rules() []FieldRule {
	return append([]FieldRule(nil), c.rules...)
}

// Validate checks the current values without touching visible state.
func (c *Controller) Validate() (Feedback, FieldErrors) {
	return validate(c.rules, c.draft)
}

// Submit validates every field. On failure the error mapping becomes the
// visible error state and is returned as a FieldErrors error; the submitter
// is not called. On success the bundle is handed to the submitter.
func (c *Controller) Submit(ctx context.Context) (Feedback, error) {
	if err := ctx.Err(); err != nil {
		return Feedback{}, err
	}

	c.attempts++
	feedback, errs := validate(c.rules, c.draft)
	if len(errs) > 0 {
		c.errors = errs
		c.status = StatusInvalid
		c.logger.Debug("debrief submission rejected",
			zap.Int("attempt", c.attempts),
			zap.Strings("fields", fieldNames(errs)),
		)
		return Feedback{}, errs.clone()
	}

	c.errors = nil
	c.status = StatusValid

	if err := c.submitter.Submit(ctx, feedback); err != nil {
		c.logger.Warn("debrief submitter failed", zap.Error(err))
		return feedback, fmt.Errorf("debrief: submit: %w", err)
	}
	return feedback, nil
}

func (c *Controller) revalidate(rule FieldRule) {
	value, set := c.draft.Value(rule.Field)
	msg, ok := ValidateField(rule, value, set)
	if ok {
		if c.errors != nil {
			delete(c.errors, rule.Field)
			if len(c.errors) == 0 {
				c.errors = nil
			}
		}
		return
	}
	if c.errors == nil {
		c.errors = make(FieldErrors)
	}
	c.errors[rule.Field] = msg
}

func (c *Controller) rule(name FieldName) (FieldRule, bool) {
	idx, ok := c.index[name]
	if !ok {
		return FieldRule{}, false
	}
	return c.rules[idx], true
}

func (d Draft) clone() Draft {
	out := Draft{}
	if d.CandidateNextStep != nil {
		out.CandidateNextStep = ptr(*d.CandidateNextStep)
	}
	if d.PotentialOffer != nil {
		out.PotentialOffer = ptr(*d.PotentialOffer)
	}
	if d.NextInterviewerName != nil {
		out.NextInterviewerName = ptr(*d.NextInterviewerName)
	}
	if d.UnselectedInterviewer != nil {
		out.UnselectedInterviewer = ptr(*d.UnselectedInterviewer)
	}
	if d.ApproveNextInterviewRound != nil {
		out.ApproveNextInterviewRound = ptr(*d.ApproveNextInterviewRound)
	}
	if d.Feedback != nil {
		out.Feedback = ptr(*d.Feedback)
	}
	return out
}

func fieldNames(errs FieldErrors) []string {
	list := errs.List()
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, string(item.Field))
	}
	return out
}
