package uischema

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-debrief/pkg/debrief"
)

// Placeholder keys understood by copy text.
const (
	KeyCandidateFullName        = "candidate.full_name"
	KeyCandidateFirstName       = "candidate.first_name"
	KeyNextInterviewerFirstName = "next_interviewer.first_name"
)

// Interpolator renders inline template text. The pongo2 engine in
// pkg/render/template/gotemplate satisfies it.
type Interpolator interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}

// Context carries the people a debrief is about. Values come from query
// strings or CLI flags and are sanitised before use.
type Context struct {
	CandidateName       string
	CandidateFirstName  string
	NextInterviewerName string
}

// Sanitized strips markup from every value and derives the candidate first
// name from the full name when it is missing.
func (c Context) Sanitized() Context {
	out := Context{
		CandidateName:       SanitizeText(c.CandidateName),
		CandidateFirstName:  SanitizeText(c.CandidateFirstName),
		NextInterviewerName: SanitizeText(c.NextInterviewerName),
	}
	if out.CandidateFirstName == "" {
		out.CandidateFirstName = debrief.FirstName(out.CandidateName)
	}
	return out
}

// Values returns the placeholder values after sanitising, with fallbacks
// substituted for unknown people.
func (c Context) Values(fallbacks map[string]string) map[string]string {
	clean := c.Sanitized()
	values := map[string]string{
		KeyCandidateFullName:        clean.CandidateName,
		KeyCandidateFirstName:       clean.CandidateFirstName,
		KeyNextInterviewerFirstName: debrief.FirstName(clean.NextInterviewerName),
	}
	for key, value := range values {
		if value == "" {
			values[key] = fallbacks[key]
		}
	}
	return values
}

// Resolve returns a copy of the document with every placeholder filled.
func (d *Document) Resolve(engine Interpolator, ctx Context) (*Document, error) {
	if d == nil {
		return nil, fmt.Errorf("uischema: resolve: document is nil")
	}
	if engine == nil {
		return nil, fmt.Errorf("uischema: resolve: interpolator is nil")
	}

	data := templateData(ctx.Values(d.Fallbacks))
	fill := func(text string) (string, error) {
		if !strings.Contains(text, "{{") {
			return text, nil
		}
		out, err := engine.RenderString("{% autoescape off %}"+text+"{% endautoescape %}", data)
		if err != nil {
			return "", fmt.Errorf("uischema: %s: interpolate %q: %w", d.source(), text, err)
		}
		return out, nil
	}

	out := d.clone()
	var err error
	for _, target := range []*string{&out.Form.Title, &out.Form.SuccessTitle, &out.Form.SuccessMessage} {
		if *target, err = fill(*target); err != nil {
			return nil, err
		}
	}
	for name, cfg := range out.Fields {
		for _, target := range []*string{&cfg.Label, &cfg.Help, &cfg.Placeholder} {
			if *target, err = fill(*target); err != nil {
				return nil, err
			}
		}
		for i := range cfg.Options {
			if cfg.Options[i].Label, err = fill(cfg.Options[i].Label); err != nil {
				return nil, err
			}
		}
		out.Fields[name] = cfg
	}
	return out, nil
}

// templateData nests dotted keys so "candidate.first_name" resolves as an
// attribute lookup in the template.
func templateData(values map[string]string) map[string]any {
	data := make(map[string]any)
	for key, value := range values {
		scope, attr, ok := strings.Cut(key, ".")
		if !ok {
			data[key] = value
			continue
		}
		nested, _ := data[scope].(map[string]any)
		if nested == nil {
			nested = make(map[string]any)
			data[scope] = nested
		}
		nested[attr] = value
	}
	return data
}
