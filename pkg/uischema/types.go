package uischema

import "fmt"

// Widget names the input control a field is rendered with.
type Widget string

const (
	WidgetRadio    Widget = "radio"
	WidgetText     Widget = "text"
	WidgetCheckbox Widget = "checkbox"
	WidgetSwitch   Widget = "switch"
	WidgetTextarea Widget = "textarea"
)

// Valid reports whether w is a known widget.
func (w Widget) Valid() bool {
	switch w {
	case WidgetRadio, WidgetText, WidgetCheckbox, WidgetSwitch, WidgetTextarea:
		return true
	default:
		return false
	}
}

// Document is the copy shown around the form: titles, labels, help text and
// widget choices. Text may reference placeholders such as
// {{ candidate.first_name }}; see Resolve.
type Document struct {
	Form      FormCopy             `json:"form" yaml:"form"`
	Fallbacks map[string]string    `json:"fallbacks" yaml:"fallbacks"`
	Fields    map[string]FieldCopy `json:"fields" yaml:"fields"`
	Source    string               `json:"-" yaml:"-"`
}

// FormCopy holds form level text.
type FormCopy struct {
	Title          string `json:"title" yaml:"title"`
	Submit         string `json:"submit" yaml:"submit"`
	SuccessTitle   string `json:"successTitle" yaml:"successTitle"`
	SuccessMessage string `json:"successMessage" yaml:"successMessage"`
}

// FieldCopy customises how one field is presented.
type FieldCopy struct {
	Label       string       `json:"label" yaml:"label"`
	Help        string       `json:"help,omitempty" yaml:"help,omitempty"`
	Placeholder string       `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Widget      Widget       `json:"widget" yaml:"widget"`
	Options     []OptionCopy `json:"options,omitempty" yaml:"options,omitempty"`
}

// OptionCopy labels one choice of a radio field.
type OptionCopy struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field returns the copy for name.
func (d *Document) Field(name string) (FieldCopy, bool) {
	if d == nil {
		return FieldCopy{}, false
	}
	cfg, ok := d.Fields[name]
	return cfg, ok
}

// Require checks that every name has copy with a label and a known widget.
func (d *Document) Require(names ...string) error {
	for _, name := range names {
		cfg, ok := d.Field(name)
		if !ok {
			return fmt.Errorf("uischema: %s: missing copy for field %q", d.source(), name)
		}
		if cfg.Label == "" {
			return fmt.Errorf("uischema: %s: field %q has no label", d.source(), name)
		}
		if !cfg.Widget.Valid() {
			return fmt.Errorf("uischema: %s: field %q uses unknown widget %q", d.source(), name, cfg.Widget)
		}
	}
	return nil
}

func (d *Document) source() string {
	if d == nil || d.Source == "" {
		return "copy"
	}
	return d.Source
}

func (d *Document) clone() *Document {
	out := &Document{
		Form:   d.Form,
		Source: d.Source,
	}
	if len(d.Fallbacks) > 0 {
		out.Fallbacks = make(map[string]string, len(d.Fallbacks))
		for k, v := range d.Fallbacks {
			out.Fallbacks[k] = v
		}
	}
	out.Fields = make(map[string]FieldCopy, len(d.Fields))
	for name, cfg := range d.Fields {
		cfg.Options = append([]OptionCopy(nil), cfg.Options...)
		out.Fields[name] = cfg
	}
	return out
}
