package vanilla

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-theme"

	"github.com/goliatone/go-debrief/pkg/debrief"
	"github.com/goliatone/go-debrief/pkg/model"
	"github.com/goliatone/go-debrief/pkg/render"
)

type pageView struct {
	PageTitle      string          `json:"page_title"`
	Stylesheet     string          `json:"stylesheet,omitempty"`
	StylesheetHref string          `json:"stylesheet_href,omitempty"`
	Theme          themeView       `json:"theme"`
	Form           model.FormModel `json:"form"`
	Hidden         []hiddenView    `json:"hidden,omitempty"`
	FormErrors     []string        `json:"form_errors,omitempty"`
	Fields         []fieldView     `json:"fields,omitempty"`
	Summary        []summaryItem   `json:"summary,omitempty"`
}

type themeView struct {
	Name         string `json:"name,omitempty"`
	Variant      string `json:"variant,omitempty"`
	CSSVarsStyle string `json:"css_vars_style,omitempty"`
}

type hiddenView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type fieldView struct {
	Name        string       `json:"name"`
	Widget      string       `json:"widget"`
	Label       string       `json:"label"`
	Help        string       `json:"help,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Required    bool         `json:"required"`
	MinLength   string       `json:"min_length,omitempty"`
	ControlID   string       `json:"control_id"`
	ErrorID     string       `json:"error_id"`
	Value       string       `json:"value,omitempty"`
	Checked     bool         `json:"checked"`
	Options     []optionView `json:"options,omitempty"`
	Errors      []string     `json:"errors,omitempty"`
}

type optionView struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

type summaryItem struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func buildFields(form model.FormModel, options render.RenderOptions) []fieldView {
	fields := make([]fieldView, 0, len(form.Fields))
	for _, field := range form.Fields {
		value, hasValue := options.Values[field.Name]
		if !hasValue && field.Default != nil {
			value, hasValue = field.Default, true
		}
		view := fieldView{
			Name:        field.Name,
			Widget:      field.Widget,
			Label:       field.Label,
			Help:        field.Help,
			Placeholder: field.Placeholder,
			Required:    field.Required,
			ControlID:   controlID(field.Name),
			ErrorID:     controlID(field.Name) + "-error",
			Errors:      options.Errors[field.Name],
		}
		if field.MinLength > 0 {
			view.MinLength = strconv.Itoa(field.MinLength)
		}
		current := ""
		if hasValue {
			current = stringValue(value)
		}
		switch field.Type {
		case model.FieldTypeBoolean:
			view.Checked = hasValue && truthy(value)
		default:
			view.Value = current
		}
		for _, option := range field.Options {
			view.Options = append(view.Options, optionView{
				Value:   option.Value,
				Label:   option.Label,
				Checked: hasValue && current == option.Value,
			})
		}
		fields = append(fields, view)
	}
	return fields
}

func buildSummary(form model.FormModel, feedback debrief.Feedback) []summaryItem {
	values := feedback.Values()
	items := make([]summaryItem, 0, len(form.Fields))
	for _, field := range form.Fields {
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		items = append(items, summaryItem{
			Name:  field.Name,
			Label: field.Label,
			Value: displayValue(field, value),
		})
	}
	return items
}

// displayValue prefers option labels for choices and Yes/No for booleans.
func displayValue(field model.Field, value any) string {
	if b, ok := value.(bool); ok {
		if b {
			return "Yes"
		}
		return "No"
	}
	text := stringValue(value)
	for _, option := range field.Options {
		if option.Value == text {
			return option.Label
		}
	}
	return text
}

func buildHidden(fields map[string]string) []hiddenView {
	sorted := render.SortedHiddenFields(fields)
	if len(sorted) == 0 {
		return nil
	}
	out := make([]hiddenView, 0, len(sorted))
	for _, field := range sorted {
		out = append(out, hiddenView{Name: field.Name, Value: field.Value})
	}
	return out
}

func buildThemeView(cfg *theme.RendererConfig) themeView {
	if cfg == nil {
		return themeView{}
	}
	return themeView{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
}

func stylesheetHref(cfg *theme.RendererConfig) string {
	if cfg == nil || cfg.AssetURL == nil {
		return ""
	}
	return strings.TrimSpace(cfg.AssetURL(StylesheetName))
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		if strings.TrimSpace(key) != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		name := strings.TrimSpace(key)
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(vars[key]))
		b.WriteString(";")
	}
	return b.String()
}

func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "debrief-" + trimmed
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case debrief.Choice:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "1", "yes":
			return true
		}
	}
	return false
}
