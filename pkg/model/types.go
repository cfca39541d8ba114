package model

// FieldType is the value type a field submits.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeBoolean FieldType = "boolean"
)

// Option is one selectable value of a radio field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one input for renderers. Copy text is already resolved.
type Field struct {
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	Widget      string    `json:"widget"`
	Label       string    `json:"label"`
	Help        string    `json:"help,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required"`
	Default     any       `json:"default,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	MinLength   int       `json:"minLength,omitempty"`
	Pattern     string    `json:"pattern,omitempty"`
}

// FormModel is what renderers consume: form level copy, the submit target and
// the fields in display order.
type FormModel struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Method         string  `json:"method"`
	Endpoint       string  `json:"endpoint"`
	SubmitLabel    string  `json:"submitLabel"`
	SuccessTitle   string  `json:"successTitle,omitempty"`
	SuccessMessage string  `json:"successMessage,omitempty"`
	Fields         []Field `json:"fields"`
}

// Field looks up a field by name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames lists field names in display order.
func (f FormModel) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		names = append(names, field.Name)
	}
	return names
}
