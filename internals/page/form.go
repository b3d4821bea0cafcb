package page

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
	FieldEmail    FieldType = "email"
)

type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Default  string    `json:"default,omitempty"`
	Options  []string  `json:"options,omitempty"`
	Min      string    `json:"min,omitempty"`
	Step     string    `json:"step,omitempty"`
}

// Form describes a mutation the page offers. Action is the endpoint the form posts to.
type Form struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Action string  `json:"action"`
	Method string  `json:"method"`
	Submit string  `json:"submit"`
	Fields []Field `json:"fields"`
}

func Text(name, label string, required bool) Field {
	return Field{Name: name, Label: label, Type: FieldText, Required: required}
}

func Number(name, label, min, step string) Field {
	return Field{Name: name, Label: label, Type: FieldNumber, Min: min, Step: step}
}

func Date(name, label, def string) Field {
	return Field{Name: name, Label: label, Type: FieldDate, Default: def}
}

func Choice(name, label string, options []string) Field {
	return Field{Name: name, Label: label, Type: FieldSelect, Options: options, Required: true}
}

func (f Field) WithDefault(v string) Field {
	f.Default = v
	return f
}

func (f Field) AsTextarea() Field {
	f.Type = FieldTextarea
	return f
}

func (f Field) AsEmail() Field {
	f.Type = FieldEmail
	return f
}
