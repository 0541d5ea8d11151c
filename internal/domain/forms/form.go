package forms

// Field pairs a wire name with its rule. Order of fields in a Form is the
// order errors are reported in.
type Field struct {
	Name string
	Rule FieldRule
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Form is an ordered rule registry for one concrete form. Requiredness
// decisions (e.g. whether phone is optional) are made where the form is
// defined, so two pages can share rules without sharing policy.
type Form struct {
	fields []Field
}

func NewForm(fields ...Field) *Form {
	return &Form{fields: fields}
}

// ValidateField runs the rule registered for the named field. Unknown
// fields validate clean, mirroring a rule lookup miss on the client.
func (f *Form) ValidateField(name, value string) string {
	for _, fld := range f.fields {
		if fld.Name == name {
			return fld.Rule(value)
		}
	}
	return ""
}

// Validate checks every registered field against the submitted values and
// returns all failures in field order. The form is valid iff the result is
// empty.
func (f *Form) Validate(values map[string]string) []FieldError {
	var errs []FieldError
	for _, fld := range f.fields {
		if msg := fld.Rule(values[fld.Name]); msg != "" {
			errs = append(errs, FieldError{Field: fld.Name, Message: msg})
		}
	}
	return errs
}

// Messages flattens field errors for aggregated display.
func Messages(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}

// Payment entry form: payer names plus the terms checkbox.
func PaymentForm() *Form {
	return NewForm(
		Field{Name: "first_name", Rule: NameRule("First name")},
		Field{Name: "last_name", Rule: NameRule("Last name")},
		Field{Name: "terms", Rule: CheckedRule("You must agree to the terms and conditions")},
	)
}

// Contact form: phone is optional here. The name field accepts any
// non-empty text since values arrive pre-escaped.
func ContactForm() *Form {
	return NewForm(
		Field{Name: "name", Rule: RequiredRule("Name")},
		Field{Name: "email", Rule: EmailRule()},
		Field{Name: "phone", Rule: PhoneRule(false)},
		Field{Name: "message", Rule: MessageRule()},
	)
}

// Newsletter form: a single email field.
func NewsletterForm() *Form {
	return NewForm(
		Field{Name: "email", Rule: EmailRule()},
	)
}
