//go:build unit

package forms_test

import (
	"strings"
	"testing"

	"siteforms/internal/domain/forms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRule(t *testing.T) {
	rule := forms.NameRule("First name")

	invalid := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "whitespace only", value: "   "},
		{name: "single character", value: "A"},
		{name: "digits", value: "John3"},
		{name: "punctuation", value: "O'Brien"},
	}
	for _, tc := range invalid {
		t.Run("invalid: "+tc.name, func(t *testing.T) {
			assert.NotEmpty(t, rule(tc.value))
		})
	}

	valid := []struct {
		name  string
		value string
	}{
		{name: "simple", value: "John"},
		{name: "two words", value: "Mary Jane"},
		{name: "minimum length", value: "Al"},
		{name: "long name", value: strings.Repeat("Ab ", 20)},
	}
	for _, tc := range valid {
		t.Run("valid: "+tc.name, func(t *testing.T) {
			assert.Empty(t, rule(tc.value))
		})
	}
}

func TestEmailRule(t *testing.T) {
	rule := forms.EmailRule()

	assert.Equal(t, "Email is required", rule(""))
	assert.Equal(t, "Please enter a valid email address", rule("not-an-email"))
	assert.Equal(t, "Please enter a valid email address", rule("a b@example.com"))
	assert.Equal(t, "Please enter a valid email address", rule("a@b"))
	assert.Empty(t, rule("user@example.com"))
	assert.Empty(t, rule("  user@example.com  "))
}

func TestPhoneRule(t *testing.T) {
	t.Run("optional", func(t *testing.T) {
		rule := forms.PhoneRule(false)
		assert.Empty(t, rule(""))
		assert.Empty(t, rule("0123456789"))
		assert.Empty(t, rule("012345678901234"))
		assert.NotEmpty(t, rule("123"))
		assert.NotEmpty(t, rule("0123456789012345"))
		assert.NotEmpty(t, rule("+2341234567890"))
	})

	t.Run("required", func(t *testing.T) {
		rule := forms.PhoneRule(true)
		assert.Equal(t, "Phone number is required", rule(""))
		assert.Empty(t, rule("0123456789"))
	})
}

func TestCheckedRule(t *testing.T) {
	rule := forms.CheckedRule("You must agree to the terms and conditions")
	for _, v := range []string{"true", "on", "1", "ON", "True"} {
		assert.Empty(t, rule(v), "value %q should count as checked", v)
	}
	for _, v := range []string{"", "false", "0", "yes"} {
		assert.Equal(t, "You must agree to the terms and conditions", rule(v))
	}
}

func TestFormValidate(t *testing.T) {
	t.Run("payment form aggregates errors in field order", func(t *testing.T) {
		errs := forms.PaymentForm().Validate(map[string]string{
			"first_name": "",
			"last_name":  "X",
			"terms":      "false",
		})
		require.Len(t, errs, 3)
		assert.Equal(t, "first_name", errs[0].Field)
		assert.Equal(t, "First name is required", errs[0].Message)
		assert.Equal(t, "last_name", errs[1].Field)
		assert.Equal(t, "Last name must be at least 2 characters", errs[1].Message)
		assert.Equal(t, "terms", errs[2].Field)
	})

	t.Run("valid payment form has no errors", func(t *testing.T) {
		errs := forms.PaymentForm().Validate(map[string]string{
			"first_name": "John",
			"last_name":  "Doe",
			"terms":      "on",
		})
		assert.Empty(t, errs)
	})

	t.Run("contact form treats phone as optional", func(t *testing.T) {
		errs := forms.ContactForm().Validate(map[string]string{
			"name":    "Jane Doe",
			"email":   "jane@example.com",
			"phone":   "",
			"message": "Hello, I would like a quote.",
		})
		assert.Empty(t, errs)
	})

	t.Run("contact form accepts escaped and punctuated names", func(t *testing.T) {
		form := forms.ContactForm()
		assert.Empty(t, form.ValidateField("name", "O&#39;Brien"))
		assert.Empty(t, form.ValidateField("name", "Ada &lt;b&gt;Obi&lt;/b&gt;"))
		assert.Equal(t, "Name is required", form.ValidateField("name", "   "))

		// payment names stay letters-only
		assert.Equal(t, "First name can only contain letters and spaces",
			forms.PaymentForm().ValidateField("first_name", "O&#39;Brien"))
	})

	t.Run("ValidateField hits the registered rule", func(t *testing.T) {
		form := forms.ContactForm()
		assert.Equal(t, "Name is required", form.ValidateField("name", ""))
		assert.Empty(t, form.ValidateField("unknown_field", "anything"))
	})
}
