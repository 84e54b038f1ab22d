package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreateLeadInputAccepts(t *testing.T) {
	assert.Empty(t, ValidateCreateLeadInput(validInput()))

	// A bare linkedin.com/in path without scheme is fine.
	input := validInput()
	input.LinkedIn = "linkedin.com/in/mariasilva"
	assert.Empty(t, ValidateCreateLeadInput(input))

	// Country and notes are optional.
	input = validInput()
	input.Country = ""
	input.Notes = ""
	assert.Empty(t, ValidateCreateLeadInput(input))
}

func TestValidateCreateLeadInputRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateLeadInput)
		field  string
	}{
		{"missing first name", func(i *CreateLeadInput) { i.FirstName = "  " }, "firstName"},
		{"short first name", func(i *CreateLeadInput) { i.FirstName = "A" }, "firstName"},
		{"missing last name", func(i *CreateLeadInput) { i.LastName = "" }, "lastName"},
		{"invalid email", func(i *CreateLeadInput) { i.Email = "nope" }, "email"},
		{"missing email", func(i *CreateLeadInput) { i.Email = "" }, "email"},
		{"missing linkedin", func(i *CreateLeadInput) { i.LinkedIn = "" }, "linkedIn"},
		{"garbage linkedin", func(i *CreateLeadInput) { i.LinkedIn = "not a url" }, "linkedIn"},
		{"no visa types", func(i *CreateLeadInput) { i.VisaTypes = []string{} }, "visaTypes"},
		{"unknown visa type", func(i *CreateLeadInput) { i.VisaTypes = []string{"H-1B"} }, "visaTypes"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			errs := ValidateCreateLeadInput(input)

			assert.NotEmpty(t, errs)
			found := false
			for _, e := range errs {
				if e.Field == tc.field {
					found = true
				}
			}
			assert.True(t, found, "expected an error on field %s, got %v", tc.field, errs)
		})
	}
}
