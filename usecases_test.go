package validations_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dklassen/validations"
)

// Address book domain exercising the full surface: base errors, field
// errors, delegation to a nested validatable value, and a details payload.

// InvalidCharacters reports which characters made a phone number invalid.
type InvalidCharacters struct {
	Characters []rune
}

type Email string

func (e Email) Validate() *validations.Errors[InvalidCharacters] {
	return validations.Apply(
		validations.Ensure[InvalidCharacters]("must contain an @ symbol", func() bool {
			return strings.Contains(string(e), "@")
		}),
	)
}

type PhoneNumber struct {
	AreaCode string
	Number   string
}

func (p PhoneNumber) FullNumber() string {
	return p.AreaCode + "-" + p.Number
}

type AddressBookEntry struct {
	CellNumber *PhoneNumber
	Email      *Email
	HomeNumber *PhoneNumber
	Name       string
}

func (e AddressBookEntry) Validate() *validations.Errors[InvalidCharacters] {
	errs := validations.NewErrors[InvalidCharacters]()

	if e.CellNumber == nil && e.HomeNumber == nil {
		errs.AddError(validations.NewError[InvalidCharacters]("at least one phone number is required"))
	}

	if len(e.Name) == 0 {
		errs.AddFieldError("name", validations.NewError[InvalidCharacters]("can't be blank"))
	}

	if e.Email != nil {
		if fieldErrs := e.Email.Validate(); fieldErrs != nil {
			errs.SetFieldErrors("email", fieldErrs)
		}
	}

	numbersToCheck := []struct {
		field  string
		number *PhoneNumber
	}{
		{"home_number", e.HomeNumber},
		{"cell_number", e.CellNumber},
	}

	for _, check := range numbersToCheck {
		if check.number == nil {
			continue
		}

		if invalid := nonDigits(check.number.FullNumber()); len(invalid) > 0 {
			errs.AddFieldError(check.field, validations.WithDetails(
				"has invalid characters",
				InvalidCharacters{Characters: invalid},
			))
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

var _ validations.Validator[InvalidCharacters] = AddressBookEntry{}

// nonDigits returns every non-digit character of the number, in order of
// occurrence, ignoring the dash separators.
func nonDigits(number string) []rune {
	stripped := strings.ReplaceAll(number, "-", "")
	return lo.Filter([]rune(stripped), func(r rune, _ int) bool {
		return !unicode.IsDigit(r)
	})
}

func email(s string) *Email {
	e := Email(s)
	return &e
}

func TestAddressBookEntry_Valid(t *testing.T) {
	entry := AddressBookEntry{
		Email: email("rcohle@dps.la.gov"),
		HomeNumber: &PhoneNumber{
			AreaCode: "555",
			Number:   "555-5555",
		},
		Name: "Rust Cohle",
	}

	assert.Nil(t, entry.Validate())
}

func TestAddressBookEntry_BaseError(t *testing.T) {
	entry := AddressBookEntry{
		Email: email("rcohle@dps.la.gov"),
		Name:  "Rust Cohle",
	}

	errs := entry.Validate()

	require.NotNil(t, errs)
	require.NotEmpty(t, errs.Base())
	assert.Equal(t, "at least one phone number is required", errs.Base()[0].Message())
}

func TestAddressBookEntry_FieldError(t *testing.T) {
	entry := AddressBookEntry{
		Email: email("rcohle@dps.la.gov"),
		HomeNumber: &PhoneNumber{
			AreaCode: "555",
			Number:   "555-5555",
		},
		Name: "",
	}

	errs := entry.Validate()

	require.NotNil(t, errs)
	name, ok := errs.Field("name")
	require.True(t, ok)
	require.NotEmpty(t, name.Base())
	assert.Equal(t, "can't be blank", name.Base()[0].Message())
}

func TestAddressBookEntry_DelegatesToField(t *testing.T) {
	entry := AddressBookEntry{
		Email: email("rcohle"),
		HomeNumber: &PhoneNumber{
			AreaCode: "555",
			Number:   "555-5555",
		},
		Name: "Rust Cohle",
	}

	errs := entry.Validate()

	require.NotNil(t, errs)
	emailErrs, ok := errs.Field("email")
	require.True(t, ok)
	require.NotEmpty(t, emailErrs.Base())
	assert.Equal(t, "must contain an @ symbol", emailErrs.Base()[0].Message())
}

func TestAddressBookEntry_DetailsPayload(t *testing.T) {
	entry := AddressBookEntry{
		Email: email("rcohle@dps.la.gov"),
		HomeNumber: &PhoneNumber{
			AreaCode: "555",
			Number:   "x55-55t5",
		},
		Name: "",
	}

	errs := entry.Validate()

	require.NotNil(t, errs)
	homeNumber, ok := errs.Field("home_number")
	require.True(t, ok)
	require.NotEmpty(t, homeNumber.Base())

	details, ok := homeNumber.Base()[0].Details()
	require.True(t, ok)
	assert.Equal(t, []rune{'x', 't'}, details.Characters)
}

func TestAddressBookEntry_DetailsPreserveOrderAndDuplicates(t *testing.T) {
	entry := AddressBookEntry{
		HomeNumber: &PhoneNumber{
			AreaCode: "x5t",
			Number:   "55x-5t55",
		},
		Name: "Rust Cohle",
	}

	errs := entry.Validate()

	require.NotNil(t, errs)
	homeNumber, ok := errs.Field("home_number")
	require.True(t, ok)
	require.NotEmpty(t, homeNumber.Base())

	details, ok := homeNumber.Base()[0].Details()
	require.True(t, ok)
	assert.Equal(t, []rune{'x', 't', 'x', 't'}, details.Characters)
}

func TestAddressBookEntry_AccumulatesAllViolations(t *testing.T) {
	entry := AddressBookEntry{
		Email: email("rcohle"),
		Name:  "",
	}

	errs := entry.Validate()

	require.NotNil(t, errs)
	assert.NotEmpty(t, errs.Base())

	_, hasName := errs.Field("name")
	assert.True(t, hasName)

	_, hasEmail := errs.Field("email")
	assert.True(t, hasEmail)
}
