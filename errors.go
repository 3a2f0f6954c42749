package validations

// Error is an individual validation error. It pairs a human-readable message
// with an optional details value of type D carrying structured context about
// the failure (for example, which characters in the input were invalid).
//
// The message is fixed at construction time; details may be attached at
// construction via WithDetails or afterwards via SetDetails.
type Error[D any] struct {
	message string
	details *D
}

// NewError constructs a validation error with no details attached.
func NewError[D any](message string) *Error[D] {
	return &Error[D]{message: message}
}

// WithDetails constructs a validation error with details attached.
//
// Example:
//
//	err := validations.WithDetails("has invalid characters", InvalidCharacters{
//	    Characters: []rune{'x', 't'},
//	})
func WithDetails[D any](message string, details D) *Error[D] {
	return &Error[D]{message: message, details: &details}
}

// Message returns the human-readable message explaining the error.
func (e *Error[D]) Message() string {
	return e.message
}

// Details returns the contextual details attached to the error, if any.
func (e *Error[D]) Details() (D, bool) {
	if e.details == nil {
		var zero D
		return zero, false
	}
	return *e.details, true
}

// SetDetails attaches details to the error, discarding any previously set.
func (e *Error[D]) SetDetails(details D) {
	e.details = &details
}

// Error renders the message verbatim, satisfying the standard error interface.
func (e *Error[D]) Error() string {
	return e.message
}

// Errors is a collection of validation errors for a single invalid value.
// It holds base errors, which apply to the value as a whole, and field
// errors, which apply to one named field each. A field's errors are
// themselves an Errors value, so reports nest to mirror the shape of the
// value being validated.
//
// An Errors instance belongs to the validation pass that created it. Methods
// mutate only the receiver and never fail; building an error report is not
// itself a fallible operation.
type Errors[D any] struct {
	base   []*Error[D]
	fields map[string]*Errors[D]
}

// NewErrors constructs an empty Errors value.
func NewErrors[D any]() *Errors[D] {
	return &Errors[D]{}
}

// AddError records an error that is not specific to any field. Errors are
// kept in the order they were added.
func (e *Errors[D]) AddError(err *Error[D]) {
	e.base = append(e.base, err)
}

// AddFieldError records an error against the named field. The nested Errors
// for the field is created on first use; repeated calls for the same field
// accumulate into it, including into a tree previously installed via
// SetFieldErrors.
func (e *Errors[D]) AddFieldError(field string, err *Error[D]) {
	if e.fields == nil {
		e.fields = make(map[string]*Errors[D])
	}
	nested, ok := e.fields[field]
	if !ok {
		nested = NewErrors[D]()
		e.fields[field] = nested
	}
	nested.AddError(err)
}

// SetFieldErrors installs errs as the named field's errors, replacing any
// errors previously recorded for that field.
//
// This is the delegation hook: when a field's type is itself validatable,
// the parent validates the field and hands the resulting Errors straight to
// SetFieldErrors.
//
// Example:
//
//	if errs := entry.Email.Validate(); errs != nil {
//	    errors.SetFieldErrors("email", errs)
//	}
func (e *Errors[D]) SetFieldErrors(field string, errs *Errors[D]) {
	if e.fields == nil {
		e.fields = make(map[string]*Errors[D])
	}
	e.fields[field] = errs
}

// Base returns the non-field-specific errors in insertion order, or nil if
// none were added.
func (e *Errors[D]) Base() []*Error[D] {
	return e.base
}

// Field returns the Errors recorded for the named field. The boolean is
// false if no errors were ever recorded for that field. Lookup is by exact
// name; there is no path traversal into nested fields.
func (e *Errors[D]) Field(field string) (*Errors[D], bool) {
	nested, ok := e.fields[field]
	return nested, ok
}

// IsEmpty reports whether no base errors and no field entries exist. It does
// not recurse: a field entry whose nested Errors is empty still counts as
// present.
func (e *Errors[D]) IsEmpty() bool {
	return len(e.base) == 0 && len(e.fields) == 0
}

// Error satisfies the standard error interface, letting an Errors value
// travel through error-returning call chains. Callers should inspect the
// value via Base and Field rather than parse this string.
func (e *Errors[D]) Error() string {
	return "validation failed"
}

// SimpleError is an Error with no custom details, for validations that need
// only a message.
type SimpleError = Error[struct{}]

// SimpleErrors is an Errors with no custom details.
type SimpleErrors = Errors[struct{}]

// NewSimpleError constructs a detail-free validation error.
func NewSimpleError(message string) *SimpleError {
	return NewError[struct{}](message)
}

// NewSimpleErrors constructs an empty detail-free Errors value.
func NewSimpleErrors() *SimpleErrors {
	return NewErrors[struct{}]()
}
