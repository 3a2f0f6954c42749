package validations

import (
	"fmt"
	"regexp"
	"strings"
)

// Numeric restricts rule constructors like Min and Max to built-in number
// types and their derivatives.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// checkRule records a fixed error when its predicate fails. An empty field
// name means the error applies to the value as a whole.
type checkRule[D any] struct {
	field string
	check func() bool
	err   *Error[D]
}

func (r checkRule[D]) apply(errs *Errors[D]) {
	if r.check() {
		return
	}
	if r.field == "" {
		errs.AddError(r.err)
		return
	}
	errs.AddFieldError(r.field, r.err)
}

// delegateRule runs a field's own validation and installs the result
// wholesale via SetFieldErrors.
type delegateRule[D any] struct {
	field    string
	validate func() *Errors[D]
}

func (r delegateRule[D]) apply(errs *Errors[D]) {
	nested := r.validate()
	if nested == nil || nested.IsEmpty() {
		return
	}
	errs.SetFieldErrors(r.field, nested)
}

// Ensure builds a rule from an arbitrary predicate. The error is recorded as
// a base error when the predicate returns false.
func Ensure[D any](message string, check func() bool) Rule[D] {
	return checkRule[D]{check: check, err: NewError[D](message)}
}

// EnsureField builds a rule from an arbitrary predicate, recording the error
// against the named field when the predicate returns false.
func EnsureField[D any](field, message string, check func() bool) Rule[D] {
	return checkRule[D]{field: field, check: check, err: NewError[D](message)}
}

// NotBlank requires that the field's value is not empty after trimming
// whitespace.
func NotBlank[D any](field, value string) Rule[D] {
	return checkRule[D]{
		field: field,
		check: func() bool { return strings.TrimSpace(value) != "" },
		err:   NewError[D]("can't be blank"),
	}
}

// MinLen requires that the field's value is at least min bytes long.
func MinLen[D any](field, value string, min int) Rule[D] {
	return checkRule[D]{
		field: field,
		check: func() bool { return len(value) >= min },
		err:   NewError[D](fmt.Sprintf("must be at least %d characters long", min)),
	}
}

// MaxLen requires that the field's value is at most max bytes long.
func MaxLen[D any](field, value string, max int) Rule[D] {
	return checkRule[D]{
		field: field,
		check: func() bool { return len(value) <= max },
		err:   NewError[D](fmt.Sprintf("must be at most %d characters long", max)),
	}
}

// Matches requires that the field's value matches the pattern.
func Matches[D any](field, value string, pattern *regexp.Regexp) Rule[D] {
	return checkRule[D]{
		field: field,
		check: func() bool { return pattern.MatchString(value) },
		err:   NewError[D]("is invalid"),
	}
}

// Min requires that the field's numeric value is at least min.
func Min[D any, N Numeric](field string, value, min N) Rule[D] {
	return checkRule[D]{
		field: field,
		check: func() bool { return value >= min },
		err:   NewError[D](fmt.Sprintf("must be at least %v", min)),
	}
}

// Max requires that the field's numeric value is at most max.
func Max[D any, N Numeric](field string, value, max N) Rule[D] {
	return checkRule[D]{
		field: field,
		check: func() bool { return value <= max },
		err:   NewError[D](fmt.Sprintf("must be at most %v", max)),
	}
}

// ValidField delegates to the field value's own Validate and, on failure,
// installs the returned Errors under the field name. A nil validator is
// treated as valid, so optional fields can be passed through unconditionally:
//
//	rules := []validations.Rule[InvalidCharacters]{
//	    validations.ValidField("email", entry.Email),
//	}
//
// Callers holding a typed nil pointer inside a non-nil interface value must
// guard for it themselves before building the rule.
func ValidField[D any](field string, v Validator[D]) Rule[D] {
	return delegateRule[D]{
		field: field,
		validate: func() *Errors[D] {
			if v == nil {
				return nil
			}
			return v.Validate()
		},
	}
}
