package validations

// Validator is a validatable type. Validate runs the type's validation rules
// and returns nil for a valid value, or a non-empty Errors describing every
// violation found in that pass.
//
// Implementations should accumulate all violations rather than stop at the
// first, so callers see the complete picture. Validation failures are always
// returned as values, never raised via panic.
//
// Each implementation fixes its own details type D; unrelated types in the
// same program are free to choose different ones. Types that need no details
// can satisfy Validator[struct{}] and work with SimpleErrors.
type Validator[D any] interface {
	Validate() *Errors[D]
}

// Rule is a single validation check that records its failure into an Errors
// value. Rules are built with the constructors in rules.go and evaluated
// together with Apply.
type Rule[D any] interface {
	apply(errs *Errors[D])
}

// Apply evaluates every rule and aggregates the failures into one Errors
// value. It returns nil when all rules pass, which makes it usable directly
// as a Validate body:
//
//	func (e AddressBookEntry) Validate() *validations.SimpleErrors {
//	    return validations.Apply(
//	        validations.NotBlank[struct{}]("name", e.Name),
//	        validations.MaxLen[struct{}]("name", e.Name, 80),
//	    )
//	}
func Apply[D any](rules ...Rule[D]) *Errors[D] {
	errs := NewErrors[D]()
	for _, rule := range rules {
		rule.apply(errs)
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
