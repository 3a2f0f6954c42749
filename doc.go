// Package validations provides an interface for checking the validity of
// arbitrary values and a structured container for reporting why a value is
// invalid.
//
// The Validator interface exposes a single Validate method that returns nil
// for a valid value, or an Errors describing every violation found. Errors
// holds both base errors, which apply to the value as a whole, and per-field
// errors, which nest recursively to mirror the shape of the value. Each
// individual Error carries a human-readable message and an optional
// caller-chosen details payload.
//
// Types whose fields are themselves validatable can delegate: validate the
// field and hand the result to Errors.SetFieldErrors. This keeps domain
// validation decoupled from construction and deserialization, at the cost
// that a parent which never delegates silently treats the field as valid.
//
// The Rule constructors offer a declarative shortcut for common checks;
// Apply evaluates a rule set and aggregates the failures into one Errors
// value.
package validations
