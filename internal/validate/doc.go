package validate

// Package validate checks raw form fields and coerces them into a
// model.FormInput. Validation is deterministic and has no side effects, so
// the form can re-run it on every keystroke. Failures are field-keyed and
// carry sentinel causes for tests and logs.
