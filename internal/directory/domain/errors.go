package domain

// FieldError is a single field-scoped constraint violation reported back to
// the caller. Field names use the camelCase identifiers the presentation
// layer binds to (postCode, countryCode, ...), not the store column names.
type FieldError struct {
	Field   string
	Message string
}

// FieldGeneral is the pseudo-field for failures that are not attributable
// to a single input field (infrastructure errors, missing target rows).
const FieldGeneral = "general"
