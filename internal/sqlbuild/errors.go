package sqlbuild

import "errors"

var (
	// ErrMissingColumns indicates a CREATE intent with no recognizable
	// column list.
	ErrMissingColumns = errors.New("creating a table requires a column list")

	// ErrMissingValues indicates an INSERT intent with no recognizable
	// values phrase.
	ErrMissingValues = errors.New("inserting requires a values phrase, e.g. \"values: alice, 30\"")

	// ErrMissingSetClause indicates an UPDATE intent with no
	// recognizable "set X to Y" phrase.
	ErrMissingSetClause = errors.New("updating requires a phrase like \"set role to admin\"")

	// ErrUnsafeDelete indicates a DELETE intent with no conditions and
	// no explicit "all" marker in the source text.
	ErrUnsafeDelete = errors.New("refusing to delete without a condition; say \"all\" to delete every row")

	// ErrUnknownAction indicates an intent whose action has no
	// construction rule.
	ErrUnknownAction = errors.New("no construction rule for action")
)
