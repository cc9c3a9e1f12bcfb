package intent

import "errors"

var (
	// ErrUnresolvedIntent indicates no action keyword matched the
	// utterance. Callers decide whether to re-prompt or substitute a
	// default; the extractor never falls back silently.
	ErrUnresolvedIntent = errors.New("could not recognize an action in the request")

	// ErrMissingTable indicates no table-name pattern matched.
	ErrMissingTable = errors.New("could not find a table name in the request")
)
