package useragent

import "errors"

var (
	// ErrRulesUnavailable is returned when the rules file cannot be read.
	ErrRulesUnavailable = errors.New("cannot read user agent rules file")

	// ErrInvalidRules is returned when the rules document is malformed or
	// missing one of the five required category sections.
	ErrInvalidRules = errors.New("invalid user agent rules document")

	// ErrEmptyPattern is returned when a rule entry has no regex.
	ErrEmptyPattern = errors.New("rule entry is missing a regex")

	// ErrInvalidPattern is returned when a rule regex does not compile.
	ErrInvalidPattern = errors.New("invalid rule regex")

	// ErrNotInitialized is returned when the shared rule table could not be
	// built; it always wraps the underlying load failure.
	ErrNotInitialized = errors.New("user agent rule table is not initialized")
)
