// Package config loads the YAML run configuration of the volcano CLI.
//
// What:
//
//	A Config names the start valve, the shortest-path strategy, the search
//	tuning knobs (workers, bound) and the log level, plus one or more
//	Scenarios, each an (actors, minutes) pair solved on the same cave.
//
// Why:
//
//	The two reference questions (one actor for 30 minutes, two actors for
//	26) are just scenarios; a file lets users add their own without new
//	flags.
//
// Decoding is strict: unknown keys are errors, so a typo such as "minute:"
// fails loudly instead of silently falling back to a default.
//
// Errors:
//
//	ErrInvalidConfig - a decoded value is out of range (wrapped with the field).
package config
