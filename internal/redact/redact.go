// Package redact provides utilities for scrubbing credentials from strings
// before they are logged or returned in error responses. The generation
// credential passes through this service on every request and upstream error
// messages can echo it back (for example inside a request URL), so every
// error string crosses this package before reaching a log line or a client.
package redact

import "regexp"

// Placeholder substituted for anything that looks like a credential.
const Placeholder = "[REDACTED_CREDENTIAL]"

// Precompiled credential patterns.
var (
	// URL query parameter style: ...?key=AIzaSyABC123
	urlKeyRegex = regexp.MustCompile(`(?i)([?&](?:api[_-]?key|key|token)=)[A-Za-z0-9_\-.~]{8,}`)

	// Assignment style: api_key: "...", token=...
	assignmentRegex = regexp.MustCompile(`(?i)(api[_-]?key|token|secret|credential)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	// Authorization headers: "Bearer eyJ..." or "x-goog-api-key: ..."
	bearerRegex = regexp.MustCompile(`(?i)(bearer\s+|x-goog-api-key:\s*)[A-Za-z0-9_\-.~+/]{8,}`)

	// Google API key literal: the credential shape Gemini issues.
	googleKeyRegex = regexp.MustCompile(`AIza[A-Za-z0-9_\-]{20,}`)
)

var patterns = []*regexp.Regexp{urlKeyRegex, assignmentRegex, bearerRegex, googleKeyRegex}

// String redacts anything credential-shaped from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		result = pattern.ReplaceAllString(result, "${1}"+Placeholder)
	}

	return result
}

// Error redacts credentials from an error's Error() output.
// Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
