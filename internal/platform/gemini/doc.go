// Package gemini implements the generation.Generator interface using
// Google's Gemini API. A fresh client is created for every request from the
// caller-supplied credential; nothing about the credential or the client is
// cached between requests.
package gemini
