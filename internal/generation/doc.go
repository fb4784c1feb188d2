// Package generation provides the outbound boundary to the external
// text-generation service. It defines the Generator interface, the request
// builder that composes prompts from topic templates and content-type
// instructions, and the error taxonomy callers use to classify failures.
// The concrete Gemini-backed implementation lives in platform/gemini.
package generation
