// Package formatter parses raw generated text into the tabular structure
// expected by the requested content type. Parsing is a fixed, deterministic
// marker grammar per content type: lines are grouped into row records by
// recognized markers, and any line that matches no marker is appended to the
// previous row's notes field instead of being dropped.
package formatter
