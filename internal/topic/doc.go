// Package topic provides the static, ordered catalog of topic definitions
// and read-only lookup over it. The catalog is pure data: adding a topic is
// a data-only change with no accompanying code path change.
package topic
