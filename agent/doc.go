// Package agent implements huddle's agent abstraction as a tagged-variant
// design: one concrete Agent type carrying static profile metadata, a
// guarded conversation history, and a pluggable respond capability. The
// built-in personas (Architect, Devil's Advocate, Historian, Scribe) are
// data, not subtypes; a provider-backed variant is constructed the same way
// with a model.Model behind the respond slot.
package agent
