// Package hub orchestrates asynchronous task execution across registered
// agents.
//
// The Hub keeps two registries: agents by id and tasks by id. Submitting a
// task records it as pending before any work starts, so every task is
// discoverable for its whole lifetime, including after failure. Execution
// is serialized per agent: one task runs against a given agent at a time
// and further submissions for that agent wait in submission order, which
// keeps each agent's conversation history consistent.
//
// A task always reaches a terminal state. Agent errors and panics surface
// as a failed task with an error message rather than as a lost record, and
// the end timestamp is written on every exit path.
package hub
