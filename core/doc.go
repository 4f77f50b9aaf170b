// Package core provides the foundational domain types and collaborator
// interfaces used across huddle. It defines:
//
//   - Participants, Messages and Tasks (passive records, plus the task
//     lifecycle states)
//   - The Agent contract (a named capability unit with conversation history)
//   - Narrow interfaces for the external collaborators (budget ledger,
//     synchronization engine)
//   - Injectable primitives for identity and time so orchestration logic
//     never reads ambient randomness or wall clocks
//
// The package intentionally keeps implementation concerns (registries,
// dispatch, provider adapters, persistence) out of scope; those live in the
// session, hub, ledger, collab and model packages.
package core
