// Package session implements the collaborative workspace registry: the
// Session with its participant map, invite link and budget gate, and the
// Manager that creates, joins, leaves and ends sessions.
//
// A Session owns its participants and its synchronization-engine handle but
// only references the budget ledger, which may be shared with other
// consumers of the same account. Once ended a session is terminal: reads
// keep working, mutations become no-ops.
package session
