// Package testutil provides shared fixtures for huddle's tests:
// a deterministic clock, sequential id sources, and recording stubs for the
// external collaborators.
package testutil
