// Package model defines the provider-agnostic abstraction for the language
// models behind huddle's agents.
//
// Core goals:
//   - One blocking completion call (Complete) over a normalized request
//   - Request/response shapes kept minimal and transport independent
//   - Token usage surfaced so callers can price a call against a budget
//   - Lightweight mocking for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package under model/openai and model/anthropic, so agents remain decoupled
// from vendor SDKs.
package model
