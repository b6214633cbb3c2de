// Package score talks to an OpenAI-compatible chat completions endpoint
// and turns a code fragment into a relevance score.
//
// # Protocol
//
// Each request carries two messages: a fixed system prompt that frames the
// model as an evaluator and embeds the user's question, and a user message
// containing the fragment text. The response is expected to be a single
// decimal number between 0 and 1; max_tokens is kept small since nothing
// beyond the number is wanted.
//
// # Validation
//
// The first choice's message content is parsed as a float and rejected if
// it is not a number or falls outside [0, 1]. A model that answers in
// prose fails scoring rather than producing a garbage value.
//
// # Errors
//
// Transport failures, non-2xx statuses, malformed bodies, and invalid
// answers all wrap ErrScore. The caller aborts the run on the first
// scoring error; there are no retries.
package score
