package story

import "errors"

// Terminal request errors. None of these are retried; each aborts the pipeline
// and surfaces as a plain-text failure body.
var (
	// ErrMalformedRequest means the request body could not be parsed as
	// multipart form data.
	ErrMalformedRequest = errors.New("request body is not valid multipart form data")

	// ErrMissingCredential means no API credential is configured for the
	// selected model, so no provider call can be made.
	ErrMissingCredential = errors.New("server misconfigured: missing LLM API credential")
)
