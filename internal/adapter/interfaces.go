// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the generative text backend
// used by the chatbot.
//
// The primary abstraction is [TextGenerator], which decouples the chat
// service from the inference protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPTextGenerator]) speaking the Hugging Face
// inference API format.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the
// backend's wording (e.g. [ErrModelLoading] for 503).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/text_generator_mock.go -package=mock

// GenerationParams are the sampling settings sent with every prompt.
type GenerationParams struct {
	// MaxLength bounds the length of the completion in tokens.
	MaxLength int
	// Temperature scales the randomness of sampling.
	Temperature float64
	// TopP is the nucleus sampling threshold.
	TopP float64
	// DoSample turns sampling on; greedy decoding is used otherwise.
	DoSample bool
}

// TextGenerator completes a prompt with generated text. Implementations make
// a single attempt and return an error for any transport failure, non-2xx
// status or empty completion.
type TextGenerator interface {
	// Generate returns the raw generated text for prompt. Depending on the
	// backend the prompt itself may be echoed at the start of the result.
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)
}
