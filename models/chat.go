// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ChatRole tags an entry of a conversation context.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry of a user's in-memory conversation context.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatReply is the outcome of a single chatbot exchange.
type ChatReply struct {
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
}

// SuggestedQuestions holds conversation starters picked for the mood of the
// user's latest check-in.
type SuggestedQuestions struct {
	LatestMood         int      `json:"latest_mood"`
	SuggestedQuestions []string `json:"suggested_questions"`
	Tip                string   `json:"tip"`
}
