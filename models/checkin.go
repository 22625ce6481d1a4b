// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Mood boundaries of the self-reported wellness scale (0 = worst, 5 = best).
const (
	MinMood = 0
	MaxMood = 5
)

// CheckIn is a single mood/journal entry owned by exactly one user.
// Check-ins are immutable once created; they can only be deleted by the owner.
type CheckIn struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"user_id"`
	Mood    int       `json:"mood"`
	Journal string    `json:"journal"`
	Date    time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the CheckIn model.
func (c CheckIn) TableName() string {
	return "check_ins"
}
