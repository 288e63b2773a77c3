// /home/krylon/go/src/github.com/blicero/mnemosyne/objects/reminder.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-04 18:31:17 krylon>

package objects

import (
	"fmt"
	"time"

	"github.com/blicero/mnemosyne/common"
	"github.com/blicero/mnemosyne/objects/status"
)

//go:generate ffjson reminder.go

// Reminder is ... a reminder: a task the user wants to be nagged
// about once a given point in time has passed.
//
// ID, Task, DueTime and CreatedAt are fixed at creation; only Status
// and CompletedAt change afterwards. CompletedAt is non-nil exactly
// while Status is Completed.
type Reminder struct {
	ID          string        `json:"id"`
	Task        string        `json:"task"`
	DueTime     time.Time     `json:"due_time"`
	CreatedAt   time.Time     `json:"created_at"`
	Status      status.Status `json:"status"`
	CompletedAt *time.Time    `json:"completed_at"`
}

// Due returns the Reminder's due time.
func (r *Reminder) Due() time.Time {
	return r.DueTime
} // func (r *Reminder) Due() time.Time

// IsDue returns true if the Reminder's due time has passed.
func (r *Reminder) IsDue() bool {
	return !r.DueTime.After(time.Now())
} // func (r *Reminder) IsDue() bool

// Remaining returns the time left until the due time, relative to ref.
// For an overdue Reminder the result is negative.
func (r *Reminder) Remaining(ref time.Time) time.Duration {
	return r.DueTime.Sub(ref)
} // func (r *Reminder) Remaining(ref time.Time) time.Duration

// Payload returns the Reminder's task and a line saying when it was due.
func (r *Reminder) Payload() (string, string) {
	return r.Task, fmt.Sprintf("Due at %s",
		r.DueTime.Format(common.TimestampFormat))
} // func (r *Reminder) Payload() (string, string)

// CompletionStamp returns the time the Reminder was completed.
// If CompletedAt is absent - which the lifecycle rules out for a
// Completed Reminder, but a hand-edited file might contain - it falls
// back to the creation time.
func (r *Reminder) CompletionStamp() time.Time {
	if r.CompletedAt != nil {
		return *r.CompletedAt
	}

	return r.CreatedAt
} // func (r *Reminder) CompletionStamp() time.Time

// Equal compares two Reminders field by field. Timestamps are compared
// with time.Time.Equal, so a serialization round trip does not break
// equality.
func (r *Reminder) Equal(other *Reminder) bool {
	if r.ID != other.ID ||
		r.Task != other.Task ||
		r.Status != other.Status ||
		!r.DueTime.Equal(other.DueTime) ||
		!r.CreatedAt.Equal(other.CreatedAt) {
		return false
	}

	switch {
	case r.CompletedAt == nil:
		return other.CompletedAt == nil
	case other.CompletedAt == nil:
		return false
	default:
		return r.CompletedAt.Equal(*other.CompletedAt)
	}
} // func (r *Reminder) Equal(other *Reminder) bool
