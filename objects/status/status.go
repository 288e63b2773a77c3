// /home/krylon/go/src/github.com/blicero/mnemosyne/objects/status/status.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-04 17:22:40 krylon>

//go:generate stringer -type=Status

// Package status contains symbolic constants to describe where in its
// lifecycle a Reminder currently is.
package status

import "fmt"

// Status describes the lifecycle state of a Reminder.
type Status uint8

// Pending means the Reminder's due time has not arrived yet.
// Due means the due time has passed without the task being completed.
// Completed means the user has marked the task as done.
// Dismissed means the user has removed the Reminder from view; it is
// the terminal state, no transition leads out of it.
const (
	Pending Status = iota
	Due
	Completed
	Dismissed
)

// The spellings used in the reminder file.
var wireName = [...]string{
	"pending",
	"due",
	"completed",
	"dismissed",
}

// Valid returns true if the receiver is one of the four known states.
func (s Status) Valid() bool {
	return s <= Dismissed
} // func (s Status) Valid() bool

// Active returns true if a Reminder in this state is still waiting to
// be dealt with, i.e. if it is Pending or Due.
func (s Status) Active() bool {
	return s == Pending || s == Due
} // func (s Status) Active() bool

// FromString parses the textual representation of a Status as it
// appears in the reminder file.
func FromString(str string) (Status, error) {
	for idx, name := range wireName {
		if str == name {
			return Status(idx), nil
		}
	}

	return 0, fmt.Errorf("Invalid Status %q", str)
} // func FromString(str string) (Status, error)

// MarshalJSON implements the json.Marshaler interface.
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("Invalid Status %d", s)
	}

	return []byte(`"` + wireName[s] + `"`), nil
} // func (s Status) MarshalJSON() ([]byte, error)

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Status) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("Invalid Status literal %s", data)
	}

	var (
		err error
		val Status
	)

	if val, err = FromString(string(data[1 : len(data)-1])); err != nil {
		return err
	}

	*s = val
	return nil
} // func (s *Status) UnmarshalJSON(data []byte) error
