// /home/krylon/go/src/github.com/blicero/mnemosyne/objects/unit/unit.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-03-19 16:40:08 krylon>

//go:generate stringer -type=Unit

// Package unit contains symbolic constants for the units a relative
// reminder offset can be given in.
package unit

import (
	"errors"
	"time"
)

// Unit is the unit of a relative time offset.
type Unit uint8

// The units an offset can be specified in.
const (
	Second Unit = iota
	Minute
	Hour
	Day
)

// ErrInvalidUnit indicates that a given time unit is not among the
// four recognized ones.
var ErrInvalidUnit = errors.New("invalid time unit")

var wireName = [...]string{
	"seconds",
	"minutes",
	"hours",
	"days",
}

// Valid returns true if the receiver is one of the four known units.
func (u Unit) Valid() bool {
	return u <= Day
} // func (u Unit) Valid() bool

// Duration returns the length of one offset unit.
// For an invalid Unit, it returns zero.
func (u Unit) Duration() time.Duration {
	switch u {
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	case Day:
		return time.Hour * 24
	default:
		return 0
	}
} // func (u Unit) Duration() time.Duration

// Wire returns the spelling used in the user interface, e.g. "minutes".
func (u Unit) Wire() string {
	if !u.Valid() {
		return "invalid"
	}

	return wireName[u]
} // func (u Unit) Wire() string

// FromString parses the name of a Unit. It accepts the plural form
// used by the user interface ("minutes"), the singular ("minute"),
// and the initial letter ("m").
func FromString(str string) (Unit, error) {
	switch str {
	case "seconds", "second", "sec", "s":
		return Second, nil
	case "minutes", "minute", "min", "m":
		return Minute, nil
	case "hours", "hour", "h":
		return Hour, nil
	case "days", "day", "d":
		return Day, nil
	default:
		return 0, ErrInvalidUnit
	}
} // func FromString(str string) (Unit, error)
