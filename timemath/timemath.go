// /home/krylon/go/src/github.com/blicero/mnemosyne/timemath/timemath.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-10 21:17:46 krylon>

// Package timemath provides the handful of pure time computations the
// application is built around: turning a relative offset into an
// absolute due time, and rendering the time left until - or elapsed
// since - a due time into a compact human-readable string.
package timemath

import (
	"fmt"
	"strings"
	"time"

	"github.com/blicero/mnemosyne/objects/unit"
)

// ComputeDue returns now + value offset units.
// It returns unit.ErrInvalidUnit if u is not one of the four
// recognized units, and an error if value is not positive; the caller
// must not create a Reminder in either case.
func ComputeDue(now time.Time, value int64, u unit.Unit) (time.Time, error) {
	if !u.Valid() {
		return time.Time{}, unit.ErrInvalidUnit
	} else if value < 1 {
		return time.Time{}, fmt.Errorf("Offset value must be positive, not %d",
			value)
	}

	return now.Add(time.Duration(value) * u.Duration()), nil
} // func ComputeDue(now time.Time, value int64, u unit.Unit) (time.Time, error)

// FormatRemaining renders the time left until a due point into a
// string like "2d 3h 5m 10s". Zero-valued leading components are
// omitted, seconds are always included when days, hours and minutes
// are all zero. A delta of exactly zero yields "Due NOW!", a negative
// delta "Overdue by ...!".
func FormatRemaining(delta time.Duration) string {
	if delta == 0 {
		return "Due NOW!"
	} else if delta < 0 {
		return fmt.Sprintf("Overdue by %s!", dhms(-delta))
	}

	return dhms(delta)
} // func FormatRemaining(delta time.Duration) string

// dhms breaks a positive Duration down into days, hours, minutes and
// seconds. Sub-second remainders are discarded.
func dhms(d time.Duration) string {
	var (
		seconds = int64(d / time.Second)
		parts   = make([]string, 0, 4)
	)

	var days, hours, minutes int64

	days = seconds / 86400
	seconds %= 86400
	hours = seconds / 3600
	seconds %= 3600
	minutes = seconds / 60
	seconds %= 60

	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
} // func dhms(d time.Duration) string
