// /home/krylon/go/src/github.com/blicero/mnemosyne/objects/view.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-04 18:40:02 krylon>

package objects

//go:generate ffjson view.go

// View is the result of a single evaluation pass over the reminder
// collection, ready for display.
//
// Active holds the Pending and Due Reminders, sorted by due time in
// ascending order. Completed holds the completed ones, most recently
// completed first. BecameDue is the subset of Active that crossed
// from Pending to Due during this very pass; a Reminder shows up
// there exactly once per crossing, no matter how often the evaluation
// runs afterwards. Dismissed Reminders appear nowhere.
//
// The slices hold copies, so a caller can render them at leisure
// without holding up the engine.
type View struct {
	Active    []Reminder
	Completed []Reminder
	BecameDue []Reminder
}

// IsEmpty returns true if the View contains no visible Reminders at all.
func (v *View) IsEmpty() bool {
	return len(v.Active) == 0 && len(v.Completed) == 0
} // func (v *View) IsEmpty() bool
