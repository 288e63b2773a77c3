// /home/krylon/go/src/github.com/blicero/mnemosyne/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-03-12 14:48:22 krylon>

// Package logdomain provides symbolic constants to identify the
// parts of the application that do logging.
package logdomain

//go:generate stringer -type=ID

// ID identifies a log source.
type ID uint8

// These constants identify the various log sources.
const (
	Common ID = iota
	Store
	Engine
	Backend
	UI
)

// AllDomains returns a slice of all valid log sources.
func AllDomains() []ID {
	return []ID{
		Common,
		Store,
		Engine,
		Backend,
		UI,
	}
} // func AllDomains() []ID
