// /home/krylon/go/src/github.com/blicero/mnemosyne/objects/notification.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-03-12 15:10:33 krylon>

// Package objects provides the data types used by the application.
package objects

import "time"

// Notification is the common interface for items the user should be
// notified about.
type Notification interface {
	Due() time.Time
	IsDue() bool
	Payload() (string, string)
}
