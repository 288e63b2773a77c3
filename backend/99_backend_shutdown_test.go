// /home/krylon/go/src/github.com/blicero/mnemosyne/backend/99_backend_shutdown_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-03-26 18:04:19 krylon>

package backend

import "testing"

func TestBanish(t *testing.T) {
	if back == nil {
		t.SkipNow()
	} else if !back.IsAlive() {
		t.SkipNow()
	}

	back.Banish()

	if back.IsAlive() {
		t.Error("Daemon is still alive after being banished")
	}
} // func TestBanish(t *testing.T)
