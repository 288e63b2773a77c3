// /home/krylon/go/src/github.com/blicero/mnemosyne/store/03_store_write_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-12 19:22:37 krylon>

package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/mnemosyne/common"
	"github.com/blicero/mnemosyne/objects"
	"github.com/blicero/mnemosyne/objects/status"
)

// A failing write must be reported to the caller, but the in-memory
// collection stays authoritative: the Reminder is added, retrievable,
// and survives until a later save has a chance to reconcile the file.
func TestSaveWriteFailure(t *testing.T) {
	if st == nil {
		t.SkipNow()
	}

	var (
		err error
		// The store file's parent "directory" is a regular
		// file, so any attempt to write next to it fails.
		parent  = filepath.Join(common.BaseDir, "notadir")
		blocked *Store
	)

	if err = writeFile(parent, "This is a file, not a directory.\n"); err != nil {
		t.Fatalf("Cannot create blocking file %s: %s",
			parent,
			err.Error())
	}

	if blocked, err = NewStore(filepath.Join(parent, "reminders.json")); err != nil {
		t.Fatalf("Cannot create Store: %s",
			err.Error())
	}

	var now = time.Now()
	var r = &objects.Reminder{
		ID:        common.GetUUID(),
		Task:      "Survive a failed write",
		DueTime:   now.Add(time.Minute * 5),
		CreatedAt: now,
		Status:    status.Pending,
	}

	if err = blocked.Add(r); err == nil {
		t.Error("Add with an unwritable store file should report the failed write")
	}

	if cnt := blocked.Count(); cnt != 1 {
		t.Errorf("Reminder should still be in memory after the failed write, Count() = %d",
			cnt)
	} else if res := blocked.Get(r.ID); res == nil {
		t.Error("Reminder is not retrievable after the failed write")
	} else if !res.Equal(r) {
		t.Errorf("Get returned the wrong Reminder after the failed write: %q",
			res.Task)
	}

	// Saving again fails the same way, and the collection is
	// still untouched.
	if err = blocked.Save(); err == nil {
		t.Error("Save to an unwritable path should keep failing")
	} else if cnt := blocked.Count(); cnt != 1 {
		t.Errorf("Failed Save changed the collection size: %d",
			cnt)
	}
} // func TestSaveWriteFailure(t *testing.T)
