// /home/krylon/go/src/github.com/blicero/mnemosyne/engine/01_engine_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-11 21:58:33 krylon>

package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/mnemosyne/common"
	"github.com/blicero/mnemosyne/objects"
	"github.com/blicero/mnemosyne/objects/status"
	"github.com/blicero/mnemosyne/objects/unit"
	"github.com/blicero/mnemosyne/store"
)

var (
	eng    *Engine
	st     *store.Store
	milkID string
	later  time.Time
)

func TestEngineCreate(t *testing.T) {
	var (
		err     error
		testDir = filepath.Join(
			os.TempDir(),
			fmt.Sprintf("mnemosyne_engine_test_%d", time.Now().Unix()))
	)

	if err = common.SetBaseDir(testDir); err != nil {
		t.Fatalf("Cannot set base directory to %s: %s",
			testDir,
			err.Error())
	}

	if st, err = store.NewStore(""); err != nil {
		t.Fatalf("Cannot create Store: %s",
			err.Error())
	} else if err = st.Load(); err != nil {
		t.Fatalf("Cannot load Store: %s",
			err.Error())
	}

	if eng, err = New(st); err != nil {
		eng = nil
		t.Fatalf("Cannot create Engine: %s",
			err.Error())
	}
} // func TestEngineCreate(t *testing.T)

func TestAddRejectsBadInput(t *testing.T) {
	if eng == nil {
		t.SkipNow()
	}

	type testCase struct {
		task  string
		value int64
		unit  unit.Unit
	}

	var cases = []testCase{
		testCase{task: "", value: 10, unit: unit.Minute},
		testCase{task: "No time at all", value: 0, unit: unit.Minute},
		testCase{task: "Negative time", value: -3, unit: unit.Hour},
		testCase{task: "Bogus unit", value: 10, unit: unit.Unit(200)},
	}

	for _, c := range cases {
		if _, err := eng.Add(c.task, c.value, c.unit); err == nil {
			t.Errorf("Add(%q, %d, %s) should have failed",
				c.task,
				c.value,
				c.unit)
		}
	}

	if _, err := eng.Add("Bogus unit", 10, unit.Unit(200)); !errors.Is(err, unit.ErrInvalidUnit) {
		t.Errorf("Add with an invalid unit returned the wrong error: %v",
			err)
	}

	if cnt := st.Count(); cnt != 0 {
		t.Errorf("Rejected Add calls should not create Reminders, found %d",
			cnt)
	}
} // func TestAddRejectsBadInput(t *testing.T)

// The walkthrough from the drawing board: add "Buy milk" with a ten
// second offset, watch it come due, complete it.
func TestLifecycle(t *testing.T) {
	if eng == nil {
		t.SkipNow()
	}

	var (
		err error
		rem *objects.Reminder
	)

	if rem, err = eng.Add("Buy milk", 10, unit.Second); err != nil {
		t.Fatalf("Cannot add Reminder: %s",
			err.Error())
	} else if rem.Status != status.Pending {
		t.Fatalf("Fresh Reminder has status %s (expected %s)",
			rem.Status,
			status.Pending)
	} else if delta := rem.DueTime.Sub(rem.CreatedAt); delta != time.Second*10 {
		t.Fatalf("Unexpected offset between creation and due time: %s",
			delta)
	}

	milkID = rem.ID

	var now = time.Now()

	// Not due yet.
	var view *objects.View
	if view, err = eng.Evaluate(now); err != nil {
		t.Fatalf("Evaluate failed: %s", err.Error())
	} else if len(view.BecameDue) != 0 {
		t.Errorf("No Reminder should have come due yet, got %d",
			len(view.BecameDue))
	} else if len(view.Active) != 1 {
		t.Fatalf("Expected 1 active Reminder, got %d",
			len(view.Active))
	} else if view.Active[0].Status != status.Pending {
		t.Errorf("Active Reminder has status %s (expected %s)",
			view.Active[0].Status,
			status.Pending)
	}

	// Eleven seconds later it has come due. The crossing must be
	// reported exactly once, no matter how often we evaluate.
	later = now.Add(time.Second * 11)

	if view, err = eng.Evaluate(later); err != nil {
		t.Fatalf("Evaluate failed: %s", err.Error())
	} else if len(view.BecameDue) != 1 {
		t.Fatalf("Expected exactly 1 Reminder to come due, got %d",
			len(view.BecameDue))
	} else if view.BecameDue[0].ID != milkID {
		t.Errorf("The wrong Reminder came due: %q",
			view.BecameDue[0].Task)
	} else if view.BecameDue[0].Status != status.Due {
		t.Errorf("Reminder that came due has status %s",
			view.BecameDue[0].Status)
	}

	var repeat *objects.View
	if repeat, err = eng.Evaluate(later); err != nil {
		t.Fatalf("Repeated Evaluate failed: %s", err.Error())
	} else if len(repeat.BecameDue) != 0 {
		t.Errorf("Repeated evaluation reported %d crossings, expected none",
			len(repeat.BecameDue))
	} else if len(repeat.Active) != len(view.Active) {
		t.Errorf("Repeated evaluation changed the active list: %d vs %d entries",
			len(repeat.Active),
			len(view.Active))
	}

	// Complete it.
	if err = eng.Complete(milkID); err != nil {
		t.Fatalf("Cannot complete Reminder: %s",
			err.Error())
	}

	var r = st.Get(milkID)

	if r.Status != status.Completed {
		t.Errorf("Completed Reminder has status %s",
			r.Status)
	} else if r.CompletedAt == nil {
		t.Error("Completed Reminder has no completion stamp")
	}

	if view, err = eng.Evaluate(later); err != nil {
		t.Fatalf("Evaluate failed: %s", err.Error())
	} else if len(view.Active) != 0 {
		t.Errorf("Completed Reminder still shows up as active (%d entries)",
			len(view.Active))
	} else if len(view.Completed) != 1 {
		t.Fatalf("Expected 1 completed Reminder, got %d",
			len(view.Completed))
	}

	// Completing it again is a no-op.
	if err = eng.Complete(milkID); err != nil {
		t.Errorf("Completing an already completed Reminder should succeed: %s",
			err.Error())
	}
} // func TestLifecycle(t *testing.T)

// Un-completing returns a Reminder to Pending even when it is long
// overdue; the next evaluation flips it right back to Due and reports
// the new crossing.
func TestUncomplete(t *testing.T) {
	if eng == nil || milkID == "" {
		t.SkipNow()
	}

	var err error

	if err = eng.Uncomplete(milkID); err != nil {
		t.Fatalf("Cannot un-complete Reminder: %s",
			err.Error())
	}

	var r = st.Get(milkID)

	if r.Status != status.Pending {
		t.Errorf("Un-completed Reminder has status %s (expected %s)",
			r.Status,
			status.Pending)
	} else if r.CompletedAt != nil {
		t.Error("Un-completed Reminder still has a completion stamp")
	}

	// Un-completing a Reminder that is not completed is a no-op.
	if err = eng.Uncomplete(milkID); err != nil {
		t.Errorf("Un-completing a pending Reminder should succeed: %s",
			err.Error())
	}

	var view *objects.View

	if view, err = eng.Evaluate(later); err != nil {
		t.Fatalf("Evaluate failed: %s", err.Error())
	} else if len(view.BecameDue) != 1 {
		t.Errorf("Overdue reactivated Reminder should come due again, got %d crossings",
			len(view.BecameDue))
	} else if st.Get(milkID).Status != status.Due {
		t.Errorf("Reactivated Reminder has status %s (expected %s)",
			st.Get(milkID).Status,
			status.Due)
	}
} // func TestUncomplete(t *testing.T)

func TestDismiss(t *testing.T) {
	if eng == nil || milkID == "" {
		t.SkipNow()
	}

	var err error

	if err = eng.Dismiss(milkID); err != nil {
		t.Fatalf("Cannot dismiss Reminder: %s",
			err.Error())
	}

	var view *objects.View

	if view, err = eng.Evaluate(later); err != nil {
		t.Fatalf("Evaluate failed: %s", err.Error())
	} else if !view.IsEmpty() {
		t.Errorf("Dismissed Reminder still shows up (%d active, %d completed)",
			len(view.Active),
			len(view.Completed))
	}

	// Dismissing again is a no-op, ...
	if err = eng.Dismiss(milkID); err != nil {
		t.Errorf("Dismissing a dismissed Reminder should succeed: %s",
			err.Error())
	}

	// ... but there is no way back out of Dismissed.
	if err = eng.Complete(milkID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Completing a dismissed Reminder should report NotFound, got %v",
			err)
	}
	if err = eng.Uncomplete(milkID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Un-completing a dismissed Reminder should report NotFound, got %v",
			err)
	}

	// The Reminder is not actually gone, it is merely invisible.
	if st.Get(milkID) == nil {
		t.Error("Dismissed Reminder has vanished from the Store")
	}
} // func TestDismiss(t *testing.T)

func TestNotFound(t *testing.T) {
	if eng == nil {
		t.SkipNow()
	}

	var bogus = common.GetUUID()

	for name, op := range map[string]func(string) error{
		"Complete":   eng.Complete,
		"Uncomplete": eng.Uncomplete,
		"Dismiss":    eng.Dismiss,
	} {
		if err := op(bogus); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s with a bogus ID should report NotFound, got %v",
				name,
				err)
		}
	}
} // func TestNotFound(t *testing.T)
