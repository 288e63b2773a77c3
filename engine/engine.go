// /home/krylon/go/src/github.com/blicero/mnemosyne/engine/engine.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-11 21:34:19 krylon>

// Package engine implements the lifecycle of Reminders: creating
// them, flipping them to Due once their time has come, completing,
// un-completing and dismissing them, and sorting the survivors into
// the lists the user gets to see.
//
// Every operation that changes a Reminder saves the collection before
// returning, so a restart never loses a committed transition. A
// failed save is reported to the caller, but the in-memory state
// stands; the next successful save reconciles the file.
package engine

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/blicero/mnemosyne/common"
	"github.com/blicero/mnemosyne/logdomain"
	"github.com/blicero/mnemosyne/objects"
	"github.com/blicero/mnemosyne/objects/status"
	"github.com/blicero/mnemosyne/objects/unit"
	"github.com/blicero/mnemosyne/store"
	"github.com/blicero/mnemosyne/timemath"
)

// ErrNotFound indicates that no visible Reminder with the given ID
// exists. Dismissed Reminders count as removed, so completing or
// un-completing one is reported as not found, too.
var ErrNotFound = errors.New("no such Reminder exists")

// Engine drives the Reminder lifecycle on top of a Store.
type Engine struct {
	log   *log.Logger
	store *store.Store
	lock  sync.RWMutex
}

// New creates an Engine operating on the given Store.
func New(st *store.Store) (*Engine, error) {
	var (
		err error
		e   = &Engine{store: st}
	)

	if e.log, err = common.GetLogger(logdomain.Engine); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	}

	return e, nil
} // func New(st *store.Store) (*Engine, error)

// Add creates a new Reminder for the given task, due value offset
// units from now, and saves it.
//
// An empty task, a non-positive value, or an invalid unit is rejected
// before anything is created. If creating succeeds but saving does
// not, the Reminder is returned along with the save error; it lives
// in memory and will reach the file with the next successful save.
func (e *Engine) Add(task string, value int64, u unit.Unit) (*objects.Reminder, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if task == "" {
		return nil, errors.New("Task must not be empty")
	}

	var (
		err error
		now = time.Now()
		due time.Time
	)

	if due, err = timemath.ComputeDue(now, value, u); err != nil {
		e.log.Printf("[ERROR] Cannot compute due time for %q: %s\n",
			task,
			err.Error())
		return nil, err
	}

	var r = &objects.Reminder{
		ID:        common.GetUUID(),
		Task:      task,
		DueTime:   due,
		CreatedAt: now,
		Status:    status.Pending,
	}

	if err = e.store.Add(r); err != nil {
		e.log.Printf("[WARN] Reminder %q was created, but saving failed: %s\n",
			task,
			err.Error())
		return r, err
	}

	e.log.Printf("[INFO] Added Reminder %q (%s), due at %s\n",
		task,
		r.ID,
		due.Format(common.TimestampFormat))

	return r, nil
} // func (e *Engine) Add(task string, value int64, u unit.Unit) (*objects.Reminder, error)

// Complete marks a Reminder as completed and records the completion
// time. Completing an already completed Reminder is a no-op.
func (e *Engine) Complete(id string) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	var r = e.store.Get(id)

	switch {
	case r == nil || r.Status == status.Dismissed:
		return ErrNotFound
	case r.Status == status.Completed:
		return nil
	}

	var now = time.Now()
	r.Status = status.Completed
	r.CompletedAt = &now

	e.log.Printf("[INFO] Completed Reminder %q (%s)\n",
		r.Task,
		r.ID)

	return e.flush(r)
} // func (e *Engine) Complete(id string) error

// Uncomplete returns a completed Reminder to Pending and clears its
// completion time. The Reminder re-enters Pending even if its due
// time has long passed; the next evaluation will flip it to Due
// again. Un-completing a Reminder that is not completed is a no-op.
func (e *Engine) Uncomplete(id string) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	var r = e.store.Get(id)

	switch {
	case r == nil || r.Status == status.Dismissed:
		return ErrNotFound
	case r.Status != status.Completed:
		return nil
	}

	r.Status = status.Pending
	r.CompletedAt = nil

	e.log.Printf("[INFO] Reactivated Reminder %q (%s)\n",
		r.Task,
		r.ID)

	return e.flush(r)
} // func (e *Engine) Uncomplete(id string) error

// Dismiss removes a Reminder from view for good. Dismissing an
// already dismissed Reminder is a no-op; there is no way back out of
// Dismissed.
func (e *Engine) Dismiss(id string) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	var r = e.store.Get(id)

	switch {
	case r == nil:
		return ErrNotFound
	case r.Status == status.Dismissed:
		return nil
	}

	r.Status = status.Dismissed
	r.CompletedAt = nil

	e.log.Printf("[INFO] Dismissed Reminder %q (%s)\n",
		r.Task,
		r.ID)

	return e.flush(r)
} // func (e *Engine) Dismiss(id string) error

// Evaluate performs one complete evaluation pass at the given time:
// every Pending Reminder whose due time has passed becomes Due, and
// the collection is sorted into the Active and Completed display
// lists.
//
// The returned View's BecameDue holds exactly the Reminders that
// crossed into Due during this call. Calling Evaluate repeatedly with
// a non-decreasing now is idempotent: the lists come out identical,
// and BecameDue is empty on the repeat calls.
//
// The collection is only saved if something actually changed. If that
// save fails, the View is returned anyway, together with the error.
func (e *Engine) Evaluate(now time.Time) (*objects.View, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	var (
		all  = e.store.All()
		view = &objects.View{
			Active:    make([]objects.Reminder, 0, len(all)),
			Completed: make([]objects.Reminder, 0, len(all)),
		}
	)

	for _, r := range all {
		switch r.Status {
		case status.Pending:
			if !r.DueTime.After(now) {
				r.Status = status.Due
				view.BecameDue = append(view.BecameDue, *r)
				e.log.Printf("[INFO] Reminder %q (%s) is now due\n",
					r.Task,
					r.ID)
			}
			view.Active = append(view.Active, *r)
		case status.Due:
			view.Active = append(view.Active, *r)
		case status.Completed:
			view.Completed = append(view.Completed, *r)
		}
	}

	sort.Slice(view.Active, func(i, j int) bool {
		return view.Active[i].DueTime.Before(view.Active[j].DueTime)
	})

	sort.Slice(view.Completed, func(i, j int) bool {
		return view.Completed[i].CompletionStamp().After(view.Completed[j].CompletionStamp())
	})

	var err error

	if len(view.BecameDue) > 0 {
		if err = e.store.Save(); err != nil {
			e.log.Printf("[WARN] Cannot save Reminders after evaluation: %s\n",
				err.Error())
		}
	}

	return view, err
} // func (e *Engine) Evaluate(now time.Time) (*objects.View, error)

// flush saves the collection after a transition on r.
func (e *Engine) flush(r *objects.Reminder) error {
	var err error

	if err = e.store.Save(); err != nil {
		e.log.Printf("[WARN] Reminder %q (%s) was updated, but saving failed: %s\n",
			r.Task,
			r.ID,
			err.Error())
	}

	return err
} // func (e *Engine) flush(r *objects.Reminder) error
