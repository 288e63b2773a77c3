// /home/krylon/go/src/github.com/blicero/mnemosyne/store/store.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-11 20:48:35 krylon>

// Package store keeps the collection of Reminders and persists it to
// a JSON file.
//
// The in-memory collection is the source of truth for the running
// session; the file on disk trails it by at most one mutation. Saving
// writes the full collection to a temporary file and renames it over
// the old one, so a crash mid-write never leaves a torn file behind.
package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/blicero/krylib"
	"github.com/blicero/mnemosyne/common"
	"github.com/blicero/mnemosyne/logdomain"
	"github.com/blicero/mnemosyne/objects"
	"github.com/pquerna/ffjson/ffjson"
)

// ErrCorruptStore indicates that the reminder file exists but could
// not be read or parsed. The Store falls back to an empty collection
// in that case; the caller should warn the user once, since the old
// contents are effectively lost on the next save.
var ErrCorruptStore = errors.New("reminder file is unreadable or corrupted")

// Store is the collection of all Reminders, plus the machinery to
// load it from and save it to the reminder file.
type Store struct {
	path      string
	log       *log.Logger
	lock      sync.RWMutex
	reminders []*objects.Reminder
	index     map[string]*objects.Reminder
}

// NewStore creates a Store bound to the given file path. If path is
// empty, the default location is used (which the environment variable
// MNEMOSYNE_STORE may override).
func NewStore(path string) (*Store, error) {
	var (
		err error
		s   = &Store{
			path:      path,
			reminders: make([]*objects.Reminder, 0, 8),
			index:     make(map[string]*objects.Reminder),
		}
	)

	if s.path == "" {
		s.path = common.StorePath()
	}

	if s.log, err = common.GetLogger(logdomain.Store); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	}

	return s, nil
} // func NewStore(path string) (*Store, error)

// Path returns the path of the reminder file.
func (s *Store) Path() string {
	return s.path
} // func (s *Store) Path() string

// Load reads the reminder file and replaces the in-memory collection
// with its contents.
//
// A missing file is not an error, it simply yields an empty
// collection. An unreadable or malformed file yields an empty
// collection, too, but is reported as ErrCorruptStore so the caller
// can surface a warning.
func (s *Store) Load() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.reminders = s.reminders[:0]
	for id := range s.index {
		delete(s.index, id)
	}

	var (
		err    error
		exists bool
		buf    []byte
		list   []objects.Reminder
	)

	if exists, err = krylib.Fexists(s.path); err != nil {
		s.log.Printf("[ERROR] Cannot check for reminder file %s: %s\n",
			s.path,
			err.Error())
		return ErrCorruptStore
	} else if !exists {
		s.log.Printf("[DEBUG] Reminder file %s does not exist, starting empty\n",
			s.path)
		return nil
	}

	if buf, err = os.ReadFile(s.path); err != nil {
		s.log.Printf("[ERROR] Cannot read reminder file %s: %s\n",
			s.path,
			err.Error())
		return ErrCorruptStore
	}

	if err = ffjson.Unmarshal(buf, &list); err != nil {
		s.log.Printf("[ERROR] Cannot parse reminder file %s: %s\n",
			s.path,
			err.Error())
		return ErrCorruptStore
	}

	for idx := range list {
		var r = &list[idx]

		if _, dup := s.index[r.ID]; dup {
			s.log.Printf("[WARN] Reminder file contains duplicate ID %s (%q), skipping\n",
				r.ID,
				r.Task)
			continue
		}

		s.reminders = append(s.reminders, r)
		s.index[r.ID] = r
	}

	s.log.Printf("[DEBUG] Loaded %d Reminders from %s\n",
		len(s.reminders),
		s.path)

	return nil
} // func (s *Store) Load() error

// Save writes the entire collection to the reminder file.
//
// If the write fails, the in-memory collection is untouched and
// remains authoritative; the next successful save will reconcile the
// file.
func (s *Store) Save() error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.save()
} // func (s *Store) Save() error

// Add appends a Reminder to the collection and saves. The ID must not
// be in use already.
func (s *Store) Add(r *objects.Reminder) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, dup := s.index[r.ID]; dup {
		return fmt.Errorf("A Reminder with ID %s already exists",
			r.ID)
	}

	s.reminders = append(s.reminders, r)
	s.index[r.ID] = r

	return s.save()
} // func (s *Store) Add(r *objects.Reminder) error

// Get looks up a Reminder by its ID, returning nil if no such
// Reminder exists.
func (s *Store) Get(id string) *objects.Reminder {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.index[id]
} // func (s *Store) Get(id string) *objects.Reminder

// All returns the Reminders in insertion order.
func (s *Store) All() []*objects.Reminder {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var list = make([]*objects.Reminder, len(s.reminders))
	copy(list, s.reminders)

	return list
} // func (s *Store) All() []*objects.Reminder

// Count returns the number of Reminders, dismissed ones included.
func (s *Store) Count() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.reminders)
} // func (s *Store) Count() int

// save does the actual writing. The caller must hold the lock.
func (s *Store) save() error {
	var (
		err  error
		buf  []byte
		tmp  *os.File
		list = make([]objects.Reminder, 0, len(s.reminders))
	)

	for _, r := range s.reminders {
		list = append(list, *r)
	}

	if buf, err = ffjson.Marshal(list); err != nil {
		s.log.Printf("[ERROR] Cannot serialize %d Reminders: %s\n",
			len(list),
			err.Error())
		return err
	}

	defer ffjson.Pool(buf)

	if tmp, err = os.CreateTemp(filepath.Dir(s.path), "reminders.*.tmp"); err != nil {
		s.log.Printf("[ERROR] Cannot create temporary file for %s: %s\n",
			s.path,
			err.Error())
		return err
	}

	if _, err = tmp.Write(buf); err != nil {
		s.log.Printf("[ERROR] Cannot write to temporary file %s: %s\n",
			tmp.Name(),
			err.Error())
		tmp.Close()           // nolint: errcheck
		os.Remove(tmp.Name()) // nolint: errcheck
		return err
	} else if err = tmp.Close(); err != nil {
		s.log.Printf("[ERROR] Cannot close temporary file %s: %s\n",
			tmp.Name(),
			err.Error())
		os.Remove(tmp.Name()) // nolint: errcheck
		return err
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		s.log.Printf("[ERROR] Cannot replace reminder file %s: %s\n",
			s.path,
			err.Error())
		os.Remove(tmp.Name()) // nolint: errcheck
		return err
	}

	return nil
} // func (s *Store) save() error
