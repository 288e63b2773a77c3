// /home/krylon/go/src/github.com/blicero/mnemosyne/backend/backend.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-11 22:05:12 krylon>

// Package backend implements the Daemon that periodically evaluates
// the reminder collection and posts desktop notifications for
// Reminders that have come due.
package backend

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blicero/mnemosyne/common"
	"github.com/blicero/mnemosyne/engine"
	"github.com/blicero/mnemosyne/logdomain"
	"github.com/blicero/mnemosyne/objects"
	"github.com/godbus/dbus/v5"
)

const (
	notifyObj    = "org.freedesktop.Notifications"
	notifyIntf   = "org.freedesktop.Notifications" // nolint: deadcode,unused,varcheck
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
	queueDepth   = 5
)

// Daemon runs the periodic evaluation loop and the notification
// queue. If the DBus session bus is not available, it keeps
// evaluating but skips the notifications.
type Daemon struct {
	log      *log.Logger
	eng      *engine.Engine
	bus      *dbus.Conn
	lock     sync.RWMutex
	active   bool
	interval time.Duration
	Queue    chan objects.Notification
}

// Summon summons a Daemon and returns it. No sacrifice or idolatry is
// required.
//
// interval is the pause between evaluation passes; a non-positive
// value selects the default refresh interval.
func Summon(eng *engine.Engine, interval time.Duration) (*Daemon, error) {
	var (
		err error
		d   = &Daemon{
			eng:      eng,
			active:   true,
			interval: interval,
			Queue:    make(chan objects.Notification, queueDepth),
		}
	)

	if d.interval <= 0 {
		d.interval = common.RefreshInterval
	}

	if d.log, err = common.GetLogger(logdomain.Backend); err != nil {
		fmt.Printf("ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	}

	if d.bus, err = dbus.SessionBus(); err != nil {
		d.log.Printf("[WARN] Cannot connect to DBus session bus, desktop notifications are disabled: %s\n",
			err.Error())
		d.bus = nil
	}

	go d.evalLoop()
	go d.notifyLoop()

	return d, nil
} // func Summon(eng *engine.Engine, interval time.Duration) (*Daemon, error)

// IsAlive returns true if the Daemon's active flag is set.
func (d *Daemon) IsAlive() bool {
	d.lock.RLock()
	var alive = d.active
	d.lock.RUnlock()

	return alive
} // func (d *Daemon) IsAlive() bool

// Banish clears the Daemon's active flag, telling its loops to shut down.
func (d *Daemon) Banish() {
	d.lock.Lock()
	d.active = false
	d.lock.Unlock()
} // func (d *Daemon) Banish()

// evalLoop periodically runs one complete evaluation pass and feeds
// the Reminders that just came due into the notification queue.
func (d *Daemon) evalLoop() {
	defer d.log.Println("[TRACE] Quitting evalLoop")

	var tick = time.NewTicker(d.interval)
	defer tick.Stop()

	for d.IsAlive() {
		<-tick.C

		var (
			err  error
			view *objects.View
		)

		if view, err = d.eng.Evaluate(time.Now()); err != nil {
			d.log.Printf("[ERROR] Evaluation pass failed: %s\n",
				err.Error())
		}

		if view == nil {
			continue
		}

		for idx := range view.BecameDue {
			var rem = view.BecameDue[idx]

			select {
			case d.Queue <- &rem:
			default:
				d.log.Printf("[WARN] Notification queue is full, dropping %q\n",
					rem.Task)
			}
		}
	}
} // func (d *Daemon) evalLoop()

// notifyLoop drains the notification queue.
func (d *Daemon) notifyLoop() {
	defer d.log.Println("[TRACE] Quitting notifyLoop")

	var (
		err  error
		tick = time.NewTicker(d.interval)
	)
	defer tick.Stop()

	for d.IsAlive() {
		select {
		case <-tick.C:
			continue
		case m := <-d.Queue:
			var title, body = m.Payload()
			d.log.Printf("[DEBUG] Received Notification: %s\n%s\n",
				title,
				body)

			if err = d.notify(m); err != nil {
				d.log.Printf("[ERROR] Failed to post Notification %q: %s\n",
					title,
					err.Error())
			}
		}
	}
} // func (d *Daemon) notifyLoop()

// notify posts one desktop notification. Without a bus connection it
// does nothing.
func (d *Daemon) notify(n objects.Notification) error {
	if d.bus == nil {
		return nil
	}

	var (
		obj        = d.bus.Object(notifyObj, notifyPath)
		head, body string
	)

	if obj == nil {
		var err = fmt.Errorf("Did not find object %s (%s) on session bus",
			notifyObj,
			notifyPath)
		d.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	head, body = n.Payload()

	var res = obj.Call(
		notifyMethod,
		0,
		common.AppName,
		uint32(0),
		"",
		head,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(-1),
	)

	if res.Err != nil {
		d.log.Printf("[ERROR] Cannot send Notification %q: %s\n",
			head,
			res.Err.Error())
		return res.Err
	}

	return nil
} // func (d *Daemon) notify(n objects.Notification) error
