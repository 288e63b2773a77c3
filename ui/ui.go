// /home/krylon/go/src/github.com/blicero/mnemosyne/ui/ui.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-11 22:31:50 krylon>

// Package ui implements the interactive front end, a simple
// line-oriented shell.
//
// The shell owns no state of its own beyond the list of entries it
// rendered last; all it does is render the engine's View and
// translate commands into engine operations, re-rendering after each
// one.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blicero/mnemosyne/common"
	"github.com/blicero/mnemosyne/engine"
	"github.com/blicero/mnemosyne/logdomain"
	"github.com/blicero/mnemosyne/objects"
	"github.com/blicero/mnemosyne/objects/status"
	"github.com/blicero/mnemosyne/objects/unit"
	"github.com/blicero/mnemosyne/timemath"
)

const help = `Commands:
  add <value> <unit> <task>   set a new reminder (units: seconds, minutes, hours, days)
  done <n>                    mark entry <n> as completed
  undo <n>                    mark entry <n> as not completed after all
  drop <n>                    dismiss entry <n> for good
  list                        redisplay the reminders
  help                        show this text
  quit                        leave`

// UI is the interactive shell.
type UI struct {
	log     *log.Logger
	eng     *engine.Engine
	in      *bufio.Scanner
	out     io.Writer
	visible []string
}

// Create creates a UI reading commands from stdin and printing to
// stdout.
func Create(eng *engine.Engine) (*UI, error) {
	var (
		err error
		u   = &UI{
			eng: eng,
			in:  bufio.NewScanner(os.Stdin),
			out: os.Stdout,
		}
	)

	if u.log, err = common.GetLogger(logdomain.UI); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	}

	return u, nil
} // func Create(eng *engine.Engine) (*UI, error)

// Run reads and executes commands until the user quits or input runs
// dry.
func (u *UI) Run() error {
	fmt.Fprintf(u.out, "%s %s - type \"help\" for a list of commands\n",
		common.AppName,
		common.Version)

	u.refresh()

	for {
		fmt.Fprint(u.out, "> ")

		if !u.in.Scan() {
			return u.in.Err()
		}

		var fields = strings.Fields(u.in.Text())
		if len(fields) == 0 {
			u.refresh()
			continue
		}

		switch fields[0] {
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprintln(u.out, help)
		case "list", "ls":
			u.refresh()
		case "add":
			u.cmdAdd(fields[1:])
		case "done":
			u.cmdTransition(fields[1:], u.eng.Complete)
		case "undo":
			u.cmdTransition(fields[1:], u.eng.Uncomplete)
		case "drop":
			u.cmdTransition(fields[1:], u.eng.Dismiss)
		default:
			u.log.Printf("[DEBUG] Unknown command %q\n",
				fields[0])
			fmt.Fprintf(u.out, "Unknown command %q, try \"help\"\n",
				fields[0])
		}
	}
} // func (u *UI) Run() error

// refresh runs one evaluation pass and redraws the screen.
func (u *UI) refresh() {
	var (
		err  error
		now  = time.Now()
		view *objects.View
	)

	if view, err = u.eng.Evaluate(now); err != nil {
		u.log.Printf("[WARN] Evaluation pass failed: %s\n",
			err.Error())
		fmt.Fprintf(u.out, "WARNING: %s\n", err.Error())
	}

	if view == nil {
		return
	}

	u.visible = RenderView(u.out, view, now)
} // func (u *UI) refresh()

func (u *UI) cmdAdd(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(u.out, "Usage: add <value> <unit> <task>")
		return
	}

	var (
		err   error
		value int64
		un    unit.Unit
	)

	if value, err = strconv.ParseInt(args[0], 10, 64); err != nil {
		fmt.Fprintf(u.out, "Cannot parse offset value %q: %s\n",
			args[0],
			err.Error())
		return
	} else if un, err = unit.FromString(args[1]); err != nil {
		fmt.Fprintf(u.out, "Unknown time unit %q\n",
			args[1])
		return
	}

	var (
		task = strings.Join(args[2:], " ")
		rem  *objects.Reminder
	)

	if rem, err = u.eng.Add(task, value, un); err != nil {
		fmt.Fprintf(u.out, "Cannot add reminder: %s\n",
			err.Error())
		if rem == nil {
			return
		}
	}

	fmt.Fprintf(u.out, "Reminder for %q set for %s.\n",
		task,
		rem.DueTime.Format(common.TimestampFormat))
	u.refresh()
} // func (u *UI) cmdAdd(args []string)

// cmdTransition handles done, undo and drop, which only differ in the
// engine operation they invoke.
func (u *UI) cmdTransition(args []string, op func(string) error) {
	if len(args) != 1 {
		fmt.Fprintln(u.out, "Expected exactly one entry number")
		return
	}

	var (
		err error
		id  string
	)

	if id, err = u.resolve(args[0]); err != nil {
		fmt.Fprintln(u.out, err.Error())
		return
	}

	if err = op(id); err != nil {
		fmt.Fprintf(u.out, "ERROR: %s\n", err.Error())
		return
	}

	u.refresh()
} // func (u *UI) cmdTransition(args []string, op func(string) error)

// resolve maps an entry number from the last rendering to a Reminder ID.
func (u *UI) resolve(arg string) (string, error) {
	var (
		err error
		n   int
	)

	if n, err = strconv.Atoi(arg); err != nil {
		return "", fmt.Errorf("Cannot parse entry number %q: %s",
			arg,
			err.Error())
	} else if n < 1 || n > len(u.visible) {
		return "", fmt.Errorf("Entry number %d is out of range (1-%d)",
			n,
			len(u.visible))
	}

	return u.visible[n-1], nil
} // func (u *UI) resolve(arg string) (string, error)

// RenderView writes a View to w, numbering the entries consecutively,
// Active list first. It returns the Reminder IDs in display order, so
// the caller can map entry numbers back to Reminders.
func RenderView(w io.Writer, view *objects.View, now time.Time) []string {
	var ids = make([]string, 0, len(view.Active)+len(view.Completed))

	for idx := range view.BecameDue {
		fmt.Fprintf(w, "*** Reminder %q is due! ***\n",
			view.BecameDue[idx].Task)
	}

	if view.IsEmpty() {
		fmt.Fprintln(w, "No reminders yet. Add one!")
		return ids
	}

	if len(view.Active) > 0 {
		fmt.Fprintln(w, "Active:")

		for idx := range view.Active {
			var (
				rem  = &view.Active[idx]
				left = timemath.FormatRemaining(rem.Remaining(now))
				line string
			)

			if rem.Status == status.Due {
				line = fmt.Sprintf("%s (originally %s)",
					left,
					rem.DueTime.Format(common.TimestampFormatTime))
			} else {
				line = fmt.Sprintf("Due in: %s (at %s)",
					left,
					rem.DueTime.Format(common.TimestampFormatTime))
			}

			ids = append(ids, rem.ID)
			fmt.Fprintf(w, "%3d) [%s] %s\n        %s\n",
				len(ids),
				rem.Status,
				rem.Task,
				line)
		}
	}

	if len(view.Completed) > 0 {
		fmt.Fprintln(w, "Completed:")

		for idx := range view.Completed {
			var rem = &view.Completed[idx]

			ids = append(ids, rem.ID)
			fmt.Fprintf(w, "%3d) [%s] %s\n        Completed on %s\n",
				len(ids),
				rem.Status,
				rem.Task,
				rem.CompletionStamp().Format(common.TimestampFormat))
		}
	}

	return ids
} // func RenderView(w io.Writer, view *objects.View, now time.Time) []string
