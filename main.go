// /home/krylon/go/src/github.com/blicero/mnemosyne/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-11 22:48:17 krylon>

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blicero/mnemosyne/backend"
	"github.com/blicero/mnemosyne/common"
	"github.com/blicero/mnemosyne/engine"
	"github.com/blicero/mnemosyne/store"
	"github.com/blicero/mnemosyne/ui"
)

func main() {
	fmt.Printf("%s %s\n",
		common.AppName,
		common.Version)

	var (
		err               error
		st                *store.Store
		eng               *engine.Engine
		daemon            *backend.Daemon
		appDir, storePath string
		interval          time.Duration
		batch             bool
	)

	flag.StringVar(
		&appDir,
		"appdir",
		common.BaseDir,
		"The directory where application-specific files live")

	flag.StringVar(
		&storePath,
		"file",
		"",
		"Path of the reminder file (overrides the default location)")

	flag.DurationVar(
		&interval,
		"interval",
		common.RefreshInterval,
		"Pause between evaluation passes")

	flag.BoolVar(
		&batch,
		"batch",
		false,
		"Run without the interactive shell, notifications only")

	flag.Parse()

	if appDir != common.BaseDir {
		if err = common.SetBaseDir(appDir); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Failed to set application directory: %s\n",
				err.Error())
			os.Exit(1)
		}
	}

	if st, err = store.NewStore(storePath); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Failed to initialize store: %s\n",
			err.Error())
		os.Exit(1)
	}

	if err = st.Load(); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"WARNING: %s. Starting with an empty list.\n",
			err.Error())
	}

	if eng, err = engine.New(st); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Failed to initialize engine: %s\n",
			err.Error())
		os.Exit(1)
	}

	if daemon, err = backend.Summon(eng, interval); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Failed to initialize backend: %s\n",
			err.Error())
		os.Exit(1)
	}

	if batch {
		var sigQ = make(chan os.Signal, 1)
		var ticker = time.NewTicker(time.Second * 2)

		signal.Notify(sigQ, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		for daemon.IsAlive() {
			select {
			case sig := <-sigQ:
				fmt.Printf("Quitting on signal %s\n", sig)
				daemon.Banish()
				os.Exit(0)
			case <-ticker.C:
				continue
			}
		}
	} else {
		var shell *ui.UI

		if shell, err = ui.Create(eng); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Cannot create UI: %s\n",
				err.Error())
			os.Exit(1)
		}

		if err = shell.Run(); err != nil {
			fmt.Fprintf(
				os.Stderr,
				"Error running UI: %s\n",
				err.Error())
		}

		daemon.Banish()
	}
}
