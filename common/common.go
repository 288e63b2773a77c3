// /home/krylon/go/src/github.com/blicero/mnemosyne/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 03. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-05-28 19:03:51 krylon>

// Package common provides constants and functions used throughout
// the application.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blicero/mnemosyne/logdomain"
	"github.com/hashicorp/logutils"
	"github.com/odeke-em/go-uuid"
)

// Debug indicates whether to include debugging information in log
// output and perform additional sanity checks.
const Debug = true

// AppName is the name the application identifies itself by.
// Version is the version number, TimestampFormat the default format
// for rendering time stamps.
const (
	AppName                  = "Mnemosyne"
	Version                  = "0.2.3"
	TimestampFormat          = "2006-01-02 15:04:05"
	TimestampFormatSubSecond = "2006-01-02 15:04:05.0000 MST"
	TimestampFormatTime      = "15:04:05"
	MinLogLevel              = "TRACE"
	RefreshInterval          = time.Second * 5
	storeEnvVar              = "MNEMOSYNE_STORE"
)

// LogLevels are the valid log levels, in ascending order of severity.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// BaseDir is the directory where the application keeps its files,
// LogPath is the path of the log file, StoreFile the path of the
// file where the Reminders are kept.
var (
	BaseDir   = filepath.Join(os.Getenv("HOME"), fmt.Sprintf(".%s.d", strings.ToLower(AppName)))
	LogPath   = filepath.Join(BaseDir, fmt.Sprintf("%s.log", strings.ToLower(AppName)))
	StoreFile = filepath.Join(BaseDir, "reminders.json")
)

// SetBaseDir sets the directory the application uses to keep its files.
func SetBaseDir(path string) error {
	BaseDir = path
	LogPath = filepath.Join(path, fmt.Sprintf("%s.log", strings.ToLower(AppName)))
	StoreFile = filepath.Join(path, "reminders.json")

	if err := InitApp(); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Error initializing application environment: %s\n",
			err.Error())
		return err
	}

	return nil
} // func SetBaseDir(path string) error

// StorePath returns the effective path of the reminder file.
// The environment variable MNEMOSYNE_STORE, if set, overrides
// the default location.
func StorePath() string {
	if path := os.Getenv(storeEnvVar); path != "" {
		return path
	}

	return StoreFile
} // func StorePath() string

// InitApp creates the application directory, if it does not exist already.
func InitApp() error {
	if err := os.MkdirAll(BaseDir, 0755); err != nil {
		return fmt.Errorf("Error creating BaseDir %s: %s",
			BaseDir,
			err.Error())
	}

	return nil
} // func InitApp() error

// GetLogger returns a Logger for the given log domain.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err error
		fh  *os.File
	)

	if err = InitApp(); err != nil {
		return nil, fmt.Errorf("Error initializing application environment: %s",
			err.Error())
	}

	var name = fmt.Sprintf("%s.%s ", AppName, dom)

	if fh, err = os.OpenFile(LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644); err != nil {
		return nil, fmt.Errorf("Error opening log file %s: %s",
			LogPath,
			err.Error())
	}

	var writer = io.MultiWriter(os.Stdout, fh)

	var filter = &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: logutils.LogLevel(MinLogLevel),
		Writer:   writer,
	}

	return log.New(filter, name, log.Ldate|log.Ltime|log.Lshortfile), nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)

// GetUUID returns a fresh UUID.
func GetUUID() string {
	return uuid.NewRandom().String()
} // func GetUUID() string
