// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/DavidGamba/go-getopt/text"
)

// Process wide State used by Getopt and its accessors.
var (
	std   = NewState()
	stdMu sync.Mutex
)

// Getopt - Traditional getopt(3) interface over a process wide State.
//
// Returns the option letter, -1 when there are no more options, '?' for an
// unknown option or a missing value, and ':' instead of '?' for a missing
// value when optstring starts with ':'.
// Read the value with Optarg and the positional arguments with args[Optind():].
//
// Diagnostics are written to Writer when Opterr is true and optstring doesn't
// start with ':'.
//
// Use State.Next when more than one parse can be in progress.
func Getopt(args []string, optstring string) rune {
	stdMu.Lock()
	defer stdMu.Unlock()

	silent := strings.HasPrefix(optstring, ":")
	r := std.Next(args, optstring)
	switch r.Kind {
	case Option:
		return r.Opt
	case Unknown:
		if std.ReportErrors && !silent {
			diagnostic(args, text.ErrorUnknownOption, r.Opt)
		}
		return '?'
	case MissingArgument:
		if silent {
			return ':'
		}
		if std.ReportErrors {
			diagnostic(args, text.ErrorMissingArgument, r.Opt)
		}
		return '?'
	}
	return -1
}

func diagnostic(args []string, format string, c rune) {
	prog := ""
	if len(args) > 0 {
		prog = filepath.Base(args[0])
	}
	fmt.Fprintf(Writer, text.DiagnosticPrefix+format+"\n", prog, c)
}

// Optarg - Value of the last option returned by Getopt, empty when it had none.
func Optarg() string {
	stdMu.Lock()
	defer stdMu.Unlock()
	return std.Arg
}

// Optind - Index of the next argument to be processed by Getopt.
func Optind() int {
	stdMu.Lock()
	defer stdMu.Unlock()
	return std.Index
}

// SetOptind - Moves Getopt to the given argument index.
// Setting it to 1 restarts the parse, 0 is the same as 1 so the program name
// in args[0] is never scanned.
func SetOptind(i int) {
	stdMu.Lock()
	defer stdMu.Unlock()
	if i == 0 {
		i = 1
	}
	std.Index = i
	std.cursor = 0
	std.terminated = false
}

// Optopt - Letter of the last unknown option or option missing its value.
func Optopt() rune {
	stdMu.Lock()
	defer stdMu.Unlock()
	return std.Optopt
}

// Opterr - Indicates if Getopt writes diagnostics. Defaults to true.
func Opterr() bool {
	stdMu.Lock()
	defer stdMu.Unlock()
	return std.ReportErrors
}

// SetOpterr - Enables or disables Getopt diagnostics.
func SetOpterr(b bool) {
	stdMu.Lock()
	defer stdMu.Unlock()
	std.ReportErrors = b
}

// Reset - Restores the process wide State to its initial values.
func Reset() {
	stdMu.Lock()
	defer stdMu.Unlock()
	std = NewState()
}
