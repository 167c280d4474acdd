// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getopt - Reentrant POSIX short option scanner.

Each call to Next classifies the argument under the cursor as an option, an
unknown option, an option missing its value, or the end of the options.
All the parsing progress lives in a caller owned State so independent parses
can run side by side.

# Usage

	s := getopt.NewState()
	for {
		r := s.Next(os.Args, "ab:c::")
		if r.Kind == getopt.End {
			break
		}
		switch r.Opt {
		case 'a':
			// ...
		case 'b':
			fmt.Println(r.Arg)
		}
	}
	positional := os.Args[s.Index:]

# Option string

Each letter is a recognized option.
A letter followed by ':' requires a value, either inline (-bvalue) or as the
next argument (-b value).
A letter followed by '::' takes an optional value that must be inline.

# Features

* Clustering: `-abc` is the same as `-a -b -c`.

* `--` stops option parsing, everything after it is positional.

* A lone `-` is positional.

* Values are substrings of the given arguments, nothing is copied.

For a higher level iterator see Scanner, and for the traditional process wide
interface see Getopt.
*/
package getopt

import (
	"io"
	"log"
	"os"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

var Writer io.Writer = os.Stderr // io.Writer to write diagnostics to. Defaults to os.Stderr.

// Kind - Classification of a scanned argument.
type Kind int

// Result kinds
const (
	End Kind = iota
	Option
	Unknown
	MissingArgument
)

func (k Kind) String() string {
	switch k {
	case End:
		return "end"
	case Option:
		return "option"
	case Unknown:
		return "unknown"
	case MissingArgument:
		return "missing argument"
	}
	return "invalid"
}

// Result - Outcome of a single call to Next.
//
// Opt is the matched letter for Option results and the offending letter for
// Unknown and MissingArgument results.
// A byte that is not valid UTF-8 is reported as rune(byte).
type Result struct {
	Kind   Kind
	Opt    rune
	Arg    string
	HasArg bool
}

func (r Result) String() string {
	switch r.Kind {
	case End:
		return "end"
	case Option:
		if r.HasArg {
			return "-" + string(r.Opt) + " " + r.Arg
		}
		return "-" + string(r.Opt)
	}
	return r.Kind.String() + " -" + string(r.Opt)
}

// State - Progress of a single parse session.
//
// Create it with NewState and pass the same pointer to every call of Next.
type State struct {
	// Arg is the value consumed by the last option, HasArg tells if there was one.
	Arg    string
	HasArg bool

	// ReportErrors enables diagnostics on Writer.
	// Next never writes, it is honored by Getopt.
	ReportErrors bool

	// Index is the next element of args to be processed.
	// After the End result args[Index:] are the positional arguments.
	Index int

	// Optopt is the letter of the last Unknown or MissingArgument result.
	// A byte that is not valid UTF-8 is stored as rune(byte).
	Optopt rune

	cursor     int  // offset into args[Index] while inside a cluster
	terminated bool // '--' was consumed
}

// NewState - Returns a State that starts scanning after the program name in args[0].
func NewState() *State {
	return &State{Index: 1, ReportErrors: true}
}

// Cursor - Byte offset of the next letter inside args[Index], 0 when not inside a cluster.
func (s *State) Cursor() int {
	return s.cursor
}

// Terminated - Indicates if a `--` argument has been consumed.
func (s *State) Terminated() bool {
	return s.terminated
}

// Next - Scans the next option from args using optstring.
func (s *State) Next(args []string, optstring string) Result {
	s.Arg, s.HasArg = "", false
	if s.Index < 0 {
		s.Index, s.cursor = 0, 0
	}
	for {
		if s.terminated || s.Index >= len(args) {
			return Result{Kind: End}
		}
		arg := args[s.Index]
		if s.cursor == 0 {
			if len(arg) < 2 || arg[0] != '-' {
				Logger.Printf("positional %q at %d", arg, s.Index)
				return Result{Kind: End}
			}
			if arg == "--" {
				Logger.Printf("terminator at %d", s.Index)
				s.Index++
				s.terminated = true
				return Result{Kind: End}
			}
			s.cursor = 1
		}
		if s.cursor >= len(arg) {
			s.nextArg()
			continue
		}

		l, size := decodeLetter(arg[s.cursor:])
		c := l.c
		rest := arg[s.cursor+size:]
		req, ok := lookup(optstring, l)
		if !ok {
			Logger.Printf("unknown option %q in %q", c, arg)
			s.Optopt = c
			s.advance(arg, size)
			return Result{Kind: Unknown, Opt: c}
		}

		switch req {
		case NoArgument:
			s.advance(arg, size)
			return Result{Kind: Option, Opt: c}
		case OptionalArgument:
			s.nextArg()
			if rest != "" {
				s.Arg, s.HasArg = rest, true
			}
			return Result{Kind: Option, Opt: c, Arg: s.Arg, HasArg: s.HasArg}
		default:
			s.nextArg()
			if rest != "" {
				s.Arg, s.HasArg = rest, true
			} else if s.Index < len(args) {
				s.Arg, s.HasArg = args[s.Index], true
				s.Index++
			} else {
				Logger.Printf("missing argument for %q", c)
				s.Optopt = c
				return Result{Kind: MissingArgument, Opt: c}
			}
			return Result{Kind: Option, Opt: c, Arg: s.Arg, HasArg: true}
		}
	}
}

// advance - Moves past a letter of size bytes, leaving the cluster when it is exhausted.
func (s *State) advance(arg string, size int) {
	s.cursor += size
	if s.cursor >= len(arg) {
		s.nextArg()
	}
}

func (s *State) nextArg() {
	s.Index++
	s.cursor = 0
}
