// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

// Scanner - Iterates over the options of a single parse session.
//
// A Scanner can't be restarted, build a new one to scan the same args again.
//
//	sc := getopt.NewScanner(os.Args, "vo:", getopt.Permute())
//	for sc.Next() {
//		r := sc.Value()
//		// ...
//	}
//	if err := sc.Err(); err != nil {
//		// ...
//	}
//	positional := sc.Remaining()
type Scanner struct {
	args        []string
	optstring   string
	state       *State
	value       Result
	err         error
	permute     bool
	stopOnError bool
	positional  []string
	done        bool
}

// ScannerOption - Functional option for NewScanner.
type ScannerOption func(*Scanner)

// Permute - Keep scanning past positional arguments, collecting them for Remaining.
// Permutation stops at `--`.
func Permute() ScannerOption {
	return func(sc *Scanner) { sc.permute = true }
}

// StopOnError - Stop the iteration on the first Unknown or MissingArgument result.
func StopOnError() ScannerOption {
	return func(sc *Scanner) { sc.stopOnError = true }
}

// WithState - Use the given State instead of a fresh one.
// Allows resuming a session started with State.Next.
func WithState(s *State) ScannerOption {
	return func(sc *Scanner) { sc.state = s }
}

// NewScanner - Builds a Scanner over args, where args[0] is the program name.
func NewScanner(args []string, optstring string, opts ...ScannerOption) *Scanner {
	sc := &Scanner{args: args, optstring: optstring}
	for _, opt := range opts {
		opt(sc)
	}
	if sc.state == nil {
		sc.state = NewState()
	}
	return sc
}

// Next - Moves to the next option and returns a bool to indicate if there is one.
func (sc *Scanner) Next() bool {
	if sc.done {
		return false
	}
	for {
		r := sc.state.Next(sc.args, sc.optstring)
		if r.Kind == End {
			if sc.permute && !sc.state.terminated && sc.state.Index < len(sc.args) {
				Logger.Printf("permute %q", sc.args[sc.state.Index])
				sc.positional = append(sc.positional, sc.args[sc.state.Index])
				sc.state.Index++
				continue
			}
			sc.value = r
			sc.done = true
			return false
		}
		sc.value = r
		if err := r.Err(); err != nil {
			if sc.err == nil {
				sc.err = err
			}
			if sc.stopOnError {
				sc.done = true
				return false
			}
		}
		return true
	}
}

// Value - Returns the current result.
// After Next returns false it is the End result, or the failing result when
// StopOnError is set.
func (sc *Scanner) Value() Result {
	return sc.value
}

// Err - Returns the first error found while scanning.
func (sc *Scanner) Err() error {
	return sc.err
}

// Index - Returns the index of the next element of args to be processed.
func (sc *Scanner) Index() int {
	return sc.state.Index
}

// State - Returns the underlying State.
func (sc *Scanner) State() *State {
	return sc.state
}

// Remaining - Returns the positional arguments: the ones collected while
// permuting followed by the unscanned tail of args.
func (sc *Scanner) Remaining() []string {
	tail := []string{}
	if sc.state.Index < len(sc.args) {
		tail = sc.args[sc.state.Index:]
	}
	if len(sc.positional) == 0 {
		return tail
	}
	remaining := make([]string, 0, len(sc.positional)+len(tail))
	remaining = append(remaining, sc.positional...)
	return append(remaining, tail...)
}
