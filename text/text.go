// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// They are variables so they can be translated or replaced.
package text

// ErrorUnknownOption holds the text for an option letter not present in the option string.
// It has a rune placeholder '%c' for the offending letter.
var ErrorUnknownOption = "illegal option -- %c"

// ErrorMissingArgument holds the text for a required value that could not be found.
// It has a rune placeholder '%c' for the option letter.
var ErrorMissingArgument = "option requires an argument -- %c"

// DiagnosticPrefix is prepended to diagnostics written by the legacy Getopt interface.
// It has a string placeholder '%s' for the program name.
var DiagnosticPrefix = "%s: "
