// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import "unicode/utf8"

// ArgRequirement - Indicates whether an option letter takes a value.
type ArgRequirement int

// Value requirements, from the colons that follow a letter in the option string.
const (
	NoArgument       ArgRequirement = iota // "a"
	RequiredArgument                       // "a:"
	OptionalArgument                       // "a::"
)

func (a ArgRequirement) String() string {
	switch a {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	}
	return "unknown"
}

// letter - A decoded option letter.
// Bytes that are not valid UTF-8 are kept as raw so 0xff never matches 'ÿ'.
type letter struct {
	c   rune
	raw bool
}

// decodeLetter - Decodes the letter at the start of s and returns its size in bytes.
// An invalid UTF-8 byte is returned as itself.
func decodeLetter(s string) (letter, int) {
	c, size := utf8.DecodeRuneInString(s)
	if c == utf8.RuneError && size == 1 {
		return letter{c: rune(s[0]), raw: true}, 1
	}
	return letter{c: c}, size
}

// lookup - Finds the option letter l in optstring.
//
// ':' is a delimiter and never a letter. Colons that don't follow a letter
// are ignored, as is any colon after the second one.
func lookup(optstring string, l letter) (ArgRequirement, bool) {
	if l == (letter{c: ':'}) {
		return NoArgument, false
	}
	for i := 0; i < len(optstring); {
		r, size := decodeLetter(optstring[i:])
		i += size
		if r == (letter{c: ':'}) {
			continue
		}
		colons := 0
		for i < len(optstring) && optstring[i] == ':' {
			colons++
			i++
		}
		if r != l {
			continue
		}
		switch colons {
		case 0:
			return NoArgument, true
		case 1:
			return RequiredArgument, true
		default:
			return OptionalArgument, true
		}
	}
	return NoArgument, false
}
