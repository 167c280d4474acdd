// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"errors"
	"fmt"

	"github.com/DavidGamba/go-getopt/text"
)

// ErrorUnknownOption - Indicates that the option letter is not in the option string.
var ErrorUnknownOption = errors.New("")

// ErrorMissingArgument - Indicates that an option requiring a value didn't get one.
var ErrorMissingArgument = errors.New("")

// Err - Returns the error described by the result or nil for End and Option results.
// Use errors.Is to check for ErrorUnknownOption or ErrorMissingArgument.
func (r Result) Err() error {
	switch r.Kind {
	case Unknown:
		return fmt.Errorf(text.ErrorUnknownOption+"%w", r.Opt, ErrorUnknownOption)
	case MissingArgument:
		return fmt.Errorf(text.ErrorMissingArgument+"%w", r.Opt, ErrorMissingArgument)
	}
	return nil
}
