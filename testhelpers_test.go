package getopt

import (
	"bytes"
	"errors"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// setupWriter - Redirects Writer to a buffer and returns it along with a
// function that restores the previous Writer.
func setupWriter() (*bytes.Buffer, func()) {
	buf := &bytes.Buffer{}
	prev := Writer
	Writer = buf
	return buf, func() { Writer = prev }
}

// scanAll - Calls Next until the End result, which is included in the returned list.
func scanAll(t *testing.T, s *State, args []string, optstring string) []Result {
	t.Helper()
	results := []Result{}
	limit := 2
	for _, a := range args {
		limit += len(a) + 1
	}
	for i := 0; i < limit; i++ {
		r := s.Next(args, optstring)
		results = append(results, r)
		if r.Kind == End {
			return results
		}
	}
	t.Fatalf("no End result for %q", args)
	return results
}
