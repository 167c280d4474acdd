package getopt

import (
	"testing"
)

func TestGetopt(t *testing.T) {
	logTestOutput := setupTestLogging(t)
	defer logTestOutput()
	buf, restore := setupWriter()
	defer restore()
	Reset()
	defer Reset()

	args := []string{"prog", "-a", "-ofile", "-b", "value", "x"}
	expected := []struct {
		c      rune
		optarg string
		optind int
	}{
		{'a', "", 2},
		{'o', "file", 3},
		{'b', "value", 5},
		{-1, "", 5},
		{-1, "", 5},
	}
	for i, e := range expected {
		c := Getopt(args, "ao:b:")
		if c != e.c || Optarg() != e.optarg || Optind() != e.optind {
			t.Errorf("step %d: got (%q, %q, %d), want (%q, %q, %d)",
				i, c, Optarg(), Optind(), e.c, e.optarg, e.optind)
		}
	}
	if buf.String() != "" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestGetoptErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		optstring string
		opterr    bool
		c         rune
		optopt    rune
		output    string
	}{
		{"unknown", []string{"/usr/bin/prog", "-z"}, "a", true, '?', 'z', "prog: illegal option -- z\n"},
		{"unknown quiet", []string{"prog", "-z"}, "a", false, '?', 'z', ""},
		{"unknown silent", []string{"prog", "-z"}, ":a", true, '?', 'z', ""},
		{"missing", []string{"prog", "-o"}, "o:", true, '?', 'o', "prog: option requires an argument -- o\n"},
		{"missing quiet", []string{"prog", "-o"}, "o:", false, '?', 'o', ""},
		{"missing silent", []string{"prog", "-o"}, ":o:", true, ':', 'o', ""},
		{"missing silent quiet", []string{"prog", "-o"}, ":o:", false, ':', 'o', ""},
		{"no program name", []string{"-z"}, "a", true, -1, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, restore := setupWriter()
			defer restore()
			Reset()
			defer Reset()

			SetOpterr(tt.opterr)
			c := Getopt(tt.args, tt.optstring)
			if c != tt.c {
				t.Errorf("wrong return: got %q, want %q", c, tt.c)
			}
			if Optopt() != tt.optopt {
				t.Errorf("wrong optopt: got %q, want %q", Optopt(), tt.optopt)
			}
			if buf.String() != tt.output {
				t.Errorf("wrong output: got %q, want %q", buf.String(), tt.output)
			}
		})
	}
}

func TestGetoptRestart(t *testing.T) {
	Reset()
	defer Reset()

	args := []string{"prog", "-ab", "--", "-a"}
	run := func() []rune {
		got := []rune{}
		for {
			c := Getopt(args, "ab")
			got = append(got, c)
			if c == -1 {
				return got
			}
		}
	}
	first := run()
	if Optind() != 3 {
		t.Errorf("wrong optind: %d", Optind())
	}
	SetOptind(1)
	second := run()
	if string(first) != string(second) || string(first[:2]) != "ab" {
		t.Errorf("restart mismatch: %q %q", first, second)
	}

	SetOptind(3)
	if c := Getopt(args, "ab"); c != 'a' {
		t.Errorf("wrong option after moving optind: %q", c)
	}

	SetOptind(0)
	if Optind() != 1 {
		t.Errorf("wrong optind after setting 0: %d", Optind())
	}
	third := run()
	if string(first) != string(third) {
		t.Errorf("restart from 0 mismatch: %q %q", first, third)
	}
}

func TestSetOptindZeroSkipsProgramName(t *testing.T) {
	Reset()
	defer Reset()
	buf, restore := setupWriter()
	defer restore()

	args := []string{"-x", "-a"}
	SetOptind(0)
	if c := Getopt(args, "a"); c != 'a' {
		t.Errorf("wrong option: got %q, want 'a'", c)
	}
	if buf.String() != "" {
		t.Errorf("program name scanned as an option: %q", buf.String())
	}
}

func TestReset(t *testing.T) {
	SetOpterr(false)
	Getopt([]string{"prog", "-a"}, "a")
	Reset()
	if !Opterr() || Optind() != 1 || Optarg() != "" || Optopt() != 0 {
		t.Errorf("state not reset: %v %d %q %q", Opterr(), Optind(), Optarg(), Optopt())
	}
}
