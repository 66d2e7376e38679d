// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/AronAlberts/HR-elections/session"
	"github.com/AronAlberts/HR-elections/testutil"
)

// runScript feeds input to a console over the standard dataset and returns
// everything it wrote
func runScript(t *testing.T, input string) string {
	t.Helper()

	fs := testutil.SetupElectionFS(t)
	sess := session.New(fs, testutil.GetTestConfig(), testutil.DiscardLogger())

	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, sess, testutil.DiscardLogger())
	if err := c.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestRun_FullSession(t *testing.T) {
	out := runScript(t, "1\n\n2\n\n3\n\nRiverside\n9\n")

	wants := []string{
		"File name [constituencies.txt]: ",
		"File name [parties.txt]: ",
		"File name for results [results.txt]: ",
		"Constituency: ",
		"Total:                     650\n",
		"B                           Beta\n",
		"Riverside\nList",
		"Turnout:                                            50.0\n",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRun_LoadedDataIsNotAskedAgain(t *testing.T) {
	out := runScript(t, "1\n\n1\n9\n")

	if got := strings.Count(out, "File name [constituencies.txt]: "); got != 1 {
		t.Errorf("file prompt shown %d times, want 1\n%s", got, out)
	}
	if got := strings.Count(out, "Electorals"); got != 2 {
		t.Errorf("table shown %d times, want 2", got)
	}
}

func TestRun_Messages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "results before reference data",
			input: "3\n\n9\n",
			want:  "Load constituencies (1) and parties (2) before results.\n",
		},
		{
			name:  "missing file",
			input: "1\nnope.txt\n9\n",
			want:  "Could not read file: ",
		},
		{
			name:  "unknown constituency",
			input: "1\n\n2\n\n3\n\nAtlantis\n9\n",
			want:  "No such constituency: Atlantis\n",
		},
		{
			name:  "second lookup uses loaded results",
			input: "1\n\n2\n\n3\n\nAtlantis\n3\nLakeside\n9\n",
			want:  "Turnout:                                            40.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runScript(t, tt.input)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q\n%s", tt.want, out)
			}
		})
	}
}

func TestRun_UnknownChoiceShowsMenuAgain(t *testing.T) {
	out := runScript(t, "7\nhello\n9\n")

	if got := strings.Count(out, "Select an action: "); got != 3 {
		t.Errorf("menu shown %d times, want 3", got)
	}
	if strings.Contains(out, "Error") {
		t.Errorf("unknown choice should print nothing extra\n%s", out)
	}
}

func TestRun_EndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"at file prompt", "1\n"},
		{"at constituency prompt", "1\n\n2\n\n3\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// runScript fails the test if Run returns an error
			runScript(t, tt.input)
		})
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestRun_WriteError(t *testing.T) {
	sess := session.New(testutil.SetupElectionFS(t), testutil.GetTestConfig(), testutil.DiscardLogger())
	c := New(strings.NewReader("9\n"), failingWriter{}, sess, testutil.DiscardLogger())

	if err := c.Run(); !errors.Is(err, errWrite) {
		t.Errorf("Run() error = %v, want %v", err, errWrite)
	}
}
