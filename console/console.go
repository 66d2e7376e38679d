// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/AronAlberts/HR-elections/election"
	"github.com/AronAlberts/HR-elections/report"
	"github.com/AronAlberts/HR-elections/session"
)

type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	sess *session.Session
	log  *slog.Logger
	menu map[string]Action
}

func New(in io.Reader, out io.Writer, sess *session.Session, logger *slog.Logger) *Console {
	c := &Console{
		in:   bufio.NewScanner(in),
		out:  out,
		sess: sess,
		log:  logger.With("session", sess.ID),
	}
	c.menu = NewMenu(c)
	return c
}

// Run shows the menu until the user quits or the input ends.
// Errors from actions are reported to the user and never end the loop;
// only a failure to read input or write output is returned.
func (c *Console) Run() error {
	for {
		choice, err := c.ask(menuText)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == Quit {
			return nil
		}

		action, ok := c.menu[choice]
		if !ok {
			continue
		}

		err = action()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if werr := c.fail(err); werr != nil {
				return werr
			}
		}
	}
}

func (c *Console) showConstituencies() error {
	dir, err := c.sess.Constituencies()
	if err != nil {
		path, err := c.askFile("File name", c.sess.Config().ConstituenciesFile)
		if err != nil {
			return err
		}
		if dir, err = c.sess.LoadConstituencies(path); err != nil {
			return err
		}
	}
	return report.Constituencies(c.out, dir)
}

func (c *Console) showParties() error {
	dir, err := c.sess.Parties()
	if err != nil {
		path, err := c.askFile("File name", c.sess.Config().PartiesFile)
		if err != nil {
			return err
		}
		if dir, err = c.sess.LoadParties(path); err != nil {
			return err
		}
	}
	return report.Parties(c.out, dir)
}

func (c *Console) showResults() error {
	if _, err := c.sess.Results(); err != nil {
		path, err := c.askFile("File name for results", c.sess.Config().ResultsFile)
		if err != nil {
			return err
		}
		if _, err := c.sess.LoadResults(path); err != nil {
			return err
		}
	}

	name, err := c.ask("Constituency: ")
	if err != nil {
		return err
	}

	rep, err := c.sess.Report(name)
	if errors.Is(err, election.ErrNotFound) {
		_, werr := fmt.Fprintf(c.out, "No such constituency: %s\n", name)
		return werr
	}
	if err != nil {
		return err
	}

	return report.Results(c.out, rep)
}

// ask prints a prompt and reads one line of input
func (c *Console) ask(prompt string) (string, error) {
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// askFile asks for a file name, an empty answer picks def
func (c *Console) askFile(label, def string) (string, error) {
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, def)
	}

	path, err := c.ask(prompt)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = def
	}
	return path, nil
}

// fail tells the user why an action produced no table
func (c *Console) fail(err error) error {
	var msg string
	switch {
	case errors.Is(err, session.ErrReferenceDataMissing):
		msg = "Load constituencies (1) and parties (2) before results."
	case errors.Is(err, election.ErrEmptyPartyDirectory):
		msg = "The parties file has no lists, results cannot be read."
	case errors.Is(err, election.ErrFileUnavailable):
		msg = fmt.Sprintf("Could not read file: %v", err)
	default:
		msg = fmt.Sprintf("Error: %v", err)
	}

	_, werr := fmt.Fprintln(c.out, msg)
	return werr
}
