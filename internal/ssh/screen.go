package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPty is returned when a client connects without requesting a PTY.
var ErrNoPty = errors.New("session has no pty")

// DefaultTerm is used when the client does not send TERM.
const DefaultTerm = "xterm-256color"

// termMu protects os.Setenv("TERM") around screen creation; terminfo is
// looked up from the process environment.
var termMu sync.Mutex

// Term returns the TERM the client sent, or "" if it sent none.
func Term(s gossh.Session) string {
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			return env[5:]
		}
	}
	return ""
}

// NewScreen creates and initializes a tcell screen that reads from and
// draws to s using the terminal description for term.
func NewScreen(s gossh.Session, term string) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}
	if term == "" {
		term = DefaultTerm
	}

	tty := NewSessionTty(s, pty, winCh)
	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup for %s: %w", term, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
