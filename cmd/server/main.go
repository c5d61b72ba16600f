// grid-inventory-server serves one independent inventory session to every
// SSH client. Build:
//
//	go build -o grid-inventory-server ./cmd/server
//
// Usage:
//
//	./grid-inventory-server [--port 2222] [--key server_host_key] [--config inventory.yaml]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"unicode"
	"unicode/utf8"

	"grid-inventory/internal/config"
	"grid-inventory/internal/game"
	internalssh "grid-inventory/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes caps the player name shown in the message log.
const maxNameBytes = 16

// allowedTerms lists the TERM values clients may select. Anything else falls
// back to internalssh.DefaultTerm so a client cannot point terminfo lookup at
// arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	cfgFile := flag.String("config", "", "Path to a YAML inventory config (built-in catalog if empty)")
	flag.Parse()

	cfg := config.Default()
	if *cfgFile != "" {
		var err error
		if cfg, err = config.Load(*cfgFile); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	// Sound would play on the server host, not the client.
	cfg.Audio.Enabled = false

	signer := loadOrCreateHostKey(*keyFile)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg, logger)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; appropriate for a private home server.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("grid-inventory SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the session so the SSH channel stays open. Sessions
// share nothing but the read-only config.
func handleSession(s gossh.Session, cfg *config.Config, logger *slog.Logger) {
	name := sanitizeName(s.User())
	sessLog := logger.With("user", name, "remote", s.RemoteAddr().String())

	term := internalssh.Term(s)
	if !allowedTerms[term] {
		if term != "" {
			sessLog.Warn("unsupported TERM, using default", "term", term)
		}
		term = internalssh.DefaultTerm
	}

	screen, err := internalssh.NewScreen(s, term)
	if err != nil {
		if errors.Is(err, internalssh.ErrNoPty) {
			fmt.Fprintln(s, "This program requires a PTY. Connect with: ssh -t -p 2222 <host>")
		} else {
			fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		}
		sessLog.Warn("session rejected", "err", err)
		return
	}

	g, err := game.New(screen, cfg, game.WithLogger(sessLog), game.WithPlayerName(name))
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Inventory setup failed: %v\n", err)
		sessLog.Error("session setup failed", "err", err)
		return
	}
	sessLog.Info("session started", "term", term)
	g.Run()
}

// sanitizeName strips control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(s string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range s {
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "grid-inventory server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
