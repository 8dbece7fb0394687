// maze-friend-server hosts maze-friend over SSH. Every connection gets its
// own maze and its own friend. Build:
//
//	go build -o maze-friend-server ./cmd/server
//
// Usage:
//
//	./maze-friend-server [-port 2222] [-key server_host_key] [-config game.yaml]
//
// Connect with:
//
//	ssh -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"maze-friend/internal/config"
	"maze-friend/internal/game"
	"maze-friend/internal/settings"
	internalssh "maze-friend/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/time/rate"
)

// maxNameBytes bounds the SSH user name recorded in logs and run files.
const maxNameBytes = 16

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	cfgFile := flag.String("config", "", "Game config YAML (embedded default if empty)")
	rps := flag.Float64("rate", 2, "Chat lines per second allowed per player")
	burst := flag.Int("burst", 4, "Chat line burst per player")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	h := &handler{
		cfg:    cfg,
		logger: logger,
		limit:  rate.Limit(*rps),
		burst:  *burst,
	}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone may play.
		HostSigners: []gossh.Signer{signer},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", "error", err)
		}
	}()

	logger.Info("maze-friend SSH server listening", "port", *port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// handler starts one game per SSH session.
type handler struct {
	cfg    *config.Config
	logger *slog.Logger
	limit  rate.Limit
	burst  int
	active atomic.Int32
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	name := sanitizeName(s.User())
	log := h.logger.With("user", name, "remote", s.RemoteAddr().String())

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPty) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if err != nil {
		log.Warn("screen setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	n := h.active.Add(1)
	defer h.active.Add(-1)
	log.Info("player connected", "active", n)

	g, err := game.New(screen, game.Options{
		Config:   h.cfg,
		Sound:    settings.Default(),
		Seed:     time.Now().UnixNano(),
		Player:   name,
		Logger:   log,
		Limiter:  rate.NewLimiter(h.limit, h.burst),
		SaveRuns: true,
	})
	if err != nil {
		log.Error("new game", "error", err)
		return
	}
	if err := g.Run(s.Context()); err != nil {
		log.Warn("game ended with error", "error", err)
	}
	log.Info("player disconnected", "scene", g.Scene())
}

// sanitizeName strips control characters from an SSH user name and limits
// it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "maze-friend server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		// The key still works for this run.
		logger.Warn("cannot persist host key", "path", path, "error", err)
	}
	return signer, nil
}
