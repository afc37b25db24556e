// Package apptest runs the rehearsal API in-process for tests.
package apptest

import (
	"io"
	"net"
	"testing"

	"github.com/sirupsen/logrus"

	app "uni-seeder/internal"
	"uni-seeder/internal/config/env"
	"uni-seeder/internal/config/validation"
	"uni-seeder/internal/config/web"
)

// Server is a running rehearsal API bound to a loopback port.
type Server struct {
	URL    string
	Config *env.Config
}

// Start serves a fresh, empty rehearsal API until the test ends. Options
// adjust the config before the app is built.
func Start(t testing.TB, options ...func(*env.Config)) *Server {
	t.Helper()

	cfg := &env.Config{}
	cfg.App.Name = "rehearsal-test"
	cfg.FakeAPI.JWTSecret = "apptest-secret"
	for _, option := range options {
		option(cfg)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	fiberApp := web.NewFiber(log, cfg)
	server := app.NewApp(log, cfg, fiberApp, validation.NewValidation())
	server.Bootstrap()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = fiberApp.Listener(ln) }()
	t.Cleanup(func() { _ = server.Shutdown() })

	return &Server{URL: "http://" + ln.Addr().String(), Config: cfg}
}

func UniqueNames(cfg *env.Config) {
	cfg.FakeAPI.UniqueNames = true
}

func RequireAdmin(cfg *env.Config) {
	cfg.FakeAPI.RequireAdmin = true
}
