package main

import (
	"log"
	"os"
	"path/filepath"
)

// configureRuntimeLogger sends the standard logger to a file, since the TUI
// owns the terminal. An empty path means ~/.local/state/bitdrill/bitdrill.log.
// Any failure falls back to stderr.
func configureRuntimeLogger(logPath string) func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if logPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.SetOutput(os.Stderr)
			return func() {}
		}
		logPath = filepath.Join(home, ".local", "state", "bitdrill", "bitdrill.log")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}
