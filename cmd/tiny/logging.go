package main

import (
	"log/slog"
	"os"
)

// newLogger builds the driver's structured logger. The scanner, cursor,
// parser, and tree packages never log — parsing is a pure function from
// source text to a tree, and logging belongs to the layer that decides
// what to do with the result.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}
