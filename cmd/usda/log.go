package main

import (
	"log/slog"
	"os"
)

// theLog reports what the CLI wrote. Output is plain "msg=... key=val"
// lines on stderr so that it never mixes with a stage on stdout.
var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	ReplaceAttr: quietAttrs,
}))

// quietAttrs drops the timestamp and the level of informational records.
func quietAttrs(_ []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey:
		return slog.Attr{}
	case a.Key == slog.LevelKey && a.Value.String() == slog.LevelInfo.String():
		return slog.Attr{}
	}
	return a
}
