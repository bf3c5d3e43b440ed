package main

import (
	"fmt"
	"log/slog"

	"github.com/yosupo06/fmtbuf/config"
	"github.com/yosupo06/fmtbuf/truncbuf"
)

var (
	fmtCmd    = app.Command("fmt", "Format arguments into a fixed size buffer")
	fmtFormat = fmtCmd.Arg("format", "Format string").Required().String()
	fmtArgs   = fmtCmd.Arg("args", "Format arguments").Strings()
)

func formatArgs(capacity int, format string, args []string) (string, bool) {
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = arg
	}
	return truncbuf.Sprintf(capacity, format, values...)
}

func execFmtCmd(c config.Config) int {
	s, truncated := formatArgs(c.Capacity, *fmtFormat, *fmtArgs)
	fmt.Println(s)
	if truncated {
		slog.Warn("Output truncated", "capacity", c.Capacity)
		return TRUNCATED_EXIT_CODE
	}
	return 0
}
