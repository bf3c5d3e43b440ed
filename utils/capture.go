package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/yosupo06/fmtbuf/config"
	"github.com/yosupo06/fmtbuf/truncbuf"
)

var (
	captureCmd  = app.Command("capture", "Run a command and keep at most capacity bytes of its stderr")
	captureArgs = captureCmd.Arg("cmd", "Command and arguments").Required().Strings()
)

// runCapture runs name with args, streaming stdout to stdout and keeping
// stderr in w.
func runCapture(ctx context.Context, w *truncbuf.LimitedWriter, stdout io.Writer, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = w

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

func execCaptureCmd(c config.Config) int {
	args := *captureArgs
	w := truncbuf.NewLimitedWriterWithMarker(c.Capacity, c.Marker)

	code, err := runCapture(context.Background(), w, os.Stdout, args[0], args[1:]...)
	if err != nil {
		slog.Error("Failed to execute", "cmd", args[0], "err", err)
		return 1
	}
	os.Stderr.Write(w.Bytes())
	if w.Truncated() {
		slog.Warn("Stderr stripped", "capacity", c.Capacity)
	}
	return code
}
