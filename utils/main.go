package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/yosupo06/fmtbuf/config"
)

const TRUNCATED_EXIT_CODE = 3

var (
	app        = kingpin.New("fmtbuf", "Fixed capacity format buffer utils")
	configPath = app.Flag("config", "Path of config toml").Envar("FMTBUF_CONFIG").String()
	capacity   = app.Flag("capacity", "Buffer capacity in bytes (overrides config)").Default("-1").Int()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	c, err := loadConfig()
	if err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}

	switch cmd {
	case fmtCmd.FullCommand():
		os.Exit(execFmtCmd(c))
	case captureCmd.FullCommand():
		os.Exit(execCaptureCmd(c))
	}
}

func loadConfig() (config.Config, error) {
	c, err := config.Load(*configPath)
	if err != nil {
		return config.Config{}, err
	}
	if *capacity >= 0 {
		c.Capacity = *capacity
		if err := c.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return c, nil
}
