package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/nbodysim/pointgen/app"
	"github.com/nbodysim/pointgen/buildinfo"
	"golang.org/x/exp/rand"
)

// //////////////////////////////////////////////////////////////////////////////
// commandLineArgs
type commandLineArgs struct {
	logLevelValue int
	positional    []string
}

func (cla *commandLineArgs) parseCommandLine(program string) error {
	logLevelString := ""

	flag.StringVar(&logLevelString, "level", "WARN", "Logging verbosity level. Must be one of: {DEBUG, INFO, WARN, ERROR}.")
	flag.Usage = func() {
		app.PrintUsage(flag.CommandLine.Output(), program)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Parse the verbosity level
	switch strings.ToLower(logLevelString) {
	case "debug":
		cla.logLevelValue = int(slog.LevelDebug)
	case "info":
		cla.logLevelValue = int(slog.LevelInfo)
	case "warn":
		cla.logLevelValue = int(slog.LevelWarn)
	case "error":
		cla.logLevelValue = int(slog.LevelError)
	default:
		return fmt.Errorf("invalid log level specified: %s", logLevelString)
	}
	cla.positional = flag.Args()
	return nil
}

// //////////////////////////////////////////////////////////////////////////////
//
// _ __  __ _(_)_ _
// | '  \/ _` | | ' \
// |_|_|_\__,_|_|_||_|
//
// //////////////////////////////////////////////////////////////////////////////
func main() {
	lvl := &slog.LevelVar{}
	lvl.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	program := filepath.Base(os.Args[0])
	cla := commandLineArgs{}
	parseError := cla.parseCommandLine(program)
	if parseError != nil {
		logger.Error("Failed to parse command line arguments", "error", parseError)
		os.Exit(-1)
	}
	lvl.Set(slog.Level(cla.logLevelValue))
	logger.Info("Welcome to pointgen!",
		"version", buildinfo.BuildInfo(),
		"go", runtime.Version())

	src := rand.NewSource(uint64(time.Now().UnixNano()))
	runErr := app.Run(cla.positional, program, os.Stdout, src, logger)
	if runErr != nil {
		logger.Error("Failed to generate pattern", "error", runErr)
		os.Exit(-1)
	}
}
