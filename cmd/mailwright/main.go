// cmd/mailwright/main.go
package main

import (
	"fmt"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"
	"path/filepath"

	"github.com/solenne/mailwright/internal/app"
	"github.com/solenne/mailwright/internal/config"
	"github.com/solenne/mailwright/internal/logger"
)

func main() {
	// --- Flag Parsing ---
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	// --- Configuration Loading (defaults, file, flag overrides) ---
	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Warning: problem loading configuration: %v", err)
	}
	if cfg == nil {
		stlog.Fatalf("Configuration could not be loaded")
	}

	// --- Logger Initialization ---
	// The TUI owns the terminal, so logs go to a file unless "-" explicitly
	// asks for stderr.
	var logOutput *os.File
	switch cfg.Logger.LogFilePath {
	case "-":
		logOutput = os.Stderr
	default:
		logPath := cfg.Logger.LogFilePath
		if logPath == "" {
			if configDir, dirErr := os.UserConfigDir(); dirErr == nil {
				logPath = filepath.Join(configDir, config.ConfigDirName, config.DefaultLogFileName)
				_ = os.MkdirAll(filepath.Dir(logPath), 0755)
			} else {
				logPath = config.DefaultLogFileName
			}
		}
		logFile, openErr := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if openErr != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", logPath, openErr)
		}
		defer logFile.Close()
		logOutput = logFile
	}

	logger.InitWithConfig(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if len(args) > 0 {
		// The composer always starts on the seeded or blank mail; there is
		// no file to open.
		logger.Warnf("Ignoring positional arguments: %v", args)
	}

	// --- Create and Run App ---
	startBlank := flags.Blank != nil && *flags.Blank
	mailApp, err := app.NewApp(cfg, startBlank)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := mailApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
