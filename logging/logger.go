// Package logging creates pre-configured logrus loggers for jsontree
// components. The TUI owns the terminal while it runs, so loggers default to
// a per-day file sink; stderr is only added when it is not a terminal (e.g.
// output is piped to a file) or when explicitly requested.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// cfg is the logging section applied by Configure; zero value until then.
	cfg   Config
	cfgMu sync.Mutex
)

// Configure applies the logging section of the loaded configuration. Loggers
// created before Configure keep their settings; call it before NewLogger.
func Configure(c Config) {
	cfgMu.Lock()
	cfg = c
	cfgMu.Unlock()
}

// NewLogger creates and returns a pre-configured logger for a specific
// component. One logger per component name; repeated calls return the same
// entry.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	cfgMu.Lock()
	logCfg := cfg
	cfgMu.Unlock()

	logger := logrus.New()

	// Level: env wins over config, default info.
	levelStr := "info"
	if env := os.Getenv("JSONTREE_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("JSONTREE_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{
			Config:       logCfg.Format,
			DisableColor: !isatty.IsTerminal(os.Stderr.Fd()),
		})
	}

	var writers []io.Writer
	if file := openLogFile(component, logCfg); file != nil {
		writers = append(writers, file)
	}
	if os.Getenv("JSONTREE_LOG_STDERR") == "true" || !isatty.IsTerminal(os.Stderr.Fd()) {
		writers = append(writers, os.Stderr)
	}
	if len(writers) == 0 {
		logger.SetOutput(io.Discard)
	} else {
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// openLogFile opens the configured log file, or the default per-day file
// under the user cache dir. Failures are silent unless the sink was
// explicitly configured; logging must never take the viewer down.
func openLogFile(component string, logCfg Config) io.Writer {
	var path string
	if logCfg.File.Enabled && logCfg.File.Path != "" {
		path = expandPath(logCfg.File.Path)
	} else {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil
		}
		date := time.Now().Format("2006-01-02")
		path = filepath.Join(cacheDir, "jsontree", "logs", fmt.Sprintf("%s-%s.log", component, date))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		if logCfg.File.Enabled {
			fmt.Fprintf(os.Stderr, "jsontree: cannot create log directory: %v\n", err)
		}
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		if logCfg.File.Enabled {
			fmt.Fprintf(os.Stderr, "jsontree: cannot open log file: %v\n", err)
		}
		return nil
	}
	return file
}

func expandPath(path string) string {
	if len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
