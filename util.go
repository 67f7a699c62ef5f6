package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// dirExists reports whether path is an existing directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logWarn("Cannot stat %s: %v", path, err)
		}
		return false
	}
	return info.IsDir()
}

var uptimeUnits = []struct {
	name string
	size time.Duration
}{
	{"hour", time.Hour},
	{"minute", time.Minute},
	{"second", time.Second},
}

// formatUptime spells out d starting at its largest non-zero unit, e.g.
// "1 minute, 5 seconds".
func formatUptime(d time.Duration) string {
	var parts []string
	for i, u := range uptimeUnits {
		n := int(d / u.size)
		d -= time.Duration(n) * u.size
		if n == 0 && len(parts) == 0 && i < len(uptimeUnits)-1 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s%s", n, u.name, plural(n)))
	}
	return strings.Join(parts, ", ")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// getEnvString reads a string from the environment or returns a fallback.
func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvDuration parses a Go duration such as "90m"; bad values fall back.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		logWarn("Invalid duration for %s: %v, using default %v", key, err, fallback)
		return fallback
	}
	return d
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		logWarn("Invalid int for %s: %v, using default %d", key, err, fallback)
		return fallback
	}
	return i
}

// setupLogging configures the global zerolog logger.
func setupLogging(level string, production bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339
	if !production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func logInfo(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func logWarn(format string, v ...any) {
	log.Warn().Msgf(format, v...)
}

// logFatal exits the process.
func logFatal(format string, v ...any) {
	log.Fatal().Msgf(format, v...)
}
