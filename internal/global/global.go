// Package global holds the process wide setup for klefki binaries: config, logging and rng.
package global

import (
	"io"
	"math/rand/v2"

	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/klefki/battle"
	"github.com/nathanieltooley/klefki/core"
	"github.com/nathanieltooley/klefki/dex"
	"github.com/nathanieltooley/klefki/loader"
	"github.com/nathanieltooley/klefki/owned"
	"github.com/nathanieltooley/klefki/script"
	"github.com/nathanieltooley/klefki/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging sets up the global zerolog logger to write to the rolling log in config.LogDir,
// and to console as well when it isn't nil. Every library package gets a logr view of the same logger.
func InitLogging(config Config, console io.Writer) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	}

	rollingWriter, err := NewRollingFileWriter(config.LogDir, "klefki")
	if err != nil {
		return zerolog.Nop(), err
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}}
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: console})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().Level(level)
	log.Logger = logger
	SetLibraryLoggers(logger, config.Debug)

	return logger, nil
}

// SetLibraryLoggers bridges logger into every package's internal logr logger.
// Verbose library logs (V(1) and up) only come through in debug mode.
func SetLibraryLoggers(logger zerolog.Logger, debug bool) {
	if debug {
		zerologr.SetMaxV(2)
	} else {
		zerologr.SetMaxV(0)
	}

	libraryLogger := zerologr.New(&logger)
	dex.SetInternalLogger(libraryLogger)
	core.SetInternalLogger(libraryLogger)
	owned.SetInternalLogger(libraryLogger)
	battle.SetInternalLogger(libraryLogger)
	script.SetInternalLogger(libraryLogger)
	loader.SetInternalLogger(libraryLogger)
	store.SetInternalLogger(libraryLogger)
}

// NewRNG uses the configured seed when there is one so runs can be replayed
func NewRNG(config Config) *rand.Rand {
	if config.Seed != 0 {
		return core.SeededRNG(config.Seed, config.Seed)
	}

	seed := core.CreateRandomSeed()
	return core.CreateRNG(&seed)
}
