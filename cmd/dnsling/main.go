package main

import (
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/okastran/dnsling/internal/config"
	"github.com/okastran/dnsling/internal/server"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var configFile string
	flag.StringVar(&configFile, "config", "dnsling.yaml", "Configuration file path")
	flag.StringVar(&configFile, "c", "dnsling.yaml", "Configuration file path (shorthand)")
	flag.Parse()

	loader := config.NewLoader()
	loader.SetConfigPaths([]string{configFile})

	if path, err := loader.FindConfigFile(); err == nil {
		log.Info().Str("path", path).Msg("Loading configuration")
	} else {
		log.Warn().Msg("No configuration file found, using defaults")
	}

	cfg, err := loader.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	setupLogging(&cfg.Logging)

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create DNS server")
	}

	log.Info().Str("address", srv.Addr().String()).Msg("Waiting for a datagram")

	if err := srv.ServeOnce(); err != nil {
		log.Fatal().Err(err).Msg("Serve cycle failed")
	}

	if err := srv.Close(); err != nil {
		log.Warn().Err(err).Msg("Error closing server")
	}

	log.Info().Msg("Server stopped")
}

// setupLogging replaces the global logger with one matching the logging
// configuration. An unopenable log file demotes the output to stdout
// rather than aborting the run.
func setupLogging(cfg *config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out *os.File
	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		out, err = os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.Output).Msg("Failed to open log file, using stdout")
			out = os.Stdout
		}
	}

	var writer io.Writer = out
	if cfg.Format == "text" {
		writer = zerolog.ConsoleWriter{Out: out}
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
}
