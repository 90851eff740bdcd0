package cmd

import (
	"errors"
	"io"
	"log"
	"log/slog"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"github.com/Rorical/TextValidator/internal/client"
	"github.com/Rorical/TextValidator/internal/config"
	"github.com/Rorical/TextValidator/internal/logging"
)

// loadConfig loads the stored config and applies flag and environment
// overrides for this run.
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Override(
		viper.GetString("endpoint"),
		viper.GetString("validator-profile"),
		viper.GetString("clipboard"),
	)
	return cfg
}

func newClient(cfg *config.Config) *client.Client {
	var opts []client.Option
	if profile := cfg.GetValidatorProfile(); profile != "" {
		opts = append(opts, client.WithProfileName(profile))
	}
	return client.New(cfg.GetEndpoint(), opts...)
}

func newLogger() (*slog.Logger, io.Closer) {
	level, err := logging.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		log.Fatalf("%v", err)
	}

	path := viper.GetString("log-file")
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			log.Fatalf("Failed to get config directory: %v", err)
		}
		path = filepath.Join(dir, "textvalidator.log")
	}

	logger, closer, err := logging.NewFileLogger(path, level)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	return logger, closer
}

func validateEndpoint(input string) error {
	u, err := url.Parse(input)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("endpoint must start with http:// or https://")
	}
	if u.Host == "" {
		return errors.New("endpoint must include a host")
	}
	return nil
}

func validatePositiveInt(input string) error {
	n, err := strconv.Atoi(input)
	if err != nil {
		return errors.New("must be a number")
	}
	if n <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
}
