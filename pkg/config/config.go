package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreDuckDB = "duckdb"
)

var ErrUnknownStore = errors.New("unknown store")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string  `mapstructure:"env"`          // local, production
	LogFile     string  `mapstructure:"log_file"`     // zap output path, empty disables logging in the TUI
	Store       string  `mapstructure:"store"`        // memory or duckdb
	DuckDBPath  string  `mapstructure:"duckdb_path"`  // empty keeps the DuckDB database in memory
	AuthorsFile string  `mapstructure:"authors_file"` // JSON seed, empty uses the built-in authors
	ImageDir    string  `mapstructure:"image_dir"`    // base directory for relative portrait paths
	Seed        uint64  `mapstructure:"seed"`         // 0 draws a random seed
	Booklet     Booklet `mapstructure:"booklet"`
}

type Booklet struct {
	Rounds int    `mapstructure:"rounds"`
	Output string `mapstructure:"output"`
}

// Load reads configuration from an optional .env file, a config file and
// AUTHORQUIZ_* environment variables. file overrides the config search path.
func Load(file string) (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.authorquiz")
	}

	v.SetDefault("env", "local")
	v.SetDefault("log_file", "")
	v.SetDefault("store", StoreMemory)
	v.SetDefault("duckdb_path", "")
	v.SetDefault("authors_file", "")
	v.SetDefault("image_dir", ".")
	v.SetDefault("seed", 0)
	v.SetDefault("booklet.rounds", 10)
	v.SetDefault("booklet.output", "authorquiz.epub")

	v.SetEnvPrefix("authorquiz")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreDuckDB:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.Store)
	}
	if c.Booklet.Rounds < 1 {
		return fmt.Errorf("booklet.rounds must be positive, got %d", c.Booklet.Rounds)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
