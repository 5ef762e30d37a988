// Package config loads application settings from a config file, a .env
// file and BALLOON_* environment variables.
package config

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Mikanister/baloon-calc-sub001/internal/logging"
	"github.com/Mikanister/baloon-calc-sub001/pkg/cost"
	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

// EnvPrefix is prepended to every environment override, so server.addr is
// read from BALLOON_SERVER_ADDR.
const EnvPrefix = "BALLOON"

// Config is the main application configuration.
type Config struct {
	Logging logging.Config `mapstructure:"logging"`
	Server  ServerConfig   `mapstructure:"server"`
	Solver  SolverConfig   `mapstructure:"solver"`
	Pattern PatternConfig  `mapstructure:"pattern"`
	Prices  cost.Prices    `mapstructure:"prices"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// RateLimitRPS is the sustained request rate allowed per client address.
	RateLimitRPS float64       `mapstructure:"rate_limit_rps"`
	RateBurst    int           `mapstructure:"rate_burst"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// SolverConfig controls the payload-to-volume iteration.
type SolverConfig struct {
	MaxIterations int     `mapstructure:"max_iterations"`
	Tolerance     float64 `mapstructure:"tolerance"`
	Strict        bool    `mapstructure:"strict"`
}

// PatternConfig holds the pattern defaults a design may override.
type PatternConfig struct {
	Gores           int     `mapstructure:"gores"`
	Points          int     `mapstructure:"points"`
	SeamAllowanceMM float64 `mapstructure:"seam_allowance_mm"`
}

func setDefaults(v *viper.Viper) {
	lc := logging.DefaultConfig()
	v.SetDefault("logging.level", lc.Level)
	v.SetDefault("logging.format", lc.Format)
	v.SetDefault("logging.output", lc.Output)
	v.SetDefault("logging.development", lc.Development)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit_rps", 5.0)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	so := solver.DefaultOptions()
	v.SetDefault("solver.max_iterations", so.MaxIterations)
	v.SetDefault("solver.tolerance", so.Tolerance)
	v.SetDefault("solver.strict", so.Strict)

	po := pattern.DefaultOptions()
	v.SetDefault("pattern.gores", po.NumGores)
	v.SetDefault("pattern.points", po.NumPoints)
	v.SetDefault("pattern.seam_allowance_mm", po.SeamAllowanceM*1000)

	v.SetDefault("prices.material_per_kg", 0.0)
	v.SetDefault("prices.gas_per_m3", 0.0)
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads configuration. An explicit path must exist; otherwise
// config.yaml is searched in ./.balloon and $HOME/.balloon and may be
// absent. A .env file in the working directory is loaded first so its
// values act as environment overrides.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".balloon")
		v.AddConfigPath("$HOME/.balloon")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !stderrors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()
	return cfg, nil
}

// SolverOptions converts the solver section.
func (c *Config) SolverOptions() solver.Options {
	return solver.Options{
		MaxIterations: c.Solver.MaxIterations,
		Tolerance:     c.Solver.Tolerance,
		Strict:        c.Solver.Strict,
	}
}

// PatternOptions converts the pattern section, mm to m for the seam
// allowance.
func (c *Config) PatternOptions() pattern.Options {
	return pattern.Options{
		NumGores:       c.Pattern.Gores,
		NumPoints:      c.Pattern.Points,
		SeamAllowanceM: c.Pattern.SeamAllowanceMM / 1000,
	}
}
