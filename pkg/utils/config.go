package utils

import (
	"math"
	"strings"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

const EnvPrefix = "PAGERANK"

// Config holds the computation parameters.
// Values are populated, in increasing priority, from defaults, an optional
// config file (config.json, config.yaml, ...), PAGERANK_* env vars and CLI flags.
type Config struct {
	Order         int           `mapstructure:"order"`          // Number of vertices of generated graphs
	Damping       float64       `mapstructure:"damping"`        // Damping factor d in (0, 1)
	Budget        time.Duration `mapstructure:"budget"`         // Wall-clock budget of the iteration loop
	MaxIterations int           `mapstructure:"max_iterations"` // Safety ceiling, not a convergence criterion
	Workers       int           `mapstructure:"workers"`        // 0: one per CPU
	Generator     string        `mapstructure:"generator"`      // nice or sneaky
	Graph         string        `mapstructure:"graph"`          // Edge list file or URL; overrides Generator
	Output        string        `mapstructure:"output"`         // Rank dump file
	Render        string        `mapstructure:"render"`         // Graphviz output file (small graphs only)
	Sample        int           `mapstructure:"sample"`         // Print every Sample-th rank; 0 disables
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("order", 1000)
	v.SetDefault("damping", 0.85)
	v.SetDefault("budget", 10*time.Second)
	v.SetDefault("max_iterations", math.MaxInt)
	v.SetDefault("workers", 0)
	v.SetDefault("generator", "sneaky")
	v.SetDefault("graph", "")
	v.SetDefault("output", "")
	v.SetDefault("render", "")
	v.SetDefault("sample", 100)
}

// NewViper creates a viper instance with defaults and environment bindings.
// A missing default config file is fine; a missing explicit one is not.
func NewViper(configFile string) (*viper.Viper, error) {
	LoadDotEnv()
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !xerrors.As(err, &notFound) {
			return nil, xerrors.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func LoadConfiguration(v *viper.Viper) (Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return config, xerrors.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, xerrors.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

// Validate checks whether the configuration is valid and sets the default
// values where required.
func (c *Config) Validate() error {
	var err error
	if c.Order <= 0 {
		err = multierror.Append(err, xerrors.New("order must be positive"))
	}
	if c.Damping <= 0 || c.Damping >= 1 {
		err = multierror.Append(err, xerrors.New("damping must be in the range (0, 1)"))
	}
	if c.Budget <= 0 {
		err = multierror.Append(err, xerrors.New("budget must be positive"))
	}
	if c.MaxIterations < 0 {
		err = multierror.Append(err, xerrors.New("max_iterations must not be negative"))
	} else if c.MaxIterations == 0 {
		c.MaxIterations = math.MaxInt
	}
	if c.Workers < 0 {
		err = multierror.Append(err, xerrors.New("workers must not be negative"))
	}
	if c.Sample < 0 {
		err = multierror.Append(err, xerrors.New("sample must not be negative"))
	}
	if c.Graph == "" && c.Generator == "" {
		err = multierror.Append(err, xerrors.New("either graph or generator must be set"))
	}
	return err
}
