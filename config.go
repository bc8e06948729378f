package qcircuit

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Tolerance is the slack allowed when checking that a state is normalized.
	Tolerance float64
	// Precision is the number of significant digits used when printing
	// amplitudes. -1 prints the shortest exact representation.
	Precision int
}

func NewConfig() *Config {
	return &Config{
		Tolerance: 1e-9,
		Precision: -1,
	}
}

/*
LoadConfig builds a Config from the defaults, an optional config file and
QCIRCUIT_ prefixed environment variables, in increasing order of priority.
An empty path skips the file.
*/
func LoadConfig(path string) (*Config, error) {
	defaults := NewConfig()

	v := viper.New()
	v.SetDefault("tolerance", defaults.Tolerance)
	v.SetDefault("precision", defaults.Precision)
	v.SetEnvPrefix("qcircuit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		Tolerance: v.GetFloat64("tolerance"),
		Precision: v.GetInt("precision"),
	}, nil
}
