package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the effective configuration after flags, FIXP_* environment
// variables and the config file have been merged by viper.
type Config struct {
	Width    int  `json:"width" yaml:"width"`
	FracBits uint `json:"frac" yaml:"frac"`
	NoColor  bool `json:"noColor" yaml:"no-color"`
}

func LoadConfig() (*Config, error) {
	conf := &Config{
		Width:    viper.GetInt("width"),
		FracBits: viper.GetUint("frac"),
		NoColor:  viper.GetBool("no-color"),
	}

	switch conf.Width {
	case 8, 16, 32, 64:
	default:
		return nil, errors.Errorf("unsupported storage width %d, expecting 8, 16, 32 or 64", conf.Width)
	}

	return conf, nil
}
