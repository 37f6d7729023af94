package config

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/sshaaf/scribe/pkg/errors"
)

// Render returns the configuration as TOML
func Render(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(out), nil
}
