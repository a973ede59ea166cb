// Package historyconfig loads a history.Config from outside the process -
// a YAML file, environment variables, or both - using viper, the same way
// the pack's CLI/service examples load their own configuration.
package historyconfig

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rasteric/history"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix viper uses when reading MaxDepth
// overrides from the environment (e.g. HISTORY_MAXDEPTH).
const EnvPrefix = "HISTORY"

// Load reads a history.Config from the YAML file at path, if it exists,
// then lets matching HISTORY_* environment variables override individual
// fields. A missing file is not an error - the zero-value Config
// (history.Defaults equivalent) is returned in that case.
func Load(path string) (history.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("maxdepth", history.UnlimitedDepth)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			return history.Config{}, fmt.Errorf("historyconfig: reading %s: %w", path, err)
		}
	}

	return history.Config{
		MaxDepth: v.GetInt("maxdepth"),
	}, nil
}
