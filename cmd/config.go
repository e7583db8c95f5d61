package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/minigrep/minigrep/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	keyCaseInsensitive = "case_insensitive"
	keyLogLevel        = "log_level"

	// caseInsensitiveEnv switches to case-insensitive matching when present,
	// whatever its value.
	caseInsensitiveEnv = "CASE_INSENSITIVE"

	configPathEnv    = "MINIGREP_CONFIG"
	configContentEnv = "MINIGREP_CONFIG_TOML"
	localConfigFile  = ".minigrep.toml"
)

// DefaultConfig is used when no config file is found.
const DefaultConfig = `# minigrep configuration
case_insensitive = false
log_level = "info"
`

func initConfig(cmd *cobra.Command) error {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	return loadConfig(viper.GetViper(), cfgPath, os.Getenv)
}

// loadConfig reads the config into v from the first available source: the
// cfgPath argument, the MINIGREP_CONFIG path, the MINIGREP_CONFIG_TOML
// content, ./.minigrep.toml, then DefaultConfig.
func loadConfig(v *viper.Viper, cfgPath string, getenv func(string) string) error {
	v.SetConfigType("toml")

	switch {
	case cfgPath != "":
		logging.Debug().Msgf("using minigrep config %s from `--config`", cfgPath)
	case getenv(configPathEnv) != "":
		cfgPath = getenv(configPathEnv)
		logging.Debug().Msgf("using minigrep config from %s env var: %s", configPathEnv, cfgPath)
	case getenv(configContentEnv) != "":
		content := getenv(configContentEnv)
		if err := v.ReadConfig(strings.NewReader(content)); err != nil {
			return fmt.Errorf("unable to load minigrep config from %s env var: %w", configContentEnv, err)
		}
		logging.Debug().Str("content", content).Msgf("using minigrep config from %s env var content", configContentEnv)
		return nil
	default:
		if _, err := os.Stat(localConfigFile); errors.Is(err, fs.ErrNotExist) {
			logging.Debug().Msgf("no minigrep config found at %s, using default config", localConfigFile)
			if err := v.ReadConfig(strings.NewReader(DefaultConfig)); err != nil {
				return fmt.Errorf("err reading default config toml: %w", err)
			}
			return nil
		}
		cfgPath = localConfigFile
		logging.Debug().Msgf("using existing minigrep config %s", cfgPath)
	}

	v.SetConfigFile(cfgPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("unable to load minigrep config %s: %w", cfgPath, err)
	}
	return nil
}

// caseSensitive reports whether matching should respect case. The
// CASE_INSENSITIVE variable takes precedence over the config file.
func caseSensitive(v *viper.Viper, lookupEnv func(string) (string, bool)) bool {
	if _, ok := lookupEnv(caseInsensitiveEnv); ok {
		logging.Debug().Msgf("%s is set, matching case-insensitively", caseInsensitiveEnv)
		return false
	}
	return !v.GetBool(keyCaseInsensitive)
}
