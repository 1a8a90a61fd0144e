package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/backup-extractor/internal/gammu"
)

const (
	configFileType = "yaml"

	// Config keys.
	cfgKeyOutputDir    = "output_dir"
	cfgKeyVCardVersion = "vcard_version"
	cfgKeyVerbose      = "verbose"
)

// flagKeys binds config keys to the flags that override them.
var flagKeys = map[string]string{
	cfgKeyVCardVersion: "vcard-version",
	cfgKeyVerbose:      "verbose",
}

// loadConfig merges the command's flags with the YAML config file at path.
// Flags that were set win over the file, the file wins over defaults. With
// an empty path only flags and defaults are used; no other file and no
// environment variable is consulted.
//
// output_dir is returned as read from the file; paths.ResolveOutputDir
// applies the --extract-vcards override.
func loadConfig(cmd *cobra.Command, path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyVCardVersion, gammu.DefaultVCardVersion)
	v.SetDefault(cfgKeyVerbose, false)

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	v.SetConfigType(configFileType)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
