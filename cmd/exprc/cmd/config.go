package cmd

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// config is the shape of .exprc.yaml (spec_full.md §2 "Configuration").
type config struct {
	// Format is read from the file ("text" or "json") but no subcommand
	// uses it; output is always text.
	Format string `yaml:"format"`
	// WorkspaceCapacity bounds the compile and scratch evaluation
	// workspaces of `eval` (spec §3's fixed-capacity buffer); `parse` and
	// `compile` always use a capacity of 64.
	WorkspaceCapacity int `yaml:"workspace_capacity"`
	// VarsFile is the JSON document `eval` resolves against when no
	// --vars flag is given. The `vars` subcommands take their file as an
	// argument and do not read it.
	VarsFile string `yaml:"vars_file"`
}

func defaultConfig() config {
	return config{Format: "text", WorkspaceCapacity: 64}
}

// loadConfig reads only the --config flag's path when that flag is set,
// and a missing file there is an error. Otherwise it tries ./.exprc.yaml,
// then $HOME/.exprc.yaml; finding neither is not an error — it just means
// the defaults apply.
func loadConfig() (config, error) {
	cfg := defaultConfig()

	candidates := []string{}
	if cfgFile != "" {
		candidates = append(candidates, cfgFile)
	} else {
		candidates = append(candidates, ".exprc.yaml")
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(home, ".exprc.yaml"))
		}
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if cfgFile != "" && path == cfgFile {
				return cfg, err
			}
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	return cfg, nil
}
