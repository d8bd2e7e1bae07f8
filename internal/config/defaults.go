package config

import "gopkg.in/yaml.v2"

// NewDefaultConfig creates a Config with default values
func NewDefaultConfig() Config {
	return Config{
		Core: Core{
			Retention:     "30d",
			MaxBatch:      50,
			SweepInterval: "1h",
			PermanentDelete: PermanentDeleteConfig{
				Enable: true,
			},
		},
		Confirm: Confirm{
			Require:          true,
			CountdownSeconds: 0,
		},
		History: History{
			MaxEntries: 100,
		},
		Bin: Bin{
			Include: IncludeConfig{
				Period: 365,
			},
			Exclude: ExcludeConfig{
				Titles:   []string{},
				Patterns: []string{},
				Globs:    []string{},
			},
		},
		UI: UI{
			Density:   "spacious",
			Paginator: "dots",
			Style: StyleConfig{
				ListView: ListViewConfig{
					IndentOnSelect: true,
					Cursor:         "#AD58B4",
					Selected:       "#5FB458",
				},
				DeletionDialog: "#FF007F",
			},
		},
	}
}

func defaultConfigYamlContents() string {
	defaultConfig := NewDefaultConfig()
	content, _ := yaml.Marshal(defaultConfig)
	return string(content)
}
