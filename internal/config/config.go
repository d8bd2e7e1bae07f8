package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"github.com/sutego/sutego/internal/env"
	"github.com/sutego/sutego/internal/utils/duration"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

type Config struct {
	Core    Core    `yaml:"core"`
	Confirm Confirm `yaml:"confirm"`
	History History `yaml:"history"`
	Bin     Bin     `yaml:"bin"`
	UI      UI      `yaml:"ui"`
}

type Core struct {
	// DataDir overrides where tasks.json and the recycle bin live.
	DataDir string `yaml:"data_dir"`

	// Retention is how long a soft-deleted task stays recoverable,
	// e.g. "30d", "12h", "1y".
	Retention string `yaml:"retention" validate:"required,validDuration"`

	// MaxBatch caps how many tasks a single delete request may target.
	MaxBatch int `yaml:"max_batch" validate:"gte=1"`

	// SweepInterval is how often expired recycle records are evicted
	// while the app is running. The sweep always also runs at startup.
	SweepInterval string `yaml:"sweep_interval" validate:"required,validDuration"`

	PermanentDelete PermanentDeleteConfig `yaml:"permanent_delete"`
}

type PermanentDeleteConfig struct {
	// Enable exposes permanent deletion in the UI key map.
	Enable bool `yaml:"enable"`
}

type Confirm struct {
	// Require gates every delete request behind a prompt unless the
	// caller explicitly bypasses it.
	Require bool `yaml:"require"`

	// CountdownSeconds disables the confirm action for this many
	// seconds after the prompt opens. Zero means confirm immediately.
	CountdownSeconds int `yaml:"countdown_seconds" validate:"gte=0"`
}

type History struct {
	// MaxEntries caps the audit log kept per task; oldest entries are
	// evicted first.
	MaxEntries int `yaml:"max_entries" validate:"gte=1"`
}

type Bin struct {
	Include IncludeConfig `yaml:"include"`
	Exclude ExcludeConfig `yaml:"exclude"`
}

type IncludeConfig struct {
	Period int `yaml:"within_days"`
}

type ExcludeConfig struct {
	Titles   []string `yaml:"titles"`
	Patterns []string `yaml:"patterns"`
	Globs    []string `yaml:"globs"`
}

type UI struct {
	Density     string      `yaml:"density" validate:"required,oneof=compact spacious"`
	ExitMessage string      `yaml:"exit_message"`
	Paginator   string      `yaml:"paginator_type" validate:"required,oneof=dots arabic"`
	Style       StyleConfig `yaml:"style"`
}

type StyleConfig struct {
	ListView       ListViewConfig `yaml:"list_view"`
	DeletionDialog string         `yaml:"deletion_dialog" validate:"omitempty,validColor"`
}

type ListViewConfig struct {
	IndentOnSelect bool   `yaml:"indent_on_select"`
	Cursor         string `yaml:"cursor" validate:"omitempty,validColor"`
	Selected       string `yaml:"selected" validate:"omitempty,validColor"`
}

// RetentionPeriod returns the parsed retention span. Validation has already
// ensured the value parses; a zero value falls back to 30 days.
func (c Core) RetentionPeriod() time.Duration {
	d, err := duration.Parse(c.Retention)
	if err != nil || d == 0 {
		return 30 * 24 * time.Hour
	}
	return d
}

// SweepEvery returns the parsed sweep interval, defaulting to one hour.
func (c Core) SweepEvery() time.Duration {
	d, err := duration.Parse(c.SweepInterval)
	if err != nil || d == 0 {
		return time.Hour
	}
	return d
}

// DataPath resolves the directory holding persistent state.
func (c Core) DataPath() string {
	if c.DataDir != "" {
		return expandPath(c.DataDir)
	}
	return env.SUTEGO_DATA_PATH
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed parsing config.yaml:\n%s",
		indent.String(e.err.Error(), 2))
}

func (e parsingError) Unwrap() error { return e.err }

type configError struct {
	configDir string
	err       error
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't find a "config.yaml" config file.
		Create one under: %s
		Example of a config.yaml file:

		%s

		The detail error is: %v`,
		e.configDir,
		defaultConfigYamlContents(),
		e.err,
	)
}

func createConfigFileIfMissing(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn(fmt.Sprintf("config file %s does not exist. creating...", path))
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = f.WriteString(defaultConfigYamlContents())
		return err
	}
	return nil
}

func defaultConfigFileOrCreateIfMissing() (string, error) {
	path := env.SUTEGO_CONFIG_PATH

	configDir := filepath.Dir(path)
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		slog.Warn(fmt.Sprintf("configDir %s does not exist. creating...", configDir))
		if err := os.MkdirAll(configDir, os.ModePerm); err != nil {
			return "", configError{configDir: configDir, err: err}
		}
	}

	if err := createConfigFileIfMissing(path); err != nil {
		return "", configError{configDir: configDir, err: err}
	}
	return path, nil
}

func readConfigFile(path string) (Config, error) {
	config := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, configError{configDir: filepath.Dir(path), err: err}
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, err
	}

	return config, validate.Struct(config)
}

func initValidator() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("validColor", validateColorCode)
	_ = validate.RegisterValidation("validDuration", validateDuration)
}

// Parse loads the configuration from path, falling back to the default
// location (creating a default file there when missing).
func Parse(path string) (Config, error) {
	initValidator()

	var configFilePath string
	var err error

	if path == "" {
		configFilePath, err = defaultConfigFileOrCreateIfMissing()
		if err != nil {
			return NewDefaultConfig(), parsingError{err: err}
		}
	} else {
		configFilePath = path
	}
	slog.Debug(fmt.Sprintf("config found: %s. parsing", configFilePath))

	config, err := readConfigFile(configFilePath)
	if err != nil {
		return config, parsingError{err: err}
	}

	return config, nil
}
