package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sutego/sutego/internal/utils/duration"
)

// validateColorCode checks if the field contains a valid hex color code.
func validateColorCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	re := regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	return re.MatchString(value)
}

// validateDuration checks if the field parses as a retention span
// (e.g. "30d", "12h", "1y").
func validateDuration(fl validator.FieldLevel) bool {
	_, err := duration.Parse(fl.Field().String())
	return err == nil
}

// expandPath expands environment variables and "~" in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	path = os.ExpandEnv(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
