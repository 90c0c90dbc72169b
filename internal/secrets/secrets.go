// Package secrets resolves secret values that should not live in the
// configuration file, such as the SMTP password.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Resolve returns the secret called name. A file takes precedence over the
// inline value; the result is trimmed and must be non-empty.
func Resolve(name, file, inline string) (string, error) {
	value := inline

	if path := strings.TrimSpace(file); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, path, err)
		}
		value = string(data)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}
	return value, nil
}
