package config

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a credential that is missing or still holds a
// placeholder value. Components that need the credential refuse to
// initialize; the rest of the process keeps running.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not set or is a placeholder", e.Name)
}

// CheckCredential validates a single credential value. Placeholder values
// such as PASTE-YOUR-KEY-HERE count as missing.
func CheckCredential(name, value string) error {
	if value == "" || strings.Contains(value, "PASTE") {
		return &ConfigurationError{Name: name}
	}
	return nil
}
