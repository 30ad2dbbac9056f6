package config

import (
	"fmt"
	"strings"
)

// RequiredKey is one mandatory setting and whether it was supplied.
type RequiredKey struct {
	Name    string
	Present bool
}

// MissingError reports required settings that were not supplied.
type MissingError struct {
	Keys []RequiredKey
}

func (e *MissingError) Error() string {
	var names []string
	for _, k := range e.Keys {
		if !k.Present {
			names = append(names, k.Name)
		}
	}
	return "missing required configuration: " + strings.Join(names, ", ")
}

// Diagnostic renders the configuration screen shown instead of starting the service.
func (e *MissingError) Diagnostic() string {
	var b strings.Builder
	b.WriteString("Configuration error\n\n")
	b.WriteString("The service cannot start because required settings are missing.\n\n")
	for _, k := range e.Keys {
		state := "MISSING"
		if k.Present {
			state = "OK"
		}
		fmt.Fprintf(&b, "  %-14s %s\n", k.Name, state)
	}
	b.WriteString("\nSet the missing values in the environment or pass them as flags and restart.\n")
	return b.String()
}
