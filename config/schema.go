package config

import (
	"github.com/grovetools/navpanel/schema"
)

// GenerateSchema generates the JSON Schema for a navpanel configuration source.
func GenerateSchema() ([]byte, error) {
	return schema.Generate(&Config{},
		"navpanel configuration",
		"Modules shown in the navigation panel plus panel, tui and logging settings.")
}
