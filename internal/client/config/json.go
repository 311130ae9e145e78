package config

import (
	"encoding/json"
	"os"

	"notekeeper/internal/flagx"
)

// JsonConfig is the DTO for reading the optional JSON configuration file.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	ServerURL string `json:"server_url"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; if
// neither is set no file is loaded. An unreadable or invalid file panics,
// matching the flag-parse failure mode.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.ServerURL != "" {
		config.ServerURL = c.ServerURL
	}
}
