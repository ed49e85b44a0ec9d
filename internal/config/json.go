package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the JSON settings file.
type StructuredJSONConfig struct {
	Output struct {
		Path string `json:"path"`
	} `json:"output,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Source struct {
		EnvFiles []string `json:"env_files"`
	} `json:"source,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Output: Output{
			Path: jsonCfg.Output.Path,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Source: Source{
			EnvFiles: jsonCfg.Source.EnvFiles,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
