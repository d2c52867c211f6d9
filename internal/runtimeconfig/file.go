package runtimeconfig

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchemaSource string

var (
	configSchemaOnce sync.Once
	configSchema     *jsonschema.Schema
	configSchemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	configSchemaOnce.Do(func() {
		configSchema, configSchemaErr = jsonschema.CompileString("config.schema.json", configSchemaSource)
	})
	return configSchema, configSchemaErr
}

// LoadFile reads a JSON config file, checks it against the embedded schema
// and overlays it on DefaultConfig.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("jotdown config: read %s: %w", path, err)
	}
	return Load(data)
}

// Load is LoadFile for in-memory JSON.
func Load(data []byte) (Config, error) {
	schema, err := compiledSchema()
	if err != nil {
		return Config{}, fmt.Errorf("jotdown config: compile schema: %w", err)
	}

	var doc any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return Config{}, fmt.Errorf("jotdown config: decode: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return Config{}, fmt.Errorf("jotdown config: schema: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("jotdown config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// isValidPattern uses path.Match, the matcher the note store applies to file
// names, so backslash is an escape on every platform.
func isValidPattern(pattern string) bool {
	_, err := path.Match(pattern, "")
	return err == nil
}
