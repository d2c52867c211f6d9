package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadFixture reads a fixture file as-is.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadGolden decodes a JSON golden file into v.
func LoadGolden(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// NormalizeJSON round-trips v through encoding/json so typed values can be
// compared against decoded golden data.
func NormalizeJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GoldenPairs returns the fixtures in dir with the given extension that have
// a matching .golden.json file, keyed by fixture path, sorted by name.
func GoldenPairs(dir, ext string) ([][2]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	pairs := make([][2]string, 0, len(matches))
	for _, fixture := range matches {
		golden := strings.TrimSuffix(fixture, ext) + ".golden.json"
		if _, err := os.Stat(golden); err != nil {
			continue
		}
		pairs = append(pairs, [2]string{fixture, golden})
	}
	return pairs, nil
}
