package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

// LoadScenario reads a scenario file and overlays it on the documented
// defaults, so a file only needs to name the parameters it changes.
//
// Supported formats by extension:
//   - .yaml / .yml  plain YAML
//   - .hjson        human JSON with comments and optional commas
//   - .json         JSON; malformed files (trailing commas, single quotes,
//     markdown fences from web exports) are repaired before parsing
func LoadScenario(path string) (ProjectInputs, error) {
	in := DefaultInputs()

	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read scenario %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &in); err != nil {
			return in, fmt.Errorf("parse scenario %s: %w", path, err)
		}
	case ".hjson":
		jsonData, err := hjsonToJSON(data)
		if err != nil {
			return in, fmt.Errorf("parse scenario %s: %w", path, err)
		}
		if err := json.Unmarshal(jsonData, &in); err != nil {
			return in, fmt.Errorf("parse scenario %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &in); err != nil {
			repaired, repErr := jsonrepair.RepairJSON(string(data))
			if repErr != nil {
				return in, fmt.Errorf("parse scenario %s: %v (repair failed: %v)", path, err, repErr)
			}
			if err := json.Unmarshal([]byte(repaired), &in); err != nil {
				return in, fmt.Errorf("parse repaired scenario %s: %w", path, err)
			}
		}
	default:
		return in, fmt.Errorf("unsupported scenario format %q (want .yaml, .hjson or .json)", filepath.Ext(path))
	}

	return in, nil
}

// hjsonToJSON converts Hjson to standard JSON so it can be decoded over the
// defaults struct like any other JSON document.
func hjsonToJSON(data []byte) ([]byte, error) {
	var node interface{}
	if err := hjson.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return json.Marshal(node)
}
