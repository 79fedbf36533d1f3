package resources

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Seed is one resource entry of the seed file.
type Seed struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	Category    string `yaml:"category"`
}

type seedFile struct {
	Resources []Seed `yaml:"resources"`
}

// LoadSeedFile reads the resource seed list from a YAML file.
func LoadSeedFile(path string) ([]Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resources seed: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]Seed, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse resources seed: %w", err)
	}
	for i, s := range file.Resources {
		if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.URL) == "" || strings.TrimSpace(s.Category) == "" {
			return nil, fmt.Errorf("resources seed entry %d: title, url and category are required", i)
		}
	}
	return file.Resources, nil
}
