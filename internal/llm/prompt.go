package llm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PromptSpec is loaded from prompts/system.yaml: the fixed system
// instruction seeded into every session plus sampling style.
type PromptSpec struct {
	System string `yaml:"system"`
	Style  struct {
		Temperature float32 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
	} `yaml:"style"`
}

func LoadPromptSpec(path string) (*PromptSpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec PromptSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, err
	}
	if spec.System == "" {
		return nil, fmt.Errorf("prompt spec %s: system text is empty", path)
	}
	if spec.Style.Temperature <= 0 {
		spec.Style.Temperature = 0.3
	}
	if spec.Style.MaxTokens <= 0 {
		spec.Style.MaxTokens = 1000
	}
	return &spec, nil
}
