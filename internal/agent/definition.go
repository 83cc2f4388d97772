// Package agent wires an LLM provider to the study tools: it loads the
// agent definition, owns the tool registry, keeps per-session
// conversation history, and runs the tool-use loop that turns a student
// query into an answer.
package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the agent block of the YAML definition file.
type Definition struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Model       string   `yaml:"model"`
	PromptFile  string   `yaml:"prompt_file"`
	Tools       []string `yaml:"tools"`
}

type definitionFile struct {
	Agent Definition `yaml:"agent"`
}

// LoadDefinition reads an agent definition from a YAML file.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read agent definition: %w", err)
	}

	var f definitionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Definition{}, fmt.Errorf("parse agent definition: %w", err)
	}

	def := f.Agent
	if def.Name == "" {
		return Definition{}, fmt.Errorf("agent definition %s: name is required", path)
	}
	if def.PromptFile == "" {
		return Definition{}, fmt.Errorf("agent definition %s: prompt_file is required", path)
	}
	return def, nil
}

// LoadPrompt reads the instruction prompt named by the definition.
// Relative prompt paths resolve against the definition file's directory.
func (d Definition) LoadPrompt(definitionPath string) (string, error) {
	path := d.PromptFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(definitionPath), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read agent prompt: %w", err)
	}

	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", fmt.Errorf("agent prompt %s is empty", path)
	}
	return prompt, nil
}
