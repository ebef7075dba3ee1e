package playbook

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and validates a playbook from a YAML file. Used by the CLI
// so a playbook can be maintained outside of request payloads.
func LoadFile(path string) (Playbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Playbook{}, fmt.Errorf("failed to read playbook file: %w", err)
	}

	var pb Playbook
	if err := yaml.Unmarshal(data, &pb); err != nil {
		return Playbook{}, fmt.Errorf("failed to parse playbook file: %w", err)
	}

	return NewPlaybook(pb)
}
