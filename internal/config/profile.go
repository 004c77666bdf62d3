package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/calculation"
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"gopkg.in/yaml.v3"
)

// ProfileParser loads profile documents from YAML files.
type ProfileParser struct{}

// NewProfileParser creates a new profile parser.
func NewProfileParser() *ProfileParser {
	return &ProfileParser{}
}

// LoadFromFile reads, parses, and validates a profile YAML document.
func (pp *ProfileParser) LoadFromFile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return pp.Parse(data)
}

// Parse parses and validates a profile from raw YAML bytes.
func (pp *ProfileParser) Parse(data []byte) (*domain.Profile, error) {
	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&profile)

	if err := calculation.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return &profile, nil
}

// applyDefaults fills identities left blank in hand-written profiles so
// milestones and comparisons can reference entities.
func applyDefaults(profile *domain.Profile) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	for i := range profile.Incomes {
		if profile.Incomes[i].ID == "" {
			profile.Incomes[i].ID = fmt.Sprintf("income-%d", i+1)
		}
	}
	for i := range profile.Debts {
		if profile.Debts[i].ID == "" {
			profile.Debts[i].ID = fmt.Sprintf("debt-%d", i+1)
		}
	}
	for i := range profile.Assets {
		if profile.Assets[i].ID == "" {
			profile.Assets[i].ID = fmt.Sprintf("asset-%d", i+1)
		}
	}
	for i := range profile.Obligations {
		if profile.Obligations[i].ID == "" {
			profile.Obligations[i].ID = fmt.Sprintf("obligation-%d", i+1)
		}
	}
	for i := range profile.Goals {
		if profile.Goals[i].ID == "" {
			profile.Goals[i].ID = fmt.Sprintf("goal-%d", i+1)
		}
	}
}
