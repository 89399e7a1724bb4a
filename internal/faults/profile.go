// internal/faults/profile.go
package faults

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/scmdash/scm-backend/internal/config"
)

type Operation string

const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Rule describes the simulated network behaviour of one operation.
type Rule struct {
	LatencyMin   time.Duration `yaml:"latencyMin"`
	LatencyMax   time.Duration `yaml:"latencyMax"`
	FailureRate  float64       `yaml:"failureRate"`
	NotFoundRate float64       `yaml:"notFoundRate"`
}

// Profile is the default rule plus optional overrides keyed by resource and
// operation, e.g. resources.products.create.
type Profile struct {
	Seed      int64                         `yaml:"seed"`
	Default   Rule                          `yaml:"default"`
	Resources map[string]map[Operation]Rule `yaml:"resources,omitempty"`
	Disabled  bool                          `yaml:"disabled,omitempty"`
}

// Clamp keeps rates in [0,1] and latency bounds ordered.
func (r *Rule) Clamp() {
	r.FailureRate = clamp01(r.FailureRate)
	r.NotFoundRate = clamp01(r.NotFoundRate)
	if r.LatencyMin < 0 {
		r.LatencyMin = 0
	}
	if r.LatencyMax < r.LatencyMin {
		r.LatencyMax = r.LatencyMin
	}
}

func (p *Profile) Clamp() {
	p.Default.Clamp()
	for resource, ops := range p.Resources {
		for op, rule := range ops {
			rule.Clamp()
			p.Resources[resource][op] = rule
		}
	}
}

// RuleFor resolves the rule for a resource operation.
func (p *Profile) RuleFor(resource string, op Operation) Rule {
	if ops, ok := p.Resources[resource]; ok {
		if rule, ok := ops[op]; ok {
			return rule
		}
	}
	return p.Default
}

// DashboardProfile is the demo latency profile: most calls take 500ms, the
// product catalogue answers in 200-400ms.
func DashboardProfile() *Profile {
	fixed := func(d time.Duration) Rule { return Rule{LatencyMin: d, LatencyMax: d} }
	return &Profile{
		Default: fixed(500 * time.Millisecond),
		Resources: map[string]map[Operation]Rule{
			"products": {
				OpList:   fixed(300 * time.Millisecond),
				OpGet:    fixed(200 * time.Millisecond),
				OpCreate: fixed(400 * time.Millisecond),
				OpUpdate: fixed(400 * time.Millisecond),
				OpDelete: fixed(300 * time.Millisecond),
			},
		},
	}
}

// Instant is a profile with no latency and no faults, used by tests.
func Instant() *Profile {
	return &Profile{}
}

// FromConfig loads the profile file when one is configured. Otherwise the
// dashboard profile is used with the configured default latency, and the
// configured rates apply to every operation.
func FromConfig(cfg config.FaultConfig) (*Profile, error) {
	if cfg.ProfilePath != "" {
		profile, err := LoadProfile(cfg.ProfilePath)
		if err != nil {
			return nil, err
		}
		if profile.Seed == 0 {
			profile.Seed = cfg.Seed
		}
		return profile, nil
	}

	profile := DashboardProfile()
	profile.Seed = cfg.Seed
	profile.Default.LatencyMin = cfg.LatencyMin
	profile.Default.LatencyMax = cfg.LatencyMax
	profile.Default.FailureRate = cfg.FailureRate
	profile.Default.NotFoundRate = cfg.NotFound
	for _, ops := range profile.Resources {
		for op, rule := range ops {
			rule.FailureRate = cfg.FailureRate
			rule.NotFoundRate = cfg.NotFound
			ops[op] = rule
		}
	}
	profile.Clamp()
	return profile, nil
}

func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fault profile %s: %w", path, err)
	}
	return ParseProfile(data)
}

func ParseProfile(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse fault profile: %w", err)
	}
	profile.Clamp()
	return &profile, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
