package dashboard

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rpribau/cm-admin-sub000/internal/auth"
)

// PolicyRule maps a path prefix to the requirement a session has to
// satisfy; rules are evaluated longest-prefix-first
type PolicyRule struct {
	Prefix  string           `yaml:"prefix"`
	Require auth.Requirement `yaml:"require"`
}

// Policy drives the route guard: where unauthenticated navigation is
// sent, where unauthorized navigation is sent, and which requirement
// applies to each guarded prefix
type Policy struct {
	LoginPath      string       `yaml:"loginPath"`
	DefaultLanding string       `yaml:"defaultLanding"`
	Rules          []PolicyRule `yaml:"rules"`
}

// GetDefaultPolicy is the built-in policy applied when no policy file
// is configured: accounts and signature keys are superuser-only, the
// duplicate-authorization audit needs an admin, everything else only
// needs an authenticated session (handlers apply department scoping)
func GetDefaultPolicy() *Policy {
	return &Policy{
		LoginPath:      "/login",
		DefaultLanding: "/dashboard",
		Rules: []PolicyRule{
			{Prefix: "/api/v1/accounts", Require: auth.Requirement{string(auth.RoleSuperuser)}},
			{Prefix: "/api/v1/signature-keys", Require: auth.Requirement{string(auth.RoleSuperuser)}},
			{Prefix: "/api/v1/authorizations/duplicates", Require: auth.Requirement{"admin"}},
		},
	}
}

// LoadPolicy reads a policy document from a YAML file, filling gaps
// with the built-in defaults
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file at path[%s]: %s", path, err)
	}
	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse policy file at path[%s]: %s", path, err)
	}
	defaults := GetDefaultPolicy()
	if policy.LoginPath == "" {
		policy.LoginPath = defaults.LoginPath
	}
	if policy.DefaultLanding == "" {
		policy.DefaultLanding = defaults.DefaultLanding
	}
	return &policy, nil
}

// RequirementFor resolves the requirement applying to a request path by
// longest matching prefix; an empty requirement means authentication
// alone suffices
func (p *Policy) RequirementFor(path string) auth.Requirement {
	var matched auth.Requirement
	matchedLength := -1
	for _, rule := range p.Rules {
		if strings.HasPrefix(path, rule.Prefix) && len(rule.Prefix) > matchedLength {
			matched = rule.Require
			matchedLength = len(rule.Prefix)
		}
	}
	return matched
}
