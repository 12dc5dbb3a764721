package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_Validate(t *testing.T) {
	tests := map[string]struct {
		project     Project
		expectedErr error
	}{
		"valid": {
			project: Project{Name: "checkout"},
		},
		"empty-name": {
			project:     Project{},
			expectedErr: NewValidationErr("project name cannot be empty"),
		},
		"name-too-long": {
			project:     Project{Name: strings.Repeat("p", 201)},
			expectedErr: NewValidationErr("project name must be at most 200 characters"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expectedErr, tt.project.Validate())
		})
	}
}

func TestEnvironment_Validate(t *testing.T) {
	tests := map[string]struct {
		env         Environment
		expectedErr error
	}{
		"valid": {
			env: Environment{Name: "staging"},
		},
		"empty-name": {
			env:         Environment{},
			expectedErr: NewValidationErr("environment name cannot be empty"),
		},
		"name-too-long": {
			env:         Environment{Name: strings.Repeat("e", 201)},
			expectedErr: NewValidationErr("environment name must be at most 200 characters"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expectedErr, tt.env.Validate())
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "checkout", NormalizeName("  CheckOut \n"))
	assert.Equal(t, "", NormalizeName("   "))
	assert.Equal(t, "my project", NormalizeName("My Project"))
}

func TestProject_HasRequirements(t *testing.T) {
	assert.False(t, Project{}.HasRequirements())
	assert.False(t, Project{Requirements: " \t\n"}.HasRequirements())
	assert.True(t, Project{Requirements: "Use table-driven tests"}.HasRequirements())
	assert.True(t, Scope{Requirements: "Use table-driven tests"}.HasRequirements())
	assert.False(t, Scope{}.HasRequirements())
}
