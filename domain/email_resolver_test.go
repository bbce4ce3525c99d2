package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainEmailResolver_Resolve(t *testing.T) {
	resolver := NewDomainEmailResolver("example.com")

	tests := []struct {
		name     string
		input    CustomerInput
		expected string
	}{
		{
			name:     "derives first.last at the configured domain",
			input:    CustomerInput{FirstName: "John", LastName: "Doe"},
			expected: "john.doe@example.com",
		},
		{
			name:     "lowercases and trims the name parts",
			input:    CustomerInput{FirstName: "  Mary ", LastName: " Ann  "},
			expected: "mary.ann@example.com",
		},
		{
			name:     "blank first name resolves to nothing",
			input:    CustomerInput{FirstName: "", LastName: "Doe"},
			expected: "",
		},
		{
			name:     "whitespace last name resolves to nothing",
			input:    CustomerInput{FirstName: "John", LastName: "   "},
			expected: "",
		},
		{
			name:     "name with an inner space cannot form an address",
			input:    CustomerInput{FirstName: "Mary Jane", LastName: "Smith"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.Resolve(tt.input))
		})
	}
}

func TestDomainEmailResolver_TryResolve(t *testing.T) {
	resolver := NewDomainEmailResolver("example.com")

	address, ok := resolver.TryResolve(CustomerInput{FirstName: "John", LastName: "Doe"})
	assert.True(t, ok)
	assert.Equal(t, "john.doe@example.com", address)

	address, ok = resolver.TryResolve(CustomerInput{FirstName: "", LastName: "Doe"})
	assert.False(t, ok)
	assert.Empty(t, address)
}
