package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"first.last@example.co.uk",
		"user+tag@domain.io",
	}
	for _, s := range valid {
		assert.True(t, Email(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"missing-domain@",
		"no-tld@domain",
		"spaces in@local.com",
		"user@dom ain.com",
		"two@@at.com",
	}
	for _, s := range invalid {
		assert.False(t, Email(s), "expected %q to be invalid", s)
	}
}

func TestNonBlank(t *testing.T) {
	assert.True(t, NonBlank("x"))
	assert.True(t, NonBlank("  x  "))
	assert.False(t, NonBlank(""))
	assert.False(t, NonBlank("   \t\n"))
}

func TestAnySelection(t *testing.T) {
	assert.True(t, AnySelection([]string{"Workshops"}, nil))
	assert.True(t, AnySelection(nil, []string{"Design"}))
	assert.False(t, AnySelection(nil, nil))
	assert.False(t, AnySelection([]string{}, []string{}))
}
