package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Message(t *testing.T) {
	assert.EqualError(t, Required("employeeCode"), "employeeCode is required")
	assert.EqualError(t, InvalidFormat("email"), "email format is invalid")
	assert.EqualError(t, Invalid("departmentId"), "departmentId is invalid")
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"employee@sailshr.local",
		"a@b.co",
		"first.last@example.com",
	}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"no-domain@",
		"@no-local.com",
		"spaces in@mail.com",
		"missing@tld",
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidDate(t *testing.T) {
	parsed, ok := IsValidDate("2026-02-10")
	assert.True(t, ok)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.February, parsed.Month())
	assert.Equal(t, 10, parsed.Day())

	_, ok = IsValidDate("2024-02-29")
	assert.True(t, ok)

	for _, input := range []string{"2026-2-10", "10-02-2026", "2026-13-01", "not-a-date", ""} {
		_, ok := IsValidDate(input)
		assert.False(t, ok, input)
	}
}

func TestIsInSlice(t *testing.T) {
	types := []string{"CL", "SL", "PL"}
	assert.True(t, IsInSlice("CL", types))
	assert.True(t, IsInSlice("PL", types))
	assert.False(t, IsInSlice("XX", types))
	assert.False(t, IsInSlice("cl", types))
}
