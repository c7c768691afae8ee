package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsValidUUIDAcceptsBothStoreVersions(t *testing.T) {
	// uuidv7() from the relational store
	assert.True(t, IsValidUUID("0190cafe-1234-7abc-89ab-0123456789ab"))
	// v4 from the in-memory store
	assert.True(t, IsValidUUID(uuid.NewString()))
	// upper case is still a UUID
	assert.True(t, IsValidUUID("0190CAFE-1234-7ABC-89AB-0123456789AB"))
}

func TestIsValidUUIDRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{
		"",
		"not-a-uuid",
		"123",
		"0190cafe-1234-7abc-89ab-0123456789",   // too short
		"0190cafe12347abc89ab0123456789ab",     // no dashes
		"0190cafe-1234-0abc-89ab-0123456789ab", // version 0 is not RFC 4122
	} {
		assert.False(t, IsValidUUID(input), input)
	}
}

func TestIsValidMatricola(t *testing.T) {
	assert.True(t, IsValidMatricola("EMP001"))
	assert.True(t, IsValidMatricola("imp.2024_a-1"))
	assert.False(t, IsValidMatricola(""))
	assert.False(t, IsValidMatricola("EMP 001"))
	assert.False(t, IsValidMatricola("EMP#001"))
}
