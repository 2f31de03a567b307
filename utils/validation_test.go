package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonflow-backend/utils"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, utils.ValidEmail("alice@x.com"))
	assert.False(t, utils.ValidEmail(""))
	assert.False(t, utils.ValidEmail("alice"))
	assert.False(t, utils.ValidEmail("alice@"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, utils.ValidatePhone("+15551234567"))
	assert.True(t, utils.ValidatePhone("(555) 123-4567"))
	assert.False(t, utils.ValidatePhone("abc"))
	assert.False(t, utils.ValidatePhone(""))
}

func TestValidDate(t *testing.T) {
	assert.True(t, utils.ValidDate("2024-12-23"))
	assert.False(t, utils.ValidDate("2024-13-45"))
	assert.False(t, utils.ValidDate("23-12-2024"))
	assert.False(t, utils.ValidDate("2024-1-3"))
}

func TestValidTime(t *testing.T) {
	assert.True(t, utils.ValidTime("10:00"))
	assert.True(t, utils.ValidTime("23:59"))
	assert.False(t, utils.ValidTime("25:00"))
	assert.False(t, utils.ValidTime("10:61"))
	assert.False(t, utils.ValidTime("10am"))
}
