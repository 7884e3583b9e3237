package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+447911123456"))
	assert.True(t, ValidatePhone("(555) 123-4567"))
	assert.False(t, ValidatePhone("not a phone"))
	assert.False(t, ValidatePhone(""))
}
