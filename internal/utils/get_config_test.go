package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	doc := []byte(`
DB_HOST: localhost
DB_PORT: "5432"
JWT_SECRET: secret
REORDER_POLICY: lenient
SMTP_SENDER_NAME: Meal Planner
`)
	require.NoError(t, ParseConfig(doc))

	assert.Equal(t, "localhost", GetConfig("DB_HOST"))
	assert.Equal(t, "5432", GetConfig("DB_PORT"))
	assert.Equal(t, "secret", GetConfig("JWT_SECRET"))
	assert.Equal(t, "lenient", GetConfig("REORDER_POLICY"))
	assert.Equal(t, "Meal Planner", GetConfig("SMTP_SENDER_NAME"))
	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "", GetConfig("NOPE"))
}

func TestParseConfig_Invalid(t *testing.T) {
	require.NoError(t, ParseConfig([]byte("DB_HOST: kept\n")))
	assert.Error(t, ParseConfig([]byte("DB_HOST: [unclosed")))
	assert.Equal(t, "kept", GetConfig("DB_HOST"))
}
