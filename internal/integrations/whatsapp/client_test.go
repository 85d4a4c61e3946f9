package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessageParams_WhatsAppForE164(t *testing.T) {
	params, channel := buildMessageParams("+14155550100", "+966501234567", "hello")

	assert.Equal(t, "WhatsApp", channel)
	require.NotNil(t, params.From)
	require.NotNil(t, params.To)
	assert.Equal(t, "whatsapp:+14155550100", *params.From)
	assert.Equal(t, "whatsapp:+966501234567", *params.To)
}

func TestBuildMessageParams_SMSFallback(t *testing.T) {
	// Локальный номер без кода страны не проходит как E.164
	for _, to := range []string{"0501234567", "966501234567", "+0501234567", "+1-415-555", ""} {
		params, channel := buildMessageParams("+14155550100", to, "hello")

		assert.Equal(t, "SMS", channel, "number %q", to)
		require.NotNil(t, params.From)
		require.NotNil(t, params.To)
		assert.Equal(t, "+14155550100", *params.From)
		assert.Equal(t, to, *params.To)
	}
}
