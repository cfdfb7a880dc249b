package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderSubscriptionConfirmation(t *testing.T) {
	svc := NewEmailService("re_test", "billing@example.com", "SaaS Starter", "http://localhost:3000", zap.NewNop())

	html, err := svc.renderSubscriptionConfirmation("Test User", "Plus")

	require.NoError(t, err)
	assert.Contains(t, html, "Hi Test User,")
	assert.Contains(t, html, "<strong>Plus</strong>")
	assert.Contains(t, html, `href="http://localhost:3000/dashboard"`)
}

func TestRenderSubscriptionConfirmation_Fallbacks(t *testing.T) {
	svc := NewEmailService("re_test", "billing@example.com", "SaaS Starter", "", zap.NewNop())

	html, err := svc.renderSubscriptionConfirmation("", "<script>")

	require.NoError(t, err)
	assert.Contains(t, html, "Hi there,")
	assert.NotContains(t, html, "<script>")
}
