package adapter

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-auth/internal/logger"
)

func TestLogNotifier_WritesCode(t *testing.T) {
	var out bytes.Buffer
	n := NewLogNotifier(&out, logger.Nop())

	require.NoError(t, n.SendVerificationCode(context.Background(), testNotification()))

	assert.Contains(t, out.String(), "To: alice@example.com")
	assert.Contains(t, out.String(), "Subject: Verify your email")
	assert.Contains(t, out.String(), "482913")
}

func TestLogNotifier_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	n := NewLogNotifier(&out, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.SendVerificationCode(ctx, testNotification())
	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
