package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-account-auth/internal/config"
	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		wantErr error
	}{
		{name: "release", version: "1.0.0", want: "1.0.0"},
		{name: "pre-release", version: "v2.0.0-beta+build.42", want: "v2.0.0-beta+build.42"},
		{name: "surrounding whitespace trimmed", version: "  3.1.4\n", want: "3.1.4"},
		{name: "empty", version: "", wantErr: ErrVersionIsNotSpecified},
		{name: "blank", version: "   ", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_IgnoresCancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
