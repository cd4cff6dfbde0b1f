package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Server:  Server{HTTPAddress: "localhost:8080"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/auth"}},
		Auth:    Auth{TokenSecret: "secret"},
		Mail:    Mail{Transport: MailTransportLog},
	}
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.flagSet = newTestFlagSet()
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	first := validConfig()
	first.App.Version = "1.0.0"
	first.Auth.TokenIssuer = "first"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		first,
		&StructuredConfig{Auth: Auth{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.Auth.TokenIssuer)
	assert.Equal(t, "secret", cfg.Auth.TokenSecret)
}

// TestBuild_AppliesDefaults verifies that every optional setting receives its
// default value.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, 6, cfg.Auth.OTPLength)
	assert.Equal(t, HashSchemeHMACSHA256, cfg.Auth.HashScheme)
	assert.Equal(t, "go-account-auth", cfg.Auth.TokenIssuer)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "dev", cfg.App.Version)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing token secret",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSecret = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name: "refresh shorter than access",
			mutate: func(cfg *StructuredConfig) {
				cfg.Auth.AccessTokenTTL = time.Hour
				cfg.Auth.RefreshTokenTTL = time.Minute
			},
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "negative otp ttl",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.OTPTTL = -time.Minute },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "otp too long",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.OTPLength = 12 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "unknown hash scheme",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.HashScheme = "md5" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "unknown mail transport",
			mutate:  func(cfg *StructuredConfig) { cfg.Mail.Transport = "pigeon" },
			wantErr: ErrInvalidMailConfigs,
		},
		{
			name:    "smtp without host",
			mutate:  func(cfg *StructuredConfig) { cfg.Mail.Transport = MailTransportSMTP },
			wantErr: ErrInvalidMailConfigs,
		},
		{
			name: "http without relay url",
			mutate: func(cfg *StructuredConfig) {
				cfg.Mail.Transport = MailTransportHTTP
				cfg.Mail.From = "noreply@example.com"
			},
			wantErr: ErrInvalidMailConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			got, err := b.build()
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

func TestWithEnv_AppendsConfig(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SECRET", "env-secret")

	b := newTestBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].Auth.TokenSecret)
}

func TestWithEnv_ParseError(t *testing.T) {
	t.Setenv("AUTH_OTP_LENGTH", "six")

	b := newTestBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_UsesBuilderArgs(t *testing.T) {
	b := newTestBuilder("-token-secret", "flag-secret").withFlags()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-secret", b.configs[0].Auth.TokenSecret)
}

func TestWithJSON_NoPathSkips(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b = b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{"token_issuer": "from-json"},
	})

	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b = b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].Auth.TokenIssuer)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b = b.withJSON()
	require.Error(t, b.err)
}

func TestWithDotEnv_ExplicitMissingFileFails(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "missing.env"))

	b := newTestBuilder().withDotEnv()
	require.Error(t, b.err)
}

func TestWithDotEnv_ExplicitFileLoaded(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("AUTH_TOKEN_ISSUER=dotenv-issuer\n"), 0o600))
	t.Setenv("DOTENV", p)
	t.Setenv("AUTH_TOKEN_ISSUER", "")
	require.NoError(t, os.Unsetenv("AUTH_TOKEN_ISSUER"))

	b := newTestBuilder().withDotEnv().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dotenv-issuer", b.configs[0].Auth.TokenIssuer)
}

// TestFullPipeline verifies env → flags → JSON precedence end to end.
func TestFullPipeline(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{"token_issuer": "json-issuer"},
	})

	t.Setenv("SERVER_ADDRESS", "localhost:8080")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/auth")
	t.Setenv("AUTH_TOKEN_SECRET", "env-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("MAIL_TRANSPORT", "log")

	cfg, err := newTestBuilder("-token-secret", "flag-secret", "-c", path).
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "flag-secret", cfg.Auth.TokenSecret)
	assert.Equal(t, "json-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}
