package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding.
// Durations accept both Go duration strings ("15m") and nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSecret     string   `json:"token_secret"`
		TokenIssuer     string   `json:"token_issuer"`
		AccessTokenTTL  Duration `json:"access_token_ttl"`
		RefreshTokenTTL Duration `json:"refresh_token_ttl"`
		OTPTTL          Duration `json:"otp_ttl"`
		OTPLength       int      `json:"otp_length"`
		HashScheme      string   `json:"hash_scheme"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN     string `json:"dsn"`
			Migrate bool   `json:"migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		Transport  string   `json:"transport"`
		Host       string   `json:"host"`
		Port       int      `json:"port"`
		User       string   `json:"user"`
		Password   string   `json:"password"`
		From       string   `json:"from"`
		RelayURL   string   `json:"relay_url"`
		RelayToken string   `json:"relay_token"`
		Timeout    Duration `json:"timeout"`
	} `json:"mail,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			TokenSecret:     jsonCfg.Auth.TokenSecret,
			TokenIssuer:     jsonCfg.Auth.TokenIssuer,
			AccessTokenTTL:  time.Duration(jsonCfg.Auth.AccessTokenTTL),
			RefreshTokenTTL: time.Duration(jsonCfg.Auth.RefreshTokenTTL),
			OTPTTL:          time.Duration(jsonCfg.Auth.OTPTTL),
			OTPLength:       jsonCfg.Auth.OTPLength,
			HashScheme:      jsonCfg.Auth.HashScheme,
		},
		Storage: Storage{
			DB: DB{
				DSN:     jsonCfg.Storage.DB.DSN,
				Migrate: jsonCfg.Storage.DB.Migrate,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			Transport:  jsonCfg.Mail.Transport,
			Host:       jsonCfg.Mail.Host,
			Port:       jsonCfg.Mail.Port,
			User:       jsonCfg.Mail.User,
			Password:   jsonCfg.Mail.Password,
			From:       jsonCfg.Mail.From,
			RelayURL:   jsonCfg.Mail.RelayURL,
			RelayToken: jsonCfg.Mail.RelayToken,
			Timeout:    time.Duration(jsonCfg.Mail.Timeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
