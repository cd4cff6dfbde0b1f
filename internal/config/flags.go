package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args into a fresh
// [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-migrate run embedded migrations at startup
//	-c/-config json file path with configs
//	-token-secret token signing key
//	-token-issuer token issuer name
//	-access-ttl access token lifetime (e.g. "15m")
//	-refresh-ttl refresh token lifetime (e.g. "168h")
//	-otp-ttl one-time code validity window (e.g. "5m")
//	-hash-scheme password digest scheme ("hmac-sha256" or "argon2id")
//	-request-timeout request timeout (e.g. "30s")
//	-mail-transport verification email transport ("smtp", "http", "log")
//	-log-level log level
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var migrate bool
	var jsonConfigPath string
	var tokenSecret string
	var tokenIssuer string
	var accessTTL time.Duration
	var refreshTTL time.Duration
	var otpTTL time.Duration
	var hashScheme string
	var requestTimeout time.Duration
	var mailTransport string
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&migrate, "migrate", false, "Run database migrations at startup")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSecret, "token-secret", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&accessTTL, "access-ttl", 0, "Access token lifetime (e.g., 15m)")
	fs.DurationVar(&refreshTTL, "refresh-ttl", 0, "Refresh token lifetime (e.g., 168h)")
	fs.DurationVar(&otpTTL, "otp-ttl", 0, "One-time code validity window (e.g., 5m)")
	fs.StringVar(&hashScheme, "hash-scheme", "", "Password digest scheme")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&mailTransport, "mail-transport", "", "Verification email transport")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Auth: Auth{
			TokenSecret:     tokenSecret,
			TokenIssuer:     tokenIssuer,
			AccessTokenTTL:  accessTTL,
			RefreshTokenTTL: refreshTTL,
			OTPTTL:          otpTTL,
			HashScheme:      hashScheme,
		},
		Storage: Storage{
			DB: DB{
				DSN:     databaseDSN,
				Migrate: migrate,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			Transport: mailTransport,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
