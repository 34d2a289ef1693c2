package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dario.cat/mergo"
)

// Defaults of the config inspector client.
const (
	DefaultClientServerURL      = "http://localhost:8080"
	DefaultClientRequestTimeout = 15 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the research gateway
	// (e.g. "http://localhost:8080").
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`
	// RequestTimeout is the timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the config inspector client.
type ClientConfig struct {
	// Adapter contains the gateway address and the request timeout.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
}

// GetClientConfig builds and validates the client configuration from the
// environment and the command-line flags (flags win).
//
// Flags:
//
//	-s gateway base URL
//	-t request timeout (e.g., "10s")
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	envCfg := new(ClientConfig)
	if err := parseEnv(envCfg, nil); err != nil {
		return nil, err
	}

	flagsCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{flagsCfg, envCfg, defaultClientConfig()} {
		if err = mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      DefaultClientServerURL,
			RequestTimeout: DefaultClientRequestTimeout,
		},
	}
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	var serverURL string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("research-gateway-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&serverURL, "s", "", "Gateway base URL")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidClientConfigs, fmt.Errorf("error parsing flags: %w", err))
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
	}, nil
}
