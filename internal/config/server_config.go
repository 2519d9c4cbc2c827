package config

import (
	"github.com/rs/zerolog"
	"github/chapool/tron-walletconnect/internal/tron"
	"github/chapool/tron-walletconnect/internal/util"
)

type EchoServer struct {
	Debug                     bool
	ListenAddress             string
	BodyLimit                 string
	EnableRecoverMiddleware   bool
	EnableRequestIDMiddleware bool
	EnableLoggerMiddleware    bool
	EnableMetricsMiddleware   bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogRequestBody     bool
	LogResponseBody    bool
	PrettyPrintConsole bool
}

// TronServer holds the full node endpoints of both networks.
type TronServer struct {
	DefaultNetwork tron.Network
	MainnetURL     string
	NileURL        string
	APIKey         string `json:"-"`
}

type Server struct {
	Echo   EchoServer
	Logger LoggerServer
	Tron   TronServer
}

// Profiles returns the per-network client profiles.
func (s Server) Profiles() map[tron.Network]tron.Profile {
	return map[tron.Network]tron.Profile{
		tron.NetworkMainnet: {Network: tron.NetworkMainnet, FullNodeURL: s.Tron.MainnetURL, APIKey: s.Tron.APIKey},
		tron.NetworkNile:    {Network: tron.NetworkNile, FullNodeURL: s.Tron.NileURL, APIKey: s.Tron.APIKey},
	}
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in the project root is applied as overwrite for local development.
	DotEnvTryLoad(".env.local")

	networks := make([]string, 0, len(tron.SupportedNetworks))
	for _, network := range tron.SupportedNetworks {
		networks = append(networks, network.String())
	}

	return Server{
		Echo: EchoServer{
			Debug:                     util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:             util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			BodyLimit:                 util.GetEnv("SERVER_ECHO_BODY_LIMIT", "1M"),
			EnableRecoverMiddleware:   util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware: util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableLoggerMiddleware:    util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableMetricsMiddleware:   util.GetEnvAsBool("SERVER_ECHO_ENABLE_METRICS_MIDDLEWARE", true),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
			LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
			LogResponseBody:    util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_BODY", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Tron: TronServer{
			DefaultNetwork: tron.Network(util.GetEnvEnum("TRON_DEFAULT_NETWORK", tron.NetworkNile.String(), networks)),
			MainnetURL:     util.GetEnv("TRON_MAINNET_URL", tron.DefaultMainnetURL),
			NileURL:        util.GetEnv("TRON_NILE_URL", tron.DefaultNileURL),
			APIKey:         util.GetEnv("TRON_API_KEY", ""),
		},
	}
}
