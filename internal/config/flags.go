package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line configuration flags from args (without
// the program name).
//
// Flags:
//
//	-app-id messaging application identifier
//	-push-project push-messaging project number
//	-sync-policy historic sync policy
//	-sdk-logging verbose messaging client logs
//	-a messaging API base URL
//	-ws messaging realtime endpoint URL
//	-request-timeout request timeout (e.g., "15s")
//	-d local cache database DSN
//	-fingerprint runtime fingerprint override
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("layer-quickstart", flag.ContinueOnError)

	var (
		appID          string
		pushProject    string
		syncPolicy     string
		sdkLogging     bool
		httpAddress    string
		wsAddress      string
		requestTimeout time.Duration
		dsn            string
		fingerprint    string
		jsonConfigPath string
	)

	fs.StringVar(&appID, "app-id", "", "Messaging application ID")
	fs.StringVar(&pushProject, "push-project", "", "Push-messaging project number")
	fs.StringVar(&syncPolicy, "sync-policy", "", "Historic sync policy")
	fs.BoolVar(&sdkLogging, "sdk-logging", false, "Verbose messaging client logs")
	fs.StringVar(&httpAddress, "a", "", "Messaging API base URL")
	fs.StringVar(&wsAddress, "ws", "", "Messaging realtime endpoint URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&dsn, "d", "", "Local cache database DSN")
	fs.StringVar(&fingerprint, "fingerprint", "", "Runtime fingerprint override")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AppID:              appID,
			PushProjectNumber:  pushProject,
			HistoricSyncPolicy: syncPolicy,
			SDKLogging:         sdkLogging,
		},
		Adapter: Adapter{
			HTTPAddress:      httpAddress,
			WebSocketAddress: wsAddress,
			RequestTimeout:   requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		Identity:     Identity{Fingerprint: fingerprint},
		JSONFilePath: jsonConfigPath,
	}, nil
}
