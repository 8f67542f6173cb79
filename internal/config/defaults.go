package config

const (
	defaultDataDir               = "~/.local/share/paimon/data"
	defaultOutputPath            = "~/.local/share/paimon/characters.json"
	defaultLogDir                = "~/.local/share/paimon/logs"
	defaultTextMapLanguage       = "EN"
	defaultRefreshScript         = "./script/pull-data.sh"
	defaultRefreshTimeoutSeconds = 600
	defaultHistoryEnabled        = true
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			OutputPath: defaultOutputPath,
			LogDir:     defaultLogDir,
		},
		TextMap: TextMap{
			Language: defaultTextMapLanguage,
		},
		Refresh: Refresh{
			Script:         defaultRefreshScript,
			TimeoutSeconds: defaultRefreshTimeoutSeconds,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
