package config

import "os"

func IsDebug() bool {
	return os.Getenv("SENSEI_DEBUG") == "1"
}

// IsJSONLog is read before AppConfig exists, since the logger comes first.
func IsJSONLog() bool {
	return os.Getenv("LOG_FORMAT") == "json"
}
