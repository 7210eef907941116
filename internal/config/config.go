package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	APIBaseURL   string
	SlackMode    bool
	DebugMode    bool
	LogLevel     string
	LogFormat    string
	DefaultQuery string
	S3Bucket     string
	S3ObjectKey  string
	AWSRegion    string
}

// envKeys maps config keys to the environment variables they are read from.
var envKeys = map[string]string{
	"api_url":       "GITHUB_API_URL",
	"slack_mode":    "SLACK_MODE",
	"debug":         "DEBUG",
	"log_level":     "DEVFINDER_LOG_LEVEL",
	"log_format":    "DEVFINDER_LOG_FORMAT",
	"query":         "DEVFINDER_QUERY",
	"s3_bucket":     "S3_BUCKET_NAME",
	"s3_object_key": "S3_OBJECT_KEY",
	"aws_region":    "AWS_REGION",
}

// FromEnvironment creates a Config from environment variables.
func FromEnvironment() Config {
	v := viper.New()
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	return Config{
		APIBaseURL:   v.GetString("api_url"),
		SlackMode:    parseFlag(v.GetString("slack_mode")),
		DebugMode:    parseFlag(v.GetString("debug")),
		LogLevel:     v.GetString("log_level"),
		LogFormat:    strings.ToLower(v.GetString("log_format")),
		DefaultQuery: v.GetString("query"),
		S3Bucket:     v.GetString("s3_bucket"),
		S3ObjectKey:  v.GetString("s3_object_key"),
		AWSRegion:    v.GetString("aws_region"),
	}
}

// parseFlag reports whether val is one of "true", "1" or "yes", ignoring
// case and surrounding space.
func parseFlag(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
