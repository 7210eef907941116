package config

import (
	"os"
	"testing"
)

func TestFromEnvironment_Defaults(t *testing.T) {
	for _, env := range envKeys {
		os.Unsetenv(env)
	}

	cfg := FromEnvironment()
	if cfg.APIBaseURL != "" {
		t.Errorf("expected empty API URL, got %q", cfg.APIBaseURL)
	}
	if cfg.SlackMode {
		t.Error("expected SlackMode false by default")
	}
	if cfg.DebugMode {
		t.Error("expected DebugMode false by default")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestFromEnvironment_Values(t *testing.T) {
	t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3/")
	t.Setenv("DEVFINDER_LOG_LEVEL", "warn")
	t.Setenv("DEVFINDER_LOG_FORMAT", "JSON")
	t.Setenv("DEVFINDER_QUERY", "torvalds")
	t.Setenv("S3_BUCKET_NAME", "bucket")
	t.Setenv("S3_OBJECT_KEY", "devfinder-%s.json")
	t.Setenv("AWS_REGION", "us-east-2")

	cfg := FromEnvironment()
	if cfg.APIBaseURL != "https://ghe.example.com/api/v3/" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.DefaultQuery != "torvalds" {
		t.Errorf("DefaultQuery = %q", cfg.DefaultQuery)
	}
	if cfg.S3Bucket != "bucket" || cfg.S3ObjectKey != "devfinder-%s.json" || cfg.AWSRegion != "us-east-2" {
		t.Errorf("S3 settings = %q %q %q", cfg.S3Bucket, cfg.S3ObjectKey, cfg.AWSRegion)
	}
}

func TestFromEnvironment_SlackMode(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{" Yes ", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"off", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run("SLACK_MODE="+tt.val, func(t *testing.T) {
			t.Setenv("SLACK_MODE", tt.val)
			cfg := FromEnvironment()
			if cfg.SlackMode != tt.want {
				t.Errorf("SLACK_MODE=%q → SlackMode=%v, want %v", tt.val, cfg.SlackMode, tt.want)
			}
		})
	}
}

func TestFromEnvironment_DebugMode(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"enabled", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run("DEBUG="+tt.val, func(t *testing.T) {
			t.Setenv("DEBUG", tt.val)
			cfg := FromEnvironment()
			if cfg.DebugMode != tt.want {
				t.Errorf("DEBUG=%q → DebugMode=%v, want %v", tt.val, cfg.DebugMode, tt.want)
			}
		})
	}
}
