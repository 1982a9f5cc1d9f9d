package config

import (
	"os"
	"strconv"
	"strings"
)

// applyEnv overlays environment variables on top of the loaded file.
// Unset variables leave the file values alone.
func (c *Config) applyEnv() {
	if v := os.Getenv("TASKMIND_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TASKMIND_STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("TASKMIND_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v, ok := getEnvBool("TASKMIND_SYNC_ENABLED"); ok {
		c.Sync.Enabled = v
	}
	if v := getEnvInt("TASKMIND_SYNC_PUSH_TIMEOUT_SECONDS"); v > 0 {
		c.Sync.PushTimeoutSeconds = v
	}
	if v := os.Getenv("TASKMIND_GENAI_ENDPOINT"); v != "" {
		c.GenAI.Endpoint = v
	}
	if v := getEnvInt("TASKMIND_GENAI_TIMEOUT_SECONDS"); v > 0 {
		c.GenAI.TimeoutSeconds = v
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvBool(key string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes":
		return true, true
	case "0", "false", "no":
		return false, true
	default:
		return false, false
	}
}
