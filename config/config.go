package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	MYSQL_DSN          = ""          // MySQL will be used if this is set
	SQLITE_FILE        = "yatube.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS       = "0.0.0.0:8080"
	TMP_DIR            = "/tmp" // Used for temporary S3 downloads
	DEFAULT_BUCKET_DIR = ""     // Used for creating the initial image bucket
	SESSION_KEY        = "this is a long key" // TODO: fail on startup when unset outside DEBUG_MODE
	DEBUG_MODE         = true
	POSTS_PER_PAGE     = 10   // Shared by all listing endpoints
	INDEX_CACHE_TTL    = 20   // Seconds the global post listing may be stale
	THUMB_SIZE         = 1280 // Max thumbnail dimension for post images
	RATE_LIMIT_RPS     = 1.0  // Per-IP budget for write requests
	RATE_LIMIT_BURST   = 5
)

func init() {
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("DEFAULT_BUCKET_DIR", &DEFAULT_BUCKET_DIR)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("POSTS_PER_PAGE", &POSTS_PER_PAGE)
	readEnvInt("INDEX_CACHE_TTL", &INDEX_CACHE_TTL)
	readEnvInt("THUMB_SIZE", &THUMB_SIZE)
	readEnvFloat("RATE_LIMIT_RPS", &RATE_LIMIT_RPS)
	readEnvInt("RATE_LIMIT_BURST", &RATE_LIMIT_BURST)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvFloat(name string, value *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	*value = f
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
