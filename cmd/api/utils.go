package api

import (
	"os"
	"strings"
)

func GetEnv(key, value string) string {
	val := os.Getenv(key)
	if val == "" {
		return value
	}
	return val
}

// SplitPair splits "key=value", value is empty without a '='.
func SplitPair(value string) (string, string) {
	values := strings.SplitN(value, "=", 2)
	if len(values) == 2 {
		return values[0], values[1]
	}
	return value, ""
}
