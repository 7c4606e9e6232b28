package config

import "os"

func IsDebug() bool {
	return os.Getenv("SUPPD_DEBUG") == "1"
}
