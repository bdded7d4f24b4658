package redis

import "time"

const (
	// KeyStats namespaces cached page statistics: backoffice:{key}.
	KeyStats = "backoffice:%s"
)

var TTLStats = 30 * time.Second
