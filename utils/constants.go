// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis application-session keys.
const SessionCachePrefix = "appsession:"

// SessionCacheTTL is the time-to-live for application wizard sessions.
const SessionCacheTTL = 30 * time.Minute
