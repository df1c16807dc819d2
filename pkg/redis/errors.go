package redis

import "errors"

// Errors returned by Connect and Healthcheck when the distributed parse
// cache backend can't be reached or configured.
var (
	ErrFailedToParseRedisConnString = errors.New("redis: invalid connection URL")
	ErrRedisNotReady                = errors.New("redis: server did not become ready within the configured retry budget")
	ErrEmptyConnectionURL           = errors.New("redis: connection URL is empty")
	ErrHealthcheckFailed            = errors.New("redis: healthcheck ping failed")
)
