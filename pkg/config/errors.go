package config

import "errors"

var (
	// ErrParsingConfig wraps the underlying env.Parse error when the
	// environment can't be decoded into the requested struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrInvalidConfigType is returned when the destination passed to Load
	// is not a pointer to a struct.
	ErrInvalidConfigType = errors.New("config: invalid config type")

	// ErrConfigNotLoaded signals a Load raced with itself and lost: the
	// parse succeeded for some goroutine but this call's cache re-read
	// found nothing for the type, which should never happen in practice.
	ErrConfigNotLoaded = errors.New("config: configuration has not been loaded")

	// ErrNilPointer is returned when Load is given a nil destination.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")

	// ErrLoadingEnvFile wraps the underlying error when LoadEnv can't
	// read or apply one of the given .env files.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
