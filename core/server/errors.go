package server

import "errors"

// Server lifecycle errors
var (
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrListen               = errors.New("failed to bind server address")
	ErrHTTPServer           = errors.New("HTTP server error")
	ErrShutdown             = errors.New("failed to shutdown HTTP server gracefully")
)
