// Package httpserver runs the service's http.Handler with configured
// timeouts and graceful shutdown.
//
// Run blocks until ctx is cancelled or the process receives SIGINT/SIGTERM,
// then drains in-flight requests for at most Config.ShutdownTimeout. Serve is
// the same loop over a caller-supplied listener. Errors are wrapped with
// ErrStart and ErrShutdown.
//
// HealthCheckHandler serves liveness (no checks) and readiness (one or more
// dependency checks, such as pinging Redis) probes.
package httpserver
