// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses a well-formed X-Request-ID header sent by the client or
// generates a UUIDv4, stores the id in the request context and echoes it in
// the response. LoggerExtractor plugs into logger.WithContextExtractors so
// log lines carry the id, and Propagate copies it onto outbound requests to
// the auth backend.
package requestid
