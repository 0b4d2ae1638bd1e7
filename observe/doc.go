// Package observe provides tracing, metrics, and structured logging for
// utilkit operations.
//
// An operation is identified by an OpMeta (component and name, for example
// fetch.get_json). Middleware wraps an ExecuteFunc so that every call
// produces one span, one set of metric points, and one log line. Packages
// that perform I/O accept an optional Observer and stay silent without one.
package observe
