// Package fetch performs a single HTTP GET and decodes the JSON body.
//
// Each call issues exactly one request: no retries, no response caching.
// Transport and decoding errors are returned wrapped with %w so errors.Is
// and errors.As reach the underlying cause. The response status is not
// interpreted; whatever JSON the server sends back is decoded and returned.
//
// The HTTP transport is a Doer, which *http.Client satisfies. Tests and
// callers that need a different transport supply one with WithDoer.
package fetch
