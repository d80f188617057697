// Package api provides HTTP client functionality for communicating with a
// Synapse homeserver's admin API. It handles bearer authentication,
// request/response serialization, and mapping of error responses to typed
// errors.
//
// # Request Dispatch
//
// All endpoints are rooted at {baseURL}/_synapse/admin/. [Client.Send]
// issues a single request and returns the raw response; [Client.Do] wraps
// Send with JSON encoding of the request body and decoding of the response
// body. The endpoint methods in endpoints.go build on Do.
//
// # Error Mapping
//
// Three error kinds are distinguished:
//
//   - [APIError]: the server answered with a status code in [300, 500).
//     The message is taken from the response's "error" JSON field when
//     present, otherwise the HTTP reason phrase.
//   - [NetworkError]: the transport could not complete the exchange
//     (DNS, connection, TLS, timeout).
//   - [ParseError]: the response body could not be decoded as JSON.
//
// Status codes below 300 and at or above 500 are NOT converted to errors;
// they are returned as ordinary responses. This asymmetry matches the
// established contract of the admin endpoints and is preserved on purpose.
// Callers wanting stricter handling of 5xx responses must inspect
// [Response.StatusCode] themselves.
//
// Sentinel errors are provided for common conditions:
//
//   - [ErrUnauthorized]: missing, invalid or expired token (401).
//   - [ErrForbidden]: authenticated but not a server admin (403).
//   - [ErrNotFound]: resource does not exist (404).
//   - [ErrRateLimited]: rate limit exceeded (429).
//
// Use errors.Is to check for them:
//
//	if errors.Is(err, api.ErrForbidden) {
//	    // token lacks admin rights
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. The access token may be
// replaced between calls via [Client.SetAccessToken]; a replacement during
// an in-flight request affects only subsequent requests.
package api
