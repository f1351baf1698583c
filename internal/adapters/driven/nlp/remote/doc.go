// Package remote is an HTTP client for the NLP backend service.
//
// The backend exposes JSON endpoints under /api. Every response carries a
// "success" flag; a false flag is surfaced as an *APIError. Requests are
// throttled client side with a token bucket, and a 429 response pauses
// further requests for the Retry-After period before returning
// domain.ErrRateLimited. Failed requests are not retried.
package remote
