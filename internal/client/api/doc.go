// Package api contains the HTTP client for the taskdeck backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     auth, users, tasks, groups, and file upload.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that builds
//     requests, reads the bearer token fresh from an injected source on
//     every call, classifies responses, and notifies a registered callback
//     on 401 before returning the error to the caller.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the status code and
// the best human-readable message the response body offered. APIError
// matches the shared sentinels via errors.Is: a 401 matches
// common.ErrUnauthorized, a 404 matches common.ErrNotFound. Transport-level
// failures are wrapped in common.ErrUnavailable.
//
// The pipeline itself never touches session state or the credential store;
// both directions go through the injected token source and callback.
package api
