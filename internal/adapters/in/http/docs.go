// Package http exposes the pickup use cases over HTTP with echo.
//
// Requests pass through the identity middleware, which resolves the caller
// from an optional bearer JWT, and through OpenAPI request validation against
// the embedded openapi.yaml. Handlers return domain errors unchanged;
// ErrorHandler maps their category onto a status code and a {code, message}
// body.
package http
