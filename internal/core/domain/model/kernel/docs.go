// Package kernel provides the domain primitives shared by the pickup model:
//   - UUID: identifier value object with zero-value detection
//   - Principal and Role: the acting caller as supplied by the identity collaborator
//
// Principals are passed explicitly into every use case instead of being read
// from request-scoped state, so use cases can be exercised without a transport.
package kernel
