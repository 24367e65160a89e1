// Package errs provides the error taxonomy shared by the pickup domain,
// its use cases and its adapters.
//
// Every error kind follows the same pattern:
//   - a sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - a struct type carrying the details of the failure
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for classification
//
// The kinds map onto the categories callers need to tell apart:
//   - ValueIsRequiredError, ValueIsInvalidError: validation failures
//   - UnauthenticatedError: the operation needs an authenticated principal
//   - ForbiddenError: the principal lacks the role or ownership required
//   - ObjectNotFoundError: the referenced object does not exist
//   - ConflictError: the requested transition is illegal in the current state
//   - StoreError: the persistence layer failed unexpectedly
//
// CategoryOf classifies any error into one of these categories so adapters can
// translate them into caller-visible representations.
package errs
