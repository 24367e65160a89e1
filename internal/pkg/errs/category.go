package errs

import "errors"

// Category groups errors into the classes adapters translate for callers.
type Category string

const (
	CategoryValidation      Category = "validation"
	CategoryUnauthenticated Category = "unauthenticated"
	CategoryForbidden       Category = "forbidden"
	CategoryNotFound        Category = "not_found"
	CategoryConflict        Category = "conflict"
	CategoryStore           Category = "store"
	CategoryUnknown         Category = "unknown"
)

// CategoryOf returns the category of err. The most specific category wins, so
// a StoreError wrapping a not-found cause is still a store failure.
func CategoryOf(err error) Category {
	switch {
	case err == nil:
		return CategoryUnknown
	case errors.Is(err, ErrStore):
		return CategoryStore
	case errors.Is(err, ErrValueIsRequired), errors.Is(err, ErrValueIsInvalid):
		return CategoryValidation
	case errors.Is(err, ErrUnauthenticated):
		return CategoryUnauthenticated
	case errors.Is(err, ErrForbidden):
		return CategoryForbidden
	case errors.Is(err, ErrObjectNotFound):
		return CategoryNotFound
	case errors.Is(err, ErrConflict):
		return CategoryConflict
	default:
		return CategoryUnknown
	}
}
