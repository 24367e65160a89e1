package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"wastepickup/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// RequestValidation checks requests against doc. Requests that match no
// documented route are passed through untouched.
func RequestValidation(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return requestValidationError(validateErr)
			}
			return next(c)
		}
	}, nil
}

// requestValidationError turns an openapi3filter failure into one validation
// error per offending field. The schema and the rejected value are dropped.
func requestValidationError(err error) error {
	if joined := errors.Join(fieldErrors(err)...); joined != nil {
		return joined
	}
	return errs.NewValueIsInvalidError("request")
}

func fieldErrors(err error) []error {
	switch e := err.(type) {
	case openapi3.MultiError:
		var out []error
		for _, inner := range e {
			out = append(out, fieldErrors(inner)...)
		}
		return out
	case *openapi3filter.RequestError:
		if e.Parameter != nil {
			if errors.Is(e.Err, openapi3filter.ErrInvalidRequired) {
				return []error{errs.NewValueIsRequiredError(e.Parameter.Name)}
			}
			return []error{errs.NewValueIsInvalidError(e.Parameter.Name)}
		}
		if errors.Is(e.Err, openapi3filter.ErrInvalidRequired) {
			return []error{errs.NewValueIsRequiredError("body")}
		}
		if out := fieldErrors(e.Err); len(out) > 0 {
			return out
		}
		return []error{errs.NewValueIsInvalidError("body")}
	case *openapi3.SchemaError:
		field := strings.Join(e.JSONPointer(), ".")
		if field == "" {
			field = "body"
		}
		if e.SchemaField == "required" {
			return []error{errs.NewValueIsRequiredError(field)}
		}
		return []error{errs.NewValueIsInvalidError(field)}
	default:
		return nil
	}
}

var swaggerOnce sync.Once

// registerSwagger publishes doc to the swagger UI. swag keeps a process-wide
// registry, so only the first document is registered.
func registerSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	swaggerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Title:            doc.Info.Title,
			Version:          doc.Info.Version,
			Description:      doc.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})
	return nil
}
