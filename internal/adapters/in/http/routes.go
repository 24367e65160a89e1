package http

import (
	"fmt"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the operations of the pickup API.
type ServerInterface interface {
	// (POST /api/v1/pickups)
	CreatePickup(ctx echo.Context) error
	// (GET /api/v1/pickups)
	ListAllPickups(ctx echo.Context) error
	// (GET /api/v1/pickups/mine)
	ListMyPickups(ctx echo.Context) error
	// (GET /api/v1/pickups/volunteer)
	ListVolunteerPickups(ctx echo.Context) error
	// (GET /api/v1/pickups/{id})
	GetPickup(ctx echo.Context, id kernel.UUID) error
	// (DELETE /api/v1/pickups/{id})
	DeletePickup(ctx echo.Context, id kernel.UUID) error
	// (PATCH /api/v1/pickups/{id}/cancel)
	CancelPickup(ctx echo.Context, id kernel.UUID) error
	// (PATCH /api/v1/pickups/{id}/accept)
	AcceptPickup(ctx echo.Context, id kernel.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreatePickup(ctx echo.Context) error {
	return w.Handler.CreatePickup(ctx)
}

func (w *ServerInterfaceWrapper) ListAllPickups(ctx echo.Context) error {
	return w.Handler.ListAllPickups(ctx)
}

func (w *ServerInterfaceWrapper) ListMyPickups(ctx echo.Context) error {
	return w.Handler.ListMyPickups(ctx)
}

func (w *ServerInterfaceWrapper) ListVolunteerPickups(ctx echo.Context) error {
	return w.Handler.ListVolunteerPickups(ctx)
}

func (w *ServerInterfaceWrapper) GetPickup(ctx echo.Context) error {
	id, err := bindPickupID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetPickup(ctx, id)
}

func (w *ServerInterfaceWrapper) DeletePickup(ctx echo.Context) error {
	id, err := bindPickupID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeletePickup(ctx, id)
}

func (w *ServerInterfaceWrapper) CancelPickup(ctx echo.Context) error {
	id, err := bindPickupID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelPickup(ctx, id)
}

func (w *ServerInterfaceWrapper) AcceptPickup(ctx echo.Context) error {
	id, err := bindPickupID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AcceptPickup(ctx, id)
}

// bindPickupID parses the "id" path parameter. Malformed ids are validation errors.
func bindPickupID(ctx echo.Context) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid format for parameter id: %w", err))
	}
	return kernel.UUIDFromGoogle(raw)
}

// EchoRouter is the subset of echo routing used by RegisterHandlers; both
// *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts the API under baseURL. adminOnly guards the list of
// all pickups.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string, adminOnly echo.MiddlewareFunc) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/pickups", w.CreatePickup)
	router.GET(baseURL+"/pickups", w.ListAllPickups, adminOnly)
	router.GET(baseURL+"/pickups/mine", w.ListMyPickups)
	router.GET(baseURL+"/pickups/volunteer", w.ListVolunteerPickups)
	router.GET(baseURL+"/pickups/:id", w.GetPickup)
	router.DELETE(baseURL+"/pickups/:id", w.DeletePickup)
	router.PATCH(baseURL+"/pickups/:id/cancel", w.CancelPickup)
	router.PATCH(baseURL+"/pickups/:id/accept", w.AcceptPickup)
}
