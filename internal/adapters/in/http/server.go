package http

import (
	"context"
	"net/http"

	"wastepickup/internal/core/application/usecases/commands"
	"wastepickup/internal/core/application/usecases/queries"
	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/pkg/errs"
	"wastepickup/internal/pkg/logger"
	"wastepickup/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type CreatePickupHandler interface {
	Handle(ctx context.Context, cmd commands.CreatePickupCommand) (*pickup.Pickup, error)
}

type CancelPickupHandler interface {
	Handle(ctx context.Context, cmd commands.CancelPickupCommand) (*pickup.Pickup, error)
}

type AcceptPickupHandler interface {
	Handle(ctx context.Context, cmd commands.AcceptPickupCommand) (*pickup.Pickup, error)
}

type DeletePickupHandler interface {
	Handle(ctx context.Context, cmd commands.DeletePickupCommand) error
}

type ListUserPickupsHandler interface {
	Handle(ctx context.Context, query queries.ListUserPickupsQuery) ([]queries.PickupResponse, error)
}

type ListAllPickupsHandler interface {
	Handle(ctx context.Context, query queries.ListAllPickupsQuery) ([]queries.PickupResponse, error)
}

type ListVolunteerPickupsHandler interface {
	Handle(ctx context.Context, query queries.ListVolunteerPickupsQuery) ([]queries.PickupResponse, error)
}

type GetPickupHandler interface {
	Handle(ctx context.Context, query queries.GetPickupQuery) (queries.PickupResponse, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreatePickup         CreatePickupHandler
	CancelPickup         CancelPickupHandler
	AcceptPickup         AcceptPickupHandler
	DeletePickup         DeletePickupHandler
	ListUserPickups      ListUserPickupsHandler
	ListAllPickups       ListAllPickupsHandler
	ListVolunteerPickups ListVolunteerPickupsHandler
	GetPickup            GetPickupHandler
}

// Server implements ServerInterface on top of the pickup use cases.
// Handlers return errors untouched; ErrorHandler renders them.
type Server struct {
	handlers Handlers
	metrics  *metrics.PickupMetrics
	log      *logger.Logger
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, m *metrics.PickupMetrics, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{handlers: handlers, metrics: m, log: log}
}

// CreatePickup handles POST /api/v1/pickups.
func (s *Server) CreatePickup(ctx echo.Context) error {
	var body NewPickup
	if err := ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	details, err := body.details()
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreatePickupCommand(PrincipalFrom(ctx), details, body.options())
	if err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	created, err := s.handlers.CreatePickup.Handle(reqCtx, cmd)
	if err != nil {
		return err
	}
	s.metrics.IncTransition(metrics.TransitionCreated)
	s.log.Info(s.log.WithField(reqCtx, "pickup_id", created.ID().String()), "pickup scheduled")

	return ctx.JSON(http.StatusCreated, CreatedPickup{
		Message: MsgPickupScheduled,
		Pickup:  toPickup(queries.NewPickupResponse(created)),
	})
}

// ListAllPickups handles GET /api/v1/pickups.
func (s *Server) ListAllPickups(ctx echo.Context) error {
	list, err := s.handlers.ListAllPickups.Handle(ctx.Request().Context(), queries.NewListAllPickupsQuery(PrincipalFrom(ctx)))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPrioritizedList(list))
}

// ListMyPickups handles GET /api/v1/pickups/mine.
func (s *Server) ListMyPickups(ctx echo.Context) error {
	list, err := s.handlers.ListUserPickups.Handle(ctx.Request().Context(), queries.NewListUserPickupsQuery(PrincipalFrom(ctx)))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPrioritizedList(list))
}

// ListVolunteerPickups handles GET /api/v1/pickups/volunteer.
func (s *Server) ListVolunteerPickups(ctx echo.Context) error {
	query := queries.NewListVolunteerPickupsQuery(PrincipalFrom(ctx))
	list, err := s.handlers.ListVolunteerPickups.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPickupList(list))
}

// GetPickup handles GET /api/v1/pickups/{id}.
func (s *Server) GetPickup(ctx echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetPickupQuery(id)
	if err != nil {
		return err
	}
	found, err := s.handlers.GetPickup.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, PickupEnvelope{Success: true, Pickup: toPickup(found)})
}

// CancelPickup handles PATCH /api/v1/pickups/{id}/cancel.
func (s *Server) CancelPickup(ctx echo.Context, id kernel.UUID) error {
	cmd, err := commands.NewCancelPickupCommand(PrincipalFrom(ctx), id)
	if err != nil {
		return err
	}
	cancelled, err := s.handlers.CancelPickup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.metrics.IncTransition(metrics.TransitionCancelled)

	return ctx.JSON(http.StatusOK, PickupEnvelope{
		Success: true,
		Message: MsgPickupCancelled,
		Pickup:  toPickup(queries.NewPickupResponse(cancelled)),
	})
}

// AcceptPickup handles PATCH /api/v1/pickups/{id}/accept.
func (s *Server) AcceptPickup(ctx echo.Context, id kernel.UUID) error {
	cmd, err := commands.NewAcceptPickupCommand(PrincipalFrom(ctx), id)
	if err != nil {
		return err
	}
	accepted, err := s.handlers.AcceptPickup.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.metrics.IncTransition(metrics.TransitionAccepted)

	return ctx.JSON(http.StatusOK, PickupEnvelope{
		Success: true,
		Message: MsgPickupCompleted,
		Pickup:  toPickup(queries.NewPickupResponse(accepted)),
	})
}

// DeletePickup handles DELETE /api/v1/pickups/{id}.
func (s *Server) DeletePickup(ctx echo.Context, id kernel.UUID) error {
	cmd, err := commands.NewDeletePickupCommand(PrincipalFrom(ctx), id)
	if err != nil {
		return err
	}
	if err = s.handlers.DeletePickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	s.metrics.IncTransition(metrics.TransitionDeleted)

	return ctx.JSON(http.StatusOK, Acknowledgement{Success: true, Message: MsgPickupDeleted})
}
