package cmd

import (
	"wastepickup/internal/adapters/out/postgres"
	"wastepickup/internal/adapters/out/postgres/pickuprepo"
	"wastepickup/internal/core/application/usecases/commands"
	"wastepickup/internal/core/application/usecases/queries"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/core/ports"
	"wastepickup/internal/pkg/logger"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	uowFactory *postgres.GormUnitOfWorkFactory
	queryRepo  ports.PickupQueryRepository
	defaults   pickup.Defaults
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, log *logger.Logger) CompositionRoot {
	return CompositionRoot{
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, log),
		queryRepo:  pickuprepo.NewGormPickupRepository(gormDB, nil),
		defaults:   pickup.StandardDefaults(),
	}
}

func (c *CompositionRoot) pickupUoWFactory() commands.PickupUoWFactory {
	return FuncPickupUoWFactory(func() commands.PickupUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePickupCommandHandler() commands.CreatePickupCommandHandler {
	return commands.NewCreatePickupCommandHandler(c.pickupUoWFactory(), c.defaults)
}

func (c *CompositionRoot) CreateCancelPickupCommandHandler() commands.CancelPickupCommandHandler {
	return commands.NewCancelPickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateAcceptPickupCommandHandler() commands.AcceptPickupCommandHandler {
	return commands.NewAcceptPickupCommandHandler(c.pickupUoWFactory(), nil)
}

func (c *CompositionRoot) CreateDeletePickupCommandHandler() commands.DeletePickupCommandHandler {
	return commands.NewDeletePickupCommandHandler(c.pickupUoWFactory())
}

func (c *CompositionRoot) CreateListUserPickupsQueryHandler() queries.ListUserPickupsQueryHandler {
	return queries.NewListUserPickupsQueryHandler(c.queryRepo)
}

func (c *CompositionRoot) CreateListAllPickupsQueryHandler() queries.ListAllPickupsQueryHandler {
	return queries.NewListAllPickupsQueryHandler(c.queryRepo)
}

func (c *CompositionRoot) CreateListVolunteerPickupsQueryHandler() queries.ListVolunteerPickupsQueryHandler {
	return queries.NewListVolunteerPickupsQueryHandler(c.queryRepo)
}

func (c *CompositionRoot) CreateGetPickupQueryHandler() queries.GetPickupQueryHandler {
	return queries.NewGetPickupQueryHandler(c.queryRepo)
}

func (c *CompositionRoot) CreateCountPickupsByStatusQueryHandler() queries.CountPickupsByStatusQueryHandler {
	return queries.NewCountPickupsByStatusQueryHandler(c.queryRepo)
}

type FuncPickupUoWFactory func() commands.PickupUoW

func (f FuncPickupUoWFactory) Create() commands.PickupUoW {
	return f()
}
