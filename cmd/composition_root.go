package cmd

import (
	"time"

	"freightbid/internal/adapters/out/postgres"
	"freightbid/internal/core/application/usecases/commands"
	"freightbid/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      commands.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      time.Now,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSelectProviderCommandHandler() commands.SelectProviderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectProviderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSubmitQuoteCommandHandler() commands.SubmitQuoteCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitQuoteCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRemoveOrphanQuotesCommandHandler() commands.RemoveOrphanQuotesCommandHandler {
	var f commands.QuoteUoWFactory = FuncQuoteUoWFactory(func() commands.QuoteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrphanQuotesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetQuotesForOrderQueryHandler() queries.GetQuotesForOrderQueryHandler {
	return queries.NewGetQuotesForOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowestQuoteQueryHandler() queries.GetLowestQuoteQueryHandler {
	return queries.NewGetLowestQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowestQuotesQueryHandler() queries.GetLowestQuotesQueryHandler {
	return queries.NewGetLowestQuotesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncQuoteUoWFactory func() commands.QuoteUoW

func (f FuncQuoteUoWFactory) Create() commands.QuoteUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
