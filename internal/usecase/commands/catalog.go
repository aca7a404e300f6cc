package commands

import (
	"context"
	"errors"

	"bagtrack/internal/domain/catalog"
	"bagtrack/internal/domain/location"
	reqdto "bagtrack/internal/handler/dto/request"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ServiceItemCommands interface {
	CreateServiceItem(ctx context.Context, req reqdto.CreateServiceItemRequest) (*queries.ServiceItemView, error)
}

type serviceItemCommandsImpl struct {
	serviceRepo    ServiceItemRepository
	serviceQueries queries.ServiceItemQueries
}

func NewServiceItemCommands(serviceRepo ServiceItemRepository, serviceQueries queries.ServiceItemQueries) ServiceItemCommands {
	return &serviceItemCommandsImpl{serviceRepo: serviceRepo, serviceQueries: serviceQueries}
}

func (c *serviceItemCommandsImpl) CreateServiceItem(ctx context.Context, req reqdto.CreateServiceItemRequest) (*queries.ServiceItemView, error) {
	price := decimal.NewFromFloat(req.UnitPrice)

	name := location.LocalizedText{Ar: req.NameAr, En: req.NameEn}
	item, err := catalog.NewServiceItem(name, req.Category, price, req.DisplayOrder)
	if err != nil {
		if errors.Is(err, catalog.ErrNegativePrice) {
			return nil, errs.ErrInvalidPrice
		}
		return nil, errs.Wrap(err, "failed to build service item")
	}

	if err := c.serviceRepo.Create(ctx, item); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.serviceQueries.GetByID(ctx, item.ID())
}
