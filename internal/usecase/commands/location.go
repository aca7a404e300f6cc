package commands

import (
	"context"

	"bagtrack/internal/domain/location"
	reqdto "bagtrack/internal/handler/dto/request"
	"bagtrack/internal/infra"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/usecase/queries"

	"github.com/google/uuid"
)

type LocationCommands interface {
	CreateLocation(ctx context.Context, req reqdto.CreateLocationRequest) (*queries.LocationView, error)
	DeactivateLocation(ctx context.Context, id uuid.UUID) error
}

type locationCommandsImpl struct {
	locationRepo    LocationRepository
	locationQueries queries.LocationQueries
}

func NewLocationCommands(locationRepo LocationRepository, locationQueries queries.LocationQueries) LocationCommands {
	return &locationCommandsImpl{locationRepo: locationRepo, locationQueries: locationQueries}
}

func (c *locationCommandsImpl) CreateLocation(ctx context.Context, req reqdto.CreateLocationRequest) (*queries.LocationView, error) {
	name := location.LocalizedText{Ar: req.NameAr, En: req.NameEn}

	var address *location.LocalizedText
	if req.AddressAr != nil || req.AddressEn != nil {
		address = &location.LocalizedText{}
		if req.AddressAr != nil {
			address.Ar = *req.AddressAr
		}
		if req.AddressEn != nil {
			address.En = *req.AddressEn
		}
	}

	loc, err := location.NewLocation(name, address, req.DisplayOrder)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build location")
	}

	if err := c.locationRepo.Create(ctx, loc); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateQRToken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.locationQueries.GetByID(ctx, loc.ID())
}

func (c *locationCommandsImpl) DeactivateLocation(ctx context.Context, id uuid.UUID) error {
	if err := c.locationRepo.Deactivate(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrLocationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
