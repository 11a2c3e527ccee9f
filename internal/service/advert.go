package service

import (
	"context"

	"github.com/deespora/backoffice/internal/api/dto"
	"github.com/deespora/backoffice/internal/domain/record"
	"github.com/deespora/backoffice/internal/listing"
	"github.com/deespora/backoffice/internal/types"
)

// AdvertService manages the generic listings collection
type AdvertService interface {
	List(ctx context.Context) []record.Record
	View(ctx context.Context, view listing.ViewState) (*listing.PageResult, error)
	Get(ctx context.Context, id string) (*record.Record, error)
	Promote(ctx context.Context, id string, req *dto.PromoteRequest) error
	Delete(ctx context.Context, id string) error
	Create(ctx context.Context, req *dto.CreateListingRequest) (*record.Record, error)
}

type advertService struct {
	ServiceParams
	listings ListingService
}

func NewAdvertService(params ServiceParams, listings ListingService) AdvertService {
	return &advertService{
		ServiceParams: params,
		listings:      listings,
	}
}

func (s *advertService) List(ctx context.Context) []record.Record {
	return s.listings.Load(ctx, types.KindListings)
}

func (s *advertService) View(ctx context.Context, view listing.ViewState) (*listing.PageResult, error) {
	return s.listings.View(ctx, types.KindListings, view)
}

func (s *advertService) Get(ctx context.Context, id string) (*record.Record, error) {
	return s.listings.Get(ctx, types.KindListings, id)
}

func (s *advertService) Promote(ctx context.Context, id string, req *dto.PromoteRequest) error {
	if err := s.Backend.Promote(ctx, id, req); err != nil {
		return err
	}
	s.listings.Invalidate(ctx, types.KindListings)
	s.Logger.WithContext(ctx).Infow("advert promoted",
		"listing_id", id,
		"duration", req.PromotionDuration,
	)
	return nil
}

func (s *advertService) Delete(ctx context.Context, id string) error {
	if err := s.Backend.DeleteListing(ctx, id); err != nil {
		return err
	}
	s.listings.Invalidate(ctx, types.KindListings)
	s.Logger.WithContext(ctx).Infow("advert deleted", "listing_id", id)
	return nil
}

func (s *advertService) Create(ctx context.Context, req *dto.CreateListingRequest) (*record.Record, error) {
	rec, err := s.Backend.CreateListing(ctx, req)
	if err != nil {
		return nil, err
	}
	s.listings.Invalidate(ctx, types.KindListings)
	return rec, nil
}
