package service

import (
	"context"

	"github.com/deespora/backoffice/internal/api/dto"
	"github.com/deespora/backoffice/internal/domain/record"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/listing"
	"github.com/deespora/backoffice/internal/types"
)

// AdminService manages back-office operators. Admins are the users whose
// role (or, failing that, email or first name) marks them as admin.
type AdminService interface {
	List(ctx context.Context) []record.Record
	View(ctx context.Context, view listing.ViewState) (*listing.PageResult, error)
	Get(ctx context.Context, id string) (*record.Record, error)
	Create(ctx context.Context, req *dto.CreateAdminRequest) error
	SetActive(ctx context.Context, id string, active bool) error
}

type adminService struct {
	ServiceParams
	listings ListingService
}

func NewAdminService(params ServiceParams, listings ListingService) AdminService {
	return &adminService{
		ServiceParams: params,
		listings:      listings,
	}
}

func (s *adminService) List(ctx context.Context) []record.Record {
	return s.listings.Load(ctx, types.KindAdmins)
}

func (s *adminService) View(ctx context.Context, view listing.ViewState) (*listing.PageResult, error) {
	return s.listings.View(ctx, types.KindAdmins, view)
}

func (s *adminService) Get(ctx context.Context, id string) (*record.Record, error) {
	rec, err := s.listings.Get(ctx, types.KindAdmins, id)
	if err != nil {
		return nil, err
	}
	if !rec.IsAdmin() {
		return nil, ierr.NewErrorf("user %s is not an admin", id).
			WithHint("This user is not an admin").
			Mark(ierr.ErrNotFound)
	}
	rec.Kind = types.KindAdmins
	return rec, nil
}

func (s *adminService) Create(ctx context.Context, req *dto.CreateAdminRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.Backend.Register(ctx, req); err != nil {
		return err
	}
	s.listings.Invalidate(ctx, types.KindUsers, types.KindAdmins)
	s.Logger.WithContext(ctx).Infow("admin created",
		"email", req.Email,
		"role", req.Role,
	)
	return nil
}

func (s *adminService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.Backend.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.listings.Invalidate(ctx, types.KindUsers, types.KindAdmins)
	return nil
}
