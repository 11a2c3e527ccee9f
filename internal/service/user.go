package service

import (
	"bytes"
	"context"
	"io"

	"github.com/deespora/backoffice/internal/domain/record"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/listing"
	"github.com/deespora/backoffice/internal/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type UserService interface {
	List(ctx context.Context) []record.Record
	View(ctx context.Context, view listing.ViewState) (*listing.PageResult, error)
	Get(ctx context.Context, id string) (*record.Record, error)
	SetActive(ctx context.Context, id string, active bool) error
	// Export writes every user in format and returns how many were written
	Export(ctx context.Context, w io.Writer, format types.FileFormat) (int, error)
	// Import parses an export back into records for display. Nothing is
	// sent to the backend.
	Import(ctx context.Context, data []byte, format types.FileFormat) ([]record.Record, error)
}

type userService struct {
	ServiceParams
	listings ListingService
	csv      *CSVProcessor
}

func NewUserService(params ServiceParams, listings ListingService) UserService {
	return &userService{
		ServiceParams: params,
		listings:      listings,
		csv:           NewCSVProcessor(params.Logger),
	}
}

func (s *userService) List(ctx context.Context) []record.Record {
	return s.listings.Load(ctx, types.KindUsers)
}

func (s *userService) View(ctx context.Context, view listing.ViewState) (*listing.PageResult, error) {
	return s.listings.View(ctx, types.KindUsers, view)
}

func (s *userService) Get(ctx context.Context, id string) (*record.Record, error) {
	return s.listings.Get(ctx, types.KindUsers, id)
}

func (s *userService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.Backend.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.listings.Invalidate(ctx, types.KindUsers, types.KindAdmins)
	s.Logger.WithContext(ctx).Infow("user status changed",
		"user_id", id,
		"active", active,
	)
	return nil
}

func (s *userService) Export(ctx context.Context, w io.Writer, format types.FileFormat) (int, error) {
	users := s.List(ctx)
	if len(users) == 0 {
		return 0, ierr.NewError("no users to export").
			WithHint("No users to export").
			Mark(ierr.ErrInvalidOperation)
	}

	switch format {
	case types.FileFormatCSV:
		if err := s.csv.WriteUsers(w, users); err != nil {
			return 0, err
		}
	case types.FileFormatJSON:
		raw := lo.Map(users, func(u record.Record, _ int) map[string]any { return u.Raw })
		data, err := json.MarshalIndent(raw, "", "  ")
		if err != nil {
			return 0, ierr.WithError(err).WithHint("Failed to write export").Mark(ierr.ErrSystem)
		}
		if _, err := w.Write(data); err != nil {
			return 0, ierr.WithError(err).WithHint("Failed to write export").Mark(ierr.ErrSystem)
		}
	default:
		_, err := types.ParseFileFormat(string(format))
		return 0, err
	}

	s.Logger.WithContext(ctx).Infow("exported users",
		"format", format,
		"count", len(users),
	)
	return len(users), nil
}

func (s *userService) Import(ctx context.Context, data []byte, format types.FileFormat) ([]record.Record, error) {
	switch format {
	case types.FileFormatJSON:
		trimmed := bytes.TrimSpace(data)
		if !json.Valid(trimmed) {
			return nil, ierr.NewError("invalid json import").
				WithHint("Error importing file: the file is not valid JSON").
				Mark(ierr.ErrValidation)
		}
		return s.Normalizer.NormalizeList(trimmed, types.KindUsers), nil
	case types.FileFormatCSV:
		rows, err := s.csv.ReadUsers(data)
		if err != nil {
			return nil, err
		}
		return lo.Map(rows, func(row map[string]any, _ int) record.Record {
			return record.FromMap(row, types.KindUsers)
		}), nil
	default:
		_, err := types.ParseFileFormat(string(format))
		return nil, err
	}
}
