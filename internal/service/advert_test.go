package service

import (
	"net/http"
	"testing"

	"github.com/deespora/backoffice/internal/api/dto"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/stretchr/testify/suite"
)

type AdvertServiceSuite struct {
	BaseServiceSuite
	adverts AdvertService
}

func TestAdvertService(t *testing.T) {
	suite.Run(t, new(AdvertServiceSuite))
}

func (s *AdvertServiceSuite) SetupTest() {
	s.BaseServiceSuite.SetupTest()
	s.adverts = NewAdvertService(s.params, s.listings)
	s.http.RegisterJSON(http.MethodGet, "/listings", http.StatusOK,
		`{"success":true,"data":{"listings":[{"_id":"ad1","title":"Lagos Kitchen","category":"Restaurant"},{"_id":"ad2","title":"Houses"}]}}`)
}

func (s *AdvertServiceSuite) TestView() {
	result, err := s.adverts.View(s.ctx, listingView("kitchen", "", 1))
	s.Require().NoError(err)
	s.Require().Len(result.Items, 1)
	s.Equal("ad1", result.Items[0].ID)
}

func (s *AdvertServiceSuite) TestPromote() {
	s.http.RegisterJSON(http.MethodPost, "/listings/ad1/promote", http.StatusOK, `{"success":true}`)

	s.Len(s.adverts.List(s.ctx), 2)
	s.Require().NoError(s.adverts.Promote(s.ctx, "ad1", &dto.PromoteRequest{
		PromoteOnHomepage: true,
		PromotionDuration: "7",
	}))
	s.adverts.List(s.ctx)
	s.Equal(2, s.countRequests(http.MethodGet, "/listings"))
}

func (s *AdvertServiceSuite) TestPromoteValidation() {
	err := s.adverts.Promote(s.ctx, "ad1", &dto.PromoteRequest{PromotionDuration: "7"})
	s.True(ierr.IsValidation(err))
	s.Equal("Select at least one promotion option", ierr.DisplayMessage(err, ""))
}

func (s *AdvertServiceSuite) TestDeleteFailureIsSurfaced() {
	s.http.RegisterJSON(http.MethodDelete, "/listings/ad2", http.StatusForbidden, `{"message":"Not allowed"}`)

	err := s.adverts.Delete(s.ctx, "ad2")
	s.True(ierr.IsPermissionDenied(err))
	s.Equal("Not allowed", ierr.DisplayMessage(err, ""))
}

func (s *AdvertServiceSuite) TestGetMissing() {
	_, err := s.adverts.Get(s.ctx, "nope")
	s.True(ierr.IsNotFound(err))
}
