package services

import (
	"context"
	"testing"
	"time"

	"github.com/procureflow/procurement-service/internal/apperrors"
	"github.com/procureflow/procurement-service/internal/models"
	"github.com/procureflow/procurement-service/internal/repository"
	"github.com/procureflow/procurement-service/internal/versioning"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newBidFixture(t *testing.T) (*BidService, *repository.MockBidRepository, *repository.MockTenderRepository, *repository.MockDirectoryRepository) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockBidRepository(ctrl)
	tenders := repository.NewMockTenderRepository(ctrl)
	directory := repository.NewMockDirectoryRepository(ctrl)
	return NewBidService(repo, tenders, directory), repo, tenders, directory
}

func TestCreateBid(t *testing.T) {
	bidReq := models.BidRequest{
		Name:            "Bid 1",
		Description:     "our offer",
		Status:          models.CreatedBid,
		TenderID:        "tender-1",
		CreatorUsername: "supplier",
	}
	user := &models.Employee{ID: "user-1", Username: "supplier"}

	t.Run("stranger bids on a published tender", func(t *testing.T) {
		service, repo, tenders, directory := newBidFixture(t)
		ctx := context.Background()

		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Status: models.PublishedTender}

		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		repo.EXPECT().GetBidByNameAndTender(ctx, "Bid 1", "tender-1").Return(nil, nil)
		directory.EXPECT().GetUserByUsername(ctx, "supplier").Return(user, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(false, nil)
		repo.EXPECT().CreateBid(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, bid models.Bid) (*models.Bid, error) {
				require.Equal(t, models.AuthorUser, bid.AuthorType)
				require.Equal(t, "user-1", bid.AuthorID)
				bid.ID = "bid-1"
				bid.Version = 1
				return &bid, nil
			})

		got, err := service.CreateBid(ctx, bidReq)
		require.NoError(t, err)
		require.Equal(t, int32(1), got.Version)
	})

	t.Run("stranger cannot bid on an unpublished tender", func(t *testing.T) {
		service, repo, tenders, directory := newBidFixture(t)
		ctx := context.Background()

		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Status: models.CreatedTender}

		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		repo.EXPECT().GetBidByNameAndTender(ctx, "Bid 1", "tender-1").Return(nil, nil)
		directory.EXPECT().GetUserByUsername(ctx, "supplier").Return(user, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(false, nil)

		_, err := service.CreateBid(ctx, bidReq)
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("organization bid", func(t *testing.T) {
		service, repo, tenders, directory := newBidFixture(t)
		ctx := context.Background()

		orgReq := bidReq
		orgReq.OrganizationID = "org-2"

		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Status: models.PublishedTender}
		organization := &models.Organization{ID: "org-2", Name: "Supplier LLC", Type: "LLC"}

		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		repo.EXPECT().GetBidByNameAndTender(ctx, "Bid 1", "tender-1").Return(nil, nil)
		directory.EXPECT().GetUserByUsername(ctx, "supplier").Return(user, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(false, nil)
		directory.EXPECT().GetOrganizationByID(ctx, "org-2").Return(organization, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-2", "user-1").Return(true, nil)
		repo.EXPECT().CreateBid(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, bid models.Bid) (*models.Bid, error) {
				require.Equal(t, models.AuthorOrganization, bid.AuthorType)
				require.Equal(t, "org-2", bid.AuthorID)
				return &bid, nil
			})

		_, err := service.CreateBid(ctx, orgReq)
		require.NoError(t, err)
	})

	t.Run("organization bid by a non-member", func(t *testing.T) {
		service, repo, tenders, directory := newBidFixture(t)
		ctx := context.Background()

		orgReq := bidReq
		orgReq.OrganizationID = "org-2"

		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Status: models.PublishedTender}
		organization := &models.Organization{ID: "org-2", Name: "Supplier LLC", Type: "LLC"}

		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		repo.EXPECT().GetBidByNameAndTender(ctx, "Bid 1", "tender-1").Return(nil, nil)
		directory.EXPECT().GetUserByUsername(ctx, "supplier").Return(user, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(false, nil)
		directory.EXPECT().GetOrganizationByID(ctx, "org-2").Return(organization, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-2", "user-1").Return(false, nil)

		_, err := service.CreateBid(ctx, orgReq)
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("missing tender", func(t *testing.T) {
		service, _, tenders, _ := newBidFixture(t)
		ctx := context.Background()

		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(nil, nil)

		_, err := service.CreateBid(ctx, bidReq)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("duplicate name within tender", func(t *testing.T) {
		service, repo, tenders, _ := newBidFixture(t)
		ctx := context.Background()

		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Status: models.PublishedTender}

		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		repo.EXPECT().GetBidByNameAndTender(ctx, "Bid 1", "tender-1").Return(&models.Bid{ID: "bid-9"}, nil)

		_, err := service.CreateBid(ctx, bidReq)
		require.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestGetBidStatus(t *testing.T) {
	stranger := &models.Employee{ID: "user-2", Username: "stranger"}

	t.Run("published bid is readable by anyone", func(t *testing.T) {
		service, repo, _, directory := newBidFixture(t)
		ctx := context.Background()

		bid := &models.Bid{ID: "bid-1", Status: models.PublishedBid, AuthorType: models.AuthorUser, AuthorID: "user-1"}

		directory.EXPECT().GetUserByUsername(ctx, "stranger").Return(stranger, nil)
		repo.EXPECT().GetBidByID(ctx, "bid-1").Return(bid, nil)

		status, err := service.GetBidStatus(ctx, "bid-1", "stranger")
		require.NoError(t, err)
		require.Equal(t, models.PublishedBid, status)
	})

	t.Run("created bid is hidden from strangers", func(t *testing.T) {
		service, repo, _, directory := newBidFixture(t)
		ctx := context.Background()

		bid := &models.Bid{ID: "bid-1", Status: models.CreatedBid, AuthorType: models.AuthorUser, AuthorID: "user-1"}

		directory.EXPECT().GetUserByUsername(ctx, "stranger").Return(stranger, nil)
		repo.EXPECT().GetBidByID(ctx, "bid-1").Return(bid, nil)

		_, err := service.GetBidStatus(ctx, "bid-1", "stranger")
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("organization bid readable by its members", func(t *testing.T) {
		service, repo, _, directory := newBidFixture(t)
		ctx := context.Background()

		bid := &models.Bid{ID: "bid-1", Status: models.CreatedBid, AuthorType: models.AuthorOrganization, AuthorID: "org-2"}

		directory.EXPECT().GetUserByUsername(ctx, "stranger").Return(stranger, nil)
		repo.EXPECT().GetBidByID(ctx, "bid-1").Return(bid, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-2", "user-2").Return(true, nil)

		status, err := service.GetBidStatus(ctx, "bid-1", "stranger")
		require.NoError(t, err)
		require.Equal(t, models.CreatedBid, status)
	})
}

func TestUpdateBidStatus(t *testing.T) {
	t.Run("author updates own bid", func(t *testing.T) {
		service, repo, _, directory := newBidFixture(t)
		ctx := context.Background()

		author := &models.Employee{ID: "user-1", Username: "supplier"}
		bid := &models.Bid{ID: "bid-1", Status: models.CreatedBid, AuthorType: models.AuthorUser, AuthorID: "user-1"}
		published := &models.Bid{ID: "bid-1", Status: models.PublishedBid, AuthorType: models.AuthorUser, AuthorID: "user-1"}

		directory.EXPECT().GetUserByUsername(ctx, "supplier").Return(author, nil)
		repo.EXPECT().GetBidByID(ctx, "bid-1").Return(bid, nil)
		repo.EXPECT().UpdateBidStatus(ctx, "bid-1", models.PublishedBid).Return(published, nil)

		got, err := service.UpdateBidStatus(ctx, "bid-1", models.PublishedBid, "supplier")
		require.NoError(t, err)
		require.Equal(t, models.PublishedBid, got.Status)
	})

	t.Run("published bid is still not writable by strangers", func(t *testing.T) {
		service, repo, _, directory := newBidFixture(t)
		ctx := context.Background()

		stranger := &models.Employee{ID: "user-2", Username: "stranger"}
		bid := &models.Bid{ID: "bid-1", Status: models.PublishedBid, AuthorType: models.AuthorUser, AuthorID: "user-1"}

		directory.EXPECT().GetUserByUsername(ctx, "stranger").Return(stranger, nil)
		repo.EXPECT().GetBidByID(ctx, "bid-1").Return(bid, nil)

		_, err := service.UpdateBidStatus(ctx, "bid-1", models.ClosedBid, "stranger")
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestEditBid(t *testing.T) {
	service, repo, _, directory := newBidFixture(t)
	ctx := context.Background()

	author := &models.Employee{ID: "user-1", Username: "supplier"}
	bid := &models.Bid{ID: "bid-1", Status: models.CreatedBid, AuthorType: models.AuthorUser, AuthorID: "user-1", Version: 1}
	edited := &models.Bid{ID: "bid-1", Status: models.CreatedBid, AuthorType: models.AuthorUser, AuthorID: "user-1", Version: 2, Description: "better offer"}

	directory.EXPECT().GetUserByUsername(ctx, "supplier").Return(author, nil)
	repo.EXPECT().GetBidByID(ctx, "bid-1").Return(bid, nil)
	repo.EXPECT().EditBid(ctx, "bid-1", versioning.Changes{"description": "better offer"}).Return(edited, nil)

	got, err := service.EditBid(ctx, "bid-1", "supplier", models.EditBidRequest{Description: "better offer"})
	require.NoError(t, err)
	require.Equal(t, int32(2), got.Version)
}

func TestSubmitBidFeedback(t *testing.T) {
	t.Run("tender organization member leaves a review", func(t *testing.T) {
		service, repo, tenders, directory := newBidFixture(t)
		ctx := context.Background()

		reviewer := &models.Employee{ID: "user-3", Username: "reviewer"}
		bid := &models.Bid{ID: "bid-1", TenderID: "tender-1", Status: models.PublishedBid, Version: 2}
		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1"}

		directory.EXPECT().GetUserByUsername(ctx, "reviewer").Return(reviewer, nil)
		repo.EXPECT().GetBidByID(ctx, "bid-1").Return(bid, nil)
		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-3").Return(true, nil)
		repo.EXPECT().CreateBidReview(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, review models.BidReview) error {
				require.Equal(t, "bid-1", review.BidID)
				require.Equal(t, "solid work", review.Description)
				return nil
			})

		got, err := service.SubmitBidFeedback(ctx, "bid-1", "solid work", "reviewer")
		require.NoError(t, err)

		// Отзыв не меняет ни статус, ни версию предложения.
		require.Equal(t, models.PublishedBid, got.Status)
		require.Equal(t, int32(2), got.Version)
	})

	t.Run("bid author side cannot review itself", func(t *testing.T) {
		service, repo, tenders, directory := newBidFixture(t)
		ctx := context.Background()

		author := &models.Employee{ID: "user-1", Username: "supplier"}
		bid := &models.Bid{ID: "bid-1", TenderID: "tender-1", AuthorType: models.AuthorUser, AuthorID: "user-1"}
		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1"}

		directory.EXPECT().GetUserByUsername(ctx, "supplier").Return(author, nil)
		repo.EXPECT().GetBidByID(ctx, "bid-1").Return(bid, nil)
		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(false, nil)

		_, err := service.SubmitBidFeedback(ctx, "bid-1", "great", "supplier")
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestGetBidReviews(t *testing.T) {
	base := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("merges user and organization reviews by time", func(t *testing.T) {
		service, repo, tenders, directory := newBidFixture(t)
		ctx := context.Background()

		requester := &models.Employee{ID: "user-3", Username: "reviewer"}
		author := &models.Employee{ID: "user-1", Username: "supplier"}
		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1"}
		authorOrganization := &models.Organization{ID: "org-2", Name: "Supplier LLC", Type: "LLC"}

		directory.EXPECT().GetUserByUsername(ctx, "reviewer").Return(requester, nil)
		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		directory.EXPECT().GetUserByUsername(ctx, "supplier").Return(author, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-3").Return(true, nil)
		repo.EXPECT().GetReviewsByAuthor(ctx, "user-1", 5, 0).Return([]models.BidReview{
			{ID: "review-2", Description: "late", CreatedAt: base.Add(2 * time.Hour)},
		}, nil)
		directory.EXPECT().GetUserOrganization(ctx, "user-1").Return(authorOrganization, nil)
		repo.EXPECT().GetReviewsByAuthor(ctx, "org-2", 5, 0).Return([]models.BidReview{
			{ID: "review-1", Description: "early", CreatedAt: base},
		}, nil)

		reviews, err := service.GetBidReviews(ctx, "tender-1", "supplier", "reviewer", 5, 0)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		require.Equal(t, "review-1", reviews[0].ID)
		require.Equal(t, "review-2", reviews[1].ID)
	})

	t.Run("requester outside tender organization", func(t *testing.T) {
		service, _, tenders, directory := newBidFixture(t)
		ctx := context.Background()

		requester := &models.Employee{ID: "user-2", Username: "stranger"}
		author := &models.Employee{ID: "user-1", Username: "supplier"}
		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1"}

		directory.EXPECT().GetUserByUsername(ctx, "stranger").Return(requester, nil)
		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		directory.EXPECT().GetUserByUsername(ctx, "supplier").Return(author, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-2").Return(false, nil)

		_, err := service.GetBidReviews(ctx, "tender-1", "supplier", "stranger", 5, 0)
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("unknown author", func(t *testing.T) {
		service, _, tenders, directory := newBidFixture(t)
		ctx := context.Background()

		requester := &models.Employee{ID: "user-3", Username: "reviewer"}
		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1"}

		directory.EXPECT().GetUserByUsername(ctx, "reviewer").Return(requester, nil)
		tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		directory.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, nil)

		_, err := service.GetBidReviews(ctx, "tender-1", "ghost", "reviewer", 5, 0)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestGetUserBidsNaturalOrder(t *testing.T) {
	service, repo, _, directory := newBidFixture(t)
	ctx := context.Background()

	user := &models.Employee{ID: "user-1", Username: "supplier"}

	directory.EXPECT().GetUserByUsername(ctx, "supplier").Return(user, nil)
	repo.EXPECT().GetUserBids(ctx, "user-1", 5, 0).Return([]models.Bid{
		{Name: "Bid1"},
		{Name: "Bid10"},
		{Name: "Bid2"},
	}, nil)

	bids, err := service.GetUserBids(ctx, "supplier", 5, 0)
	require.NoError(t, err)

	got := make([]string, 0, len(bids))
	for _, bid := range bids {
		got = append(got, bid.Name)
	}
	require.Equal(t, []string{"Bid1", "Bid2", "Bid10"}, got)
}

func TestGetTenderBidsRequiresMembership(t *testing.T) {
	service, _, tenders, directory := newBidFixture(t)
	ctx := context.Background()

	user := &models.Employee{ID: "user-2", Username: "stranger"}
	tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Status: models.PublishedTender}

	directory.EXPECT().GetUserByUsername(ctx, "stranger").Return(user, nil)
	tenders.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
	directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-2").Return(false, nil)

	_, err := service.GetTenderBids(ctx, "tender-1", "stranger", 5, 0)
	require.ErrorIs(t, err, apperrors.ErrForbidden)
}
