package services

import (
	"context"
	"testing"

	"github.com/procureflow/procurement-service/internal/apperrors"
	"github.com/procureflow/procurement-service/internal/models"
	"github.com/procureflow/procurement-service/internal/repository"
	"github.com/procureflow/procurement-service/internal/versioning"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newTenderFixture(t *testing.T) (*TenderService, *repository.MockTenderRepository, *repository.MockDirectoryRepository) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockTenderRepository(ctrl)
	directory := repository.NewMockDirectoryRepository(ctrl)
	return NewTenderService(repo, directory), repo, directory
}

func TestCreateTender(t *testing.T) {
	tenderReq := models.TenderRequest{
		Name:            "Tender 1",
		Description:     "road works",
		ServiceType:     models.Construction,
		Status:          models.CreatedTender,
		OrganizationID:  "org-1",
		CreatorUsername: "creator",
	}
	user := &models.Employee{ID: "user-1", Username: "creator"}
	organization := &models.Organization{ID: "org-1", Name: "Org", Type: "LLC"}

	t.Run("success", func(t *testing.T) {
		service, repo, directory := newTenderFixture(t)
		ctx := context.Background()

		created := &models.Tender{ID: "tender-1", Name: tenderReq.Name, Version: 1, Status: models.CreatedTender}

		repo.EXPECT().GetTenderByName(ctx, "Tender 1").Return(nil, nil)
		directory.EXPECT().GetUserByUsername(ctx, "creator").Return(user, nil)
		directory.EXPECT().GetOrganizationByID(ctx, "org-1").Return(organization, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(true, nil)
		repo.EXPECT().CreateTender(ctx, tenderReq).Return(created, nil)

		got, err := service.CreateTender(ctx, tenderReq)
		require.NoError(t, err)
		require.Equal(t, int32(1), got.Version)
	})

	t.Run("duplicate name", func(t *testing.T) {
		service, repo, _ := newTenderFixture(t)
		ctx := context.Background()

		repo.EXPECT().GetTenderByName(ctx, "Tender 1").Return(&models.Tender{ID: "tender-9"}, nil)

		_, err := service.CreateTender(ctx, tenderReq)
		require.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("unknown user", func(t *testing.T) {
		service, repo, directory := newTenderFixture(t)
		ctx := context.Background()

		repo.EXPECT().GetTenderByName(ctx, "Tender 1").Return(nil, nil)
		directory.EXPECT().GetUserByUsername(ctx, "creator").Return(nil, nil)

		_, err := service.CreateTender(ctx, tenderReq)
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("unknown organization", func(t *testing.T) {
		service, repo, directory := newTenderFixture(t)
		ctx := context.Background()

		repo.EXPECT().GetTenderByName(ctx, "Tender 1").Return(nil, nil)
		directory.EXPECT().GetUserByUsername(ctx, "creator").Return(user, nil)
		directory.EXPECT().GetOrganizationByID(ctx, "org-1").Return(nil, nil)

		_, err := service.CreateTender(ctx, tenderReq)
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("not a member", func(t *testing.T) {
		service, repo, directory := newTenderFixture(t)
		ctx := context.Background()

		repo.EXPECT().GetTenderByName(ctx, "Tender 1").Return(nil, nil)
		directory.EXPECT().GetUserByUsername(ctx, "creator").Return(user, nil)
		directory.EXPECT().GetOrganizationByID(ctx, "org-1").Return(organization, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(false, nil)

		_, err := service.CreateTender(ctx, tenderReq)
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestGetTendersNaturalOrder(t *testing.T) {
	service, repo, _ := newTenderFixture(t)
	ctx := context.Background()

	// База отдаёт лексикографический порядок, сервис пересортировывает
	// страницу естественным порядком имён.
	repo.EXPECT().GetTenders(ctx, 5, 0, []string(nil)).Return([]models.Tender{
		{Name: "Tender1"},
		{Name: "Tender10"},
		{Name: "Tender2"},
	}, nil)

	tenders, err := service.GetTenders(ctx, 5, 0, nil)
	require.NoError(t, err)

	got := make([]string, 0, len(tenders))
	for _, tender := range tenders {
		got = append(got, tender.Name)
	}
	require.Equal(t, []string{"Tender1", "Tender2", "Tender10"}, got)
}

func TestGetUserTenders(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		service, _, directory := newTenderFixture(t)
		ctx := context.Background()

		directory.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, nil)

		_, err := service.GetUserTenders(ctx, "ghost", 5, 0)
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("empty username", func(t *testing.T) {
		service, _, _ := newTenderFixture(t)

		_, err := service.GetUserTenders(context.Background(), "", 5, 0)
		require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestGetTenderStatus(t *testing.T) {
	user := &models.Employee{ID: "user-1", Username: "viewer"}

	t.Run("published tender is readable by anyone", func(t *testing.T) {
		service, repo, directory := newTenderFixture(t)
		ctx := context.Background()

		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Status: models.PublishedTender}

		directory.EXPECT().GetUserByUsername(ctx, "viewer").Return(user, nil)
		repo.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(false, nil)

		status, err := service.GetTenderStatus(ctx, "tender-1", "viewer")
		require.NoError(t, err)
		require.Equal(t, models.PublishedTender, status)
	})

	t.Run("created tender is hidden from outsiders", func(t *testing.T) {
		service, repo, directory := newTenderFixture(t)
		ctx := context.Background()

		tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Status: models.CreatedTender}

		directory.EXPECT().GetUserByUsername(ctx, "viewer").Return(user, nil)
		repo.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
		directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(false, nil)

		_, err := service.GetTenderStatus(ctx, "tender-1", "viewer")
		require.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("missing tender", func(t *testing.T) {
		service, repo, directory := newTenderFixture(t)
		ctx := context.Background()

		directory.EXPECT().GetUserByUsername(ctx, "viewer").Return(user, nil)
		repo.EXPECT().GetTenderByID(ctx, "missing").Return(nil, nil)

		_, err := service.GetTenderStatus(ctx, "missing", "viewer")
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestUpdateTenderStatusRequiresMembership(t *testing.T) {
	service, repo, directory := newTenderFixture(t)
	ctx := context.Background()

	user := &models.Employee{ID: "user-1", Username: "viewer"}
	tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Status: models.PublishedTender}

	// Публичное исключение действует только на чтение статуса,
	// на его изменение - нет.
	directory.EXPECT().GetUserByUsername(ctx, "viewer").Return(user, nil)
	repo.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
	directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(false, nil)

	_, err := service.UpdateTenderStatus(ctx, "tender-1", models.ClosedTender, "viewer")
	require.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestEditTender(t *testing.T) {
	service, repo, directory := newTenderFixture(t)
	ctx := context.Background()

	user := &models.Employee{ID: "user-1", Username: "creator"}
	tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Version: 2}
	edited := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Version: 3, Name: "Tender 1a"}

	directory.EXPECT().GetUserByUsername(ctx, "creator").Return(user, nil)
	repo.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
	directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(true, nil)
	repo.EXPECT().EditTender(ctx, "tender-1", versioning.Changes{"name": "Tender 1a"}).Return(edited, nil)

	got, err := service.EditTender(ctx, "tender-1", "creator", models.EditTenderRequest{Name: "Tender 1a"})
	require.NoError(t, err)
	require.Equal(t, int32(3), got.Version)
}

func TestRollbackTender(t *testing.T) {
	service, repo, directory := newTenderFixture(t)
	ctx := context.Background()

	user := &models.Employee{ID: "user-1", Username: "creator"}
	tender := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Version: 3}
	restored := &models.Tender{ID: "tender-1", OrganizationID: "org-1", Version: 4}

	directory.EXPECT().GetUserByUsername(ctx, "creator").Return(user, nil)
	repo.EXPECT().GetTenderByID(ctx, "tender-1").Return(tender, nil)
	directory.EXPECT().IsOrganizationResponsible(ctx, "org-1", "user-1").Return(true, nil)
	repo.EXPECT().RollbackTender(ctx, "tender-1", int32(1)).Return(restored, nil)

	got, err := service.RollbackTender(ctx, "tender-1", 1, "creator")
	require.NoError(t, err)
	require.Equal(t, int32(4), got.Version)
}
