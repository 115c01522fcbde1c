package services

import (
	"context"
	"fmt"

	"github.com/procureflow/procurement-service/internal/apperrors"
	"github.com/procureflow/procurement-service/internal/models"
	"github.com/procureflow/procurement-service/internal/repository"
	"github.com/procureflow/procurement-service/internal/utils"
	"github.com/procureflow/procurement-service/internal/versioning"
)

// TenderService реализует жизненный цикл тендера: создание, списки,
// статус, изменение с версионированием и откат.
type TenderService struct {
	Repo      repository.TenderRepository
	Directory repository.DirectoryRepository
}

// NewTenderService создаёт новый экземпляр TenderService.
func NewTenderService(repo repository.TenderRepository, directory repository.DirectoryRepository) *TenderService {
	return &TenderService{Repo: repo, Directory: directory}
}

// CreateTender создаёт новый тендер с версией 1 и заданным начальным статусом.
func (s *TenderService) CreateTender(ctx context.Context, tenderReq models.TenderRequest) (*models.Tender, error) {
	existing, err := s.Repo.GetTenderByName(ctx, tenderReq.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: tender with name %s already exists", apperrors.ErrConflict, tenderReq.Name)
	}

	user, err := s.Directory.GetUserByUsername(ctx, tenderReq.CreatorUsername)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}

	organization, err := s.Directory.GetOrganizationByID(ctx, tenderReq.OrganizationID)
	if err != nil {
		return nil, err
	}
	if organization == nil {
		return nil, fmt.Errorf("%w: such organization does not exist", apperrors.ErrNotFound)
	}

	isResponsible, err := s.Directory.IsOrganizationResponsible(ctx, tenderReq.OrganizationID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isResponsible {
		return nil, apperrors.ErrForbidden
	}

	return s.Repo.CreateTender(ctx, tenderReq)
}

// GetTenders возвращает список тендеров с опциональным фильтром по типу
// услуги в естественном порядке имён.
func (s *TenderService) GetTenders(ctx context.Context, limit, offset int, serviceTypes []string) ([]models.Tender, error) {
	tenders, err := s.Repo.GetTenders(ctx, limit, offset, serviceTypes)
	if err != nil {
		return nil, err
	}

	utils.SortByKey(tenders, func(t models.Tender) string { return t.Name })
	return tenders, nil
}

// GetUserTenders возвращает список тендеров, созданных пользователем.
func (s *TenderService) GetUserTenders(ctx context.Context, username string, limit, offset int) ([]models.Tender, error) {
	if _, err := s.resolveUser(ctx, username); err != nil {
		return nil, err
	}

	tenders, err := s.Repo.GetUserTenders(ctx, username, limit, offset)
	if err != nil {
		return nil, err
	}

	utils.SortByKey(tenders, func(t models.Tender) string { return t.Name })
	return tenders, nil
}

// GetTenderStatus возвращает статус тендера. Опубликованный тендер доступен
// любому аутентифицированному пользователю, остальные - только
// представителям организации.
func (s *TenderService) GetTenderStatus(ctx context.Context, tenderID, username string) (models.TenderStatus, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return "", err
	}

	tender, err := s.Repo.GetTenderByID(ctx, tenderID)
	if err != nil {
		return "", err
	}
	if tender == nil {
		return "", fmt.Errorf("%w: such tender does not exist", apperrors.ErrNotFound)
	}

	isResponsible, err := s.Directory.IsOrganizationResponsible(ctx, tender.OrganizationID, user.ID)
	if err != nil {
		return "", err
	}
	if !isResponsible && tender.Status != models.PublishedTender {
		return "", apperrors.ErrForbidden
	}

	return tender.Status, nil
}

// UpdateTenderStatus меняет статус тендера. Изменение статуса всегда требует
// членства в организации, публичного исключения здесь нет.
func (s *TenderService) UpdateTenderStatus(ctx context.Context, tenderID string, status models.TenderStatus, username string) (*models.Tender, error) {
	tender, err := s.authorizeMember(ctx, tenderID, username)
	if err != nil {
		return nil, err
	}
	return s.Repo.UpdateTenderStatus(ctx, tender.ID, status)
}

// EditTender меняет контентные поля тендера через движок версионирования.
func (s *TenderService) EditTender(ctx context.Context, tenderID, username string, editReq models.EditTenderRequest) (*models.Tender, error) {
	tender, err := s.authorizeMember(ctx, tenderID, username)
	if err != nil {
		return nil, err
	}

	changes := versioning.Changes{}
	if editReq.Name != "" {
		changes["name"] = editReq.Name
	}
	if editReq.Description != "" {
		changes["description"] = editReq.Description
	}
	if editReq.ServiceType != "" {
		changes["service_type"] = editReq.ServiceType
	}

	return s.Repo.EditTender(ctx, tender.ID, changes)
}

// RollbackTender откатывает тендер к снимку указанной версии, выделяя новую
// версию вместо повторного использования target.
func (s *TenderService) RollbackTender(ctx context.Context, tenderID string, version int32, username string) (*models.Tender, error) {
	tender, err := s.authorizeMember(ctx, tenderID, username)
	if err != nil {
		return nil, err
	}
	return s.Repo.RollbackTender(ctx, tender.ID, version)
}

// resolveUser разрешает username в пользователя справочника.
func (s *TenderService) resolveUser(ctx context.Context, username string) (*models.Employee, error) {
	if username == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.Directory.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// authorizeMember разрешает пользователя и требует его членства в
// организации тендера.
func (s *TenderService) authorizeMember(ctx context.Context, tenderID, username string) (*models.Tender, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	tender, err := s.Repo.GetTenderByID(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, fmt.Errorf("%w: such tender does not exist", apperrors.ErrNotFound)
	}

	isResponsible, err := s.Directory.IsOrganizationResponsible(ctx, tender.OrganizationID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isResponsible {
		return nil, apperrors.ErrForbidden
	}

	return tender, nil
}
