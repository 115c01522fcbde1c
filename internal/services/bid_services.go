package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/procureflow/procurement-service/internal/apperrors"
	"github.com/procureflow/procurement-service/internal/models"
	"github.com/procureflow/procurement-service/internal/repository"
	"github.com/procureflow/procurement-service/internal/utils"
	"github.com/procureflow/procurement-service/internal/versioning"

	"github.com/google/uuid"
)

// BidService реализует жизненный цикл предложения: создание, списки, статус,
// изменение с версионированием, откат, отзывы.
type BidService struct {
	Repo      repository.BidRepository
	Tenders   repository.TenderRepository
	Directory repository.DirectoryRepository
}

// NewBidService создаёт новый экземпляр BidService.
func NewBidService(repo repository.BidRepository, tenders repository.TenderRepository, directory repository.DirectoryRepository) *BidService {
	return &BidService{Repo: repo, Tenders: tenders, Directory: directory}
}

// CreateBid создаёт новое предложение. Без organizationId автором становится
// сам пользователь, и для неопубликованного тендера требуется членство в его
// организации. С organizationId автором становится организация, а
// пользователь должен быть её представителем.
func (s *BidService) CreateBid(ctx context.Context, bidReq models.BidRequest) (*models.Bid, error) {
	tender, err := s.Tenders.GetTenderByID(ctx, bidReq.TenderID)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, fmt.Errorf("%w: such tender does not exist", apperrors.ErrNotFound)
	}

	existing, err := s.Repo.GetBidByNameAndTender(ctx, bidReq.Name, bidReq.TenderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: bid with name %s already exists in this tender", apperrors.ErrConflict, bidReq.Name)
	}

	user, err := s.resolveUser(ctx, bidReq.CreatorUsername)
	if err != nil {
		return nil, err
	}

	isResponsible, err := s.Directory.IsOrganizationResponsible(ctx, tender.OrganizationID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isResponsible && tender.Status != models.PublishedTender {
		return nil, apperrors.ErrForbidden
	}

	authorType := models.AuthorUser
	authorID := user.ID

	if bidReq.OrganizationID != "" {
		organization, err := s.Directory.GetOrganizationByID(ctx, bidReq.OrganizationID)
		if err != nil {
			return nil, err
		}
		if organization == nil {
			return nil, fmt.Errorf("%w: such organization does not exist", apperrors.ErrNotFound)
		}

		isMember, err := s.Directory.IsOrganizationResponsible(ctx, bidReq.OrganizationID, user.ID)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, apperrors.ErrForbidden
		}

		authorType = models.AuthorOrganization
		authorID = bidReq.OrganizationID
	}

	return s.Repo.CreateBid(ctx, models.Bid{
		Name:        bidReq.Name,
		Description: bidReq.Description,
		Status:      bidReq.Status,
		TenderID:    bidReq.TenderID,
		AuthorType:  authorType,
		AuthorID:    authorID,
	})
}

// GetUserBids возвращает список предложений пользователя.
func (s *BidService) GetUserBids(ctx context.Context, username string, limit, offset int) ([]models.Bid, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	bids, err := s.Repo.GetUserBids(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	utils.SortByKey(bids, func(b models.Bid) string { return b.Name })
	return bids, nil
}

// GetTenderBids возвращает список предложений для тендера. Доступен только
// представителям организации тендера.
func (s *BidService) GetTenderBids(ctx context.Context, tenderID, username string, limit, offset int) ([]models.Bid, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	tender, err := s.Tenders.GetTenderByID(ctx, tenderID)
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

	bids, err := s.Repo.GetTenderBids(ctx, tenderID, limit, offset)
	if err != nil {
		return nil, err
	}

	utils.SortByKey(bids, func(b models.Bid) string { return b.Name })
	return bids, nil
}

// GetBidStatus возвращает статус предложения. Опубликованное предложение
// доступно любому аутентифицированному пользователю, остальные - только
// стороне автора.
func (s *BidService) GetBidStatus(ctx context.Context, bidID, username string) (models.BidStatus, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return "", err
	}

	bid, err := s.getBid(ctx, bidID)
	if err != nil {
		return "", err
	}

	if err := s.authorizeAuthor(ctx, bid, user, true); err != nil {
		return "", err
	}
	return bid.Status, nil
}

// UpdateBidStatus меняет статус предложения. Только сторона автора, без
// публичного исключения.
func (s *BidService) UpdateBidStatus(ctx context.Context, bidID string, status models.BidStatus, username string) (*models.Bid, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	bid, err := s.getBid(ctx, bidID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeAuthor(ctx, bid, user, false); err != nil {
		return nil, err
	}
	return s.Repo.UpdateBidStatus(ctx, bid.ID, status)
}

// EditBid меняет контентные поля предложения через движок версионирования.
func (s *BidService) EditBid(ctx context.Context, bidID, username string, editReq models.EditBidRequest) (*models.Bid, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	bid, err := s.getBid(ctx, bidID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeAuthor(ctx, bid, user, false); err != nil {
		return nil, err
	}

	changes := versioning.Changes{}
	if editReq.Name != "" {
		changes["name"] = editReq.Name
	}
	if editReq.Description != "" {
		changes["description"] = editReq.Description
	}

	return s.Repo.EditBid(ctx, bid.ID, changes)
}

// RollbackBid откатывает предложение к снимку указанной версии.
func (s *BidService) RollbackBid(ctx context.Context, bidID string, version int32, username string) (*models.Bid, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	bid, err := s.getBid(ctx, bidID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeAuthor(ctx, bid, user, false); err != nil {
		return nil, err
	}
	return s.Repo.RollbackBid(ctx, bid.ID, version)
}

// SubmitBidFeedback добавляет неизменяемый отзыв по предложению. Авторизация
// здесь обратная: отзыв оставляет представитель организации тендера, а не
// сторона автора предложения. Состояние предложения не меняется.
func (s *BidService) SubmitBidFeedback(ctx context.Context, bidID, bidFeedback, username string) (*models.Bid, error) {
	user, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	bid, err := s.getBid(ctx, bidID)
	if err != nil {
		return nil, err
	}

	tender, err := s.Tenders.GetTenderByID(ctx, bid.TenderID)
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

	review := models.BidReview{
		ID:          uuid.New().String(),
		BidID:       bid.ID,
		Description: bidFeedback,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.CreateBidReview(ctx, review); err != nil {
		return nil, err
	}

	return bid, nil
}

// GetBidReviews возвращает отзывы на предложения автора в рамках тендера.
// Отзывы собираются и по идентификатору пользователя, и по идентификатору
// его организации: отзыв записан на того, кто значился автором предложения
// на момент отзыва.
func (s *BidService) GetBidReviews(ctx context.Context, tenderID, authorUsername, requesterUsername string, limit, offset int) ([]models.BidReview, error) {
	requester, err := s.resolveUser(ctx, requesterUsername)
	if err != nil {
		return nil, err
	}

	tender, err := s.Tenders.GetTenderByID(ctx, tenderID)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, fmt.Errorf("%w: such tender does not exist", apperrors.ErrNotFound)
	}

	author, err := s.Directory.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, fmt.Errorf("%w: such author does not exist", apperrors.ErrNotFound)
	}

	isResponsible, err := s.Directory.IsOrganizationResponsible(ctx, tender.OrganizationID, requester.ID)
	if err != nil {
		return nil, err
	}
	if !isResponsible {
		return nil, apperrors.ErrForbidden
	}

	reviews, err := s.Repo.GetReviewsByAuthor(ctx, author.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	authorOrganization, err := s.Directory.GetUserOrganization(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	if authorOrganization != nil {
		organizationReviews, err := s.Repo.GetReviewsByAuthor(ctx, authorOrganization.ID, limit, offset)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, organizationReviews...)
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
	})
	return reviews, nil
}

// resolveUser разрешает username в пользователя справочника.
func (s *BidService) resolveUser(ctx context.Context, username string) (*models.Employee, error) {
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

func (s *BidService) getBid(ctx context.Context, bidID string) (*models.Bid, error) {
	bid, err := s.Repo.GetBidByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, fmt.Errorf("%w: such bid does not exist", apperrors.ErrNotFound)
	}
	return bid, nil
}

// authorizeAuthor проверяет, что пользователь представляет сторону автора
// предложения: организацию-автора либо самого пользователя-автора. Для
// опубликованного предложения чтение разрешается любому.
func (s *BidService) authorizeAuthor(ctx context.Context, bid *models.Bid, user *models.Employee, allowPublished bool) error {
	published := allowPublished && bid.Status == models.PublishedBid

	if bid.AuthorType == models.AuthorOrganization {
		isResponsible, err := s.Directory.IsOrganizationResponsible(ctx, bid.AuthorID, user.ID)
		if err != nil {
			return err
		}
		if !isResponsible && !published {
			return apperrors.ErrForbidden
		}
		return nil
	}

	if bid.AuthorID != user.ID && !published {
		return apperrors.ErrForbidden
	}
	return nil
}
