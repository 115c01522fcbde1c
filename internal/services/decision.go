package services

import (
	"context"
	"fmt"
	"time"

	"github.com/procureflow/procurement-service/internal/apperrors"
	"github.com/procureflow/procurement-service/internal/models"
	"github.com/procureflow/procurement-service/internal/repository"

	"github.com/google/uuid"
)

// ApprovalQuorum - число решений Approved, при котором предложение
// одобряется, а его тендер закрывается.
const ApprovalQuorum = 3

// DecisionAggregator накапливает решения представителей организации тендера
// по предложению и закрывает тендер при достижении кворума одобрений.
type DecisionAggregator struct {
	Bids      repository.BidRepository
	Tenders   repository.TenderRepository
	Directory repository.DirectoryRepository
}

// NewDecisionAggregator создаёт новый экземпляр DecisionAggregator.
func NewDecisionAggregator(bids repository.BidRepository, tenders repository.TenderRepository, directory repository.DirectoryRepository) *DecisionAggregator {
	return &DecisionAggregator{Bids: bids, Tenders: tenders, Directory: directory}
}

// SubmitDecision записывает решение по предложению. Запись решения
// добавляется всегда, повторы не отсеиваются. Одного Rejected достаточно,
// чтобы предложение было отклонено; Approved при достижении кворума одной
// транзакцией одобряет предложение и закрывает тендер.
func (a *DecisionAggregator) SubmitDecision(ctx context.Context, bidID string, decision models.BidDecision, username string) (*models.Bid, error) {
	if username == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := a.Directory.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}

	bid, err := a.Bids.GetBidByID(ctx, bidID)
	if err != nil {
		return nil, err
	}
	if bid == nil {
		return nil, fmt.Errorf("%w: such bid does not exist", apperrors.ErrNotFound)
	}

	tender, err := a.Tenders.GetTenderByID(ctx, bid.TenderID)
	if err != nil {
		return nil, err
	}
	if tender == nil {
		return nil, fmt.Errorf("%w: such tender does not exist", apperrors.ErrNotFound)
	}

	isResponsible, err := a.Directory.IsOrganizationResponsible(ctx, tender.OrganizationID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isResponsible {
		return nil, apperrors.ErrForbidden
	}

	record := models.BidDecisionRecord{
		ID:        uuid.New().String(),
		BidID:     bid.ID,
		Decision:  decision,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.Bids.CreateBidDecision(ctx, record); err != nil {
		return nil, err
	}

	if decision == models.DecisionRejected {
		return a.Bids.UpdateBidStatus(ctx, bid.ID, models.RejectedBid)
	}

	// Счётчик включает только что записанное решение и всю историю
	// одобрений, в том числе вокруг отклонений.
	approvedCount, err := a.Bids.CountApprovedDecisions(ctx, bid.ID)
	if err != nil {
		return nil, err
	}
	if approvedCount >= ApprovalQuorum {
		return a.Bids.ApproveBidAndCloseTender(ctx, bid.ID, tender.ID)
	}

	return bid, nil
}
