package models

import "time"

type (
	BidStatus     string // Статус предложения
	BidAuthorType string // Автор предложения
	BidDecision   string // Решение по предложению
)

const (
	AuthorOrganization BidAuthorType = "Organization" // Предложение создала организация
	AuthorUser         BidAuthorType = "User"         // Предложение создал пользователь

	CreatedBid   BidStatus = "Created"   // Предложение создано
	PublishedBid BidStatus = "Published" // Предложение опубликовано
	ClosedBid    BidStatus = "Closed"    // Предложение закрыто
	ApprovedBid  BidStatus = "Approved"  // Предложение одобрено по решению
	RejectedBid  BidStatus = "Rejected"  // Предложение отклонено по решению

	DecisionApproved BidDecision = "Approved" // Голос за одобрение
	DecisionRejected BidDecision = "Rejected" // Голос за отклонение
)

// ValidBidStatus проверяет, что статус предложения входит в допустимый набор.
func ValidBidStatus(s BidStatus) bool {
	switch s {
	case CreatedBid, PublishedBid, ClosedBid, ApprovedBid, RejectedBid:
		return true
	default:
		return false
	}
}

// ValidBidDecision проверяет, что решение входит в допустимый набор.
func ValidBidDecision(d BidDecision) bool {
	switch d {
	case DecisionApproved, DecisionRejected:
		return true
	default:
		return false
	}
}

// Bid представляет модель предложения.
type Bid struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      BidStatus     `json:"status"`
	TenderID    string        `json:"tenderId"`
	AuthorType  BidAuthorType `json:"authorType"`
	AuthorID    string        `json:"authorId"`
	Version     int32         `json:"version"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// BidVersion представляет снимок контентных полей предложения для одной версии.
type BidVersion struct {
	ID          string    `json:"id"`
	BidID       string    `json:"bidId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Version     int32     `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BidRequest представляет структуру запроса для создания предложения.
// OrganizationID опционален: при его наличии автором становится организация.
type BidRequest struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Status          BidStatus `json:"status"`
	TenderID        string    `json:"tenderId"`
	OrganizationID  string    `json:"organizationId"`
	CreatorUsername string    `json:"creatorUsername"`
}

// EditBidRequest представляет структуру запроса для изменения предложения.
type EditBidRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BidReview представляет модель отзыва по предложению.
type BidReview struct {
	ID          string    `json:"id"`
	BidID       string    `json:"-"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BidDecisionRecord представляет один голос по предложению. Голоса
// только накапливаются и никогда не изменяются.
type BidDecisionRecord struct {
	ID        string      `json:"id"`
	BidID     string      `json:"bidId"`
	Decision  BidDecision `json:"decision"`
	CreatedAt time.Time   `json:"createdAt"`
}
