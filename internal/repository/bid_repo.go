package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/procureflow/procurement-service/internal/apperrors"
	"github.com/procureflow/procurement-service/internal/models"
	"github.com/procureflow/procurement-service/internal/versioning"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BidRepository - интерфейс для работы с предложениями.
type BidRepository interface {
	CreateBid(ctx context.Context, bid models.Bid) (*models.Bid, error)
	GetUserBids(ctx context.Context, authorID string, limit, offset int) ([]models.Bid, error)
	GetTenderBids(ctx context.Context, tenderID string, limit, offset int) ([]models.Bid, error)
	// GetBidByID возвращает предложение или nil, если его нет.
	GetBidByID(ctx context.Context, bidID string) (*models.Bid, error)
	// GetBidByNameAndTender возвращает предложение или nil, если его нет.
	GetBidByNameAndTender(ctx context.Context, name, tenderID string) (*models.Bid, error)
	UpdateBidStatus(ctx context.Context, bidID string, status models.BidStatus) (*models.Bid, error)
	EditBid(ctx context.Context, bidID string, changes versioning.Changes) (*models.Bid, error)
	RollbackBid(ctx context.Context, bidID string, version int32) (*models.Bid, error)
	CreateBidReview(ctx context.Context, review models.BidReview) error
	GetReviewsByAuthor(ctx context.Context, authorID string, limit, offset int) ([]models.BidReview, error)
	CreateBidDecision(ctx context.Context, record models.BidDecisionRecord) error
	CountApprovedDecisions(ctx context.Context, bidID string) (int, error)
	// ApproveBidAndCloseTender одной транзакцией одобряет предложение и
	// закрывает его тендер.
	ApproveBidAndCloseTender(ctx context.Context, bidID, tenderID string) (*models.Bid, error)
}

const bidColumns = `id, name, description, status, tender_id, author_type, author_id, version, created_at`

// Контентные поля предложения, участвующие в версионировании.
var bidContentColumns = []string{"name", "description"}

// PostgresBidRepository - реализация BidRepository для базы данных.
type PostgresBidRepository struct {
	DB     *pgxpool.Pool
	engine *versioning.Engine[models.Bid]
}

// NewPostgresBidRepository создаёт новый экземпляр PostgresBidRepository.
func NewPostgresBidRepository(db *pgxpool.Pool) *PostgresBidRepository {
	return &PostgresBidRepository{
		DB:     db,
		engine: versioning.New[models.Bid](db, bidVersionStore{}),
	}
}

func scanBid(row pgx.Row) (models.Bid, error) {
	var b models.Bid
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Description,
		&b.Status,
		&b.TenderID,
		&b.AuthorType,
		&b.AuthorID,
		&b.Version,
		&b.CreatedAt,
	)
	return b, err
}

// CreateBid создаёт новое предложение с версией 1.
func (r *PostgresBidRepository) CreateBid(ctx context.Context, bid models.Bid) (*models.Bid, error) {
	newBid := bid
	newBid.ID = uuid.New().String()
	newBid.Version = 1
	newBid.CreatedAt = time.Now().UTC()

	insertQuery := `INSERT INTO bid (` + bidColumns + `)
                    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.Exec(
		ctx,
		insertQuery,
		newBid.ID,
		newBid.Name,
		newBid.Description,
		newBid.Status,
		newBid.TenderID,
		newBid.AuthorType,
		newBid.AuthorID,
		newBid.Version,
		newBid.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bid: %w", err)
	}
	return &newBid, nil
}

// GetUserBids возвращает список предложений автора.
func (r *PostgresBidRepository) GetUserBids(ctx context.Context, authorID string, limit, offset int) ([]models.Bid, error) {
	query := `SELECT ` + bidColumns + `
              FROM bid WHERE author_id = $1 ORDER BY name LIMIT $2 OFFSET $3`

	rows, err := r.DB.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query user bids: %w", err)
	}
	defer rows.Close()

	var bids []models.Bid
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

// GetTenderBids возвращает список предложений для тендера.
func (r *PostgresBidRepository) GetTenderBids(ctx context.Context, tenderID string, limit, offset int) ([]models.Bid, error) {
	query := `SELECT ` + bidColumns + `
              FROM bid WHERE tender_id = $1 ORDER BY name LIMIT $2 OFFSET $3`

	rows, err := r.DB.Query(ctx, query, tenderID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query tender bids: %w", err)
	}
	defer rows.Close()

	var bids []models.Bid
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, bid)
	}
	return bids, rows.Err()
}

// GetBidByID возвращает предложение по идентификатору.
func (r *PostgresBidRepository) GetBidByID(ctx context.Context, bidID string) (*models.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bid WHERE id = $1`
	bid, err := scanBid(r.DB.QueryRow(ctx, query, bidID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query bid by id: %w", err)
	}
	return &bid, nil
}

// GetBidByNameAndTender возвращает предложение по имени внутри тендера.
func (r *PostgresBidRepository) GetBidByNameAndTender(ctx context.Context, name, tenderID string) (*models.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bid WHERE name = $1 AND tender_id = $2`
	bid, err := scanBid(r.DB.QueryRow(ctx, query, name, tenderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query bid by name: %w", err)
	}
	return &bid, nil
}

// UpdateBidStatus меняет статус предложения. Версия при этом не меняется.
func (r *PostgresBidRepository) UpdateBidStatus(ctx context.Context, bidID string, status models.BidStatus) (*models.Bid, error) {
	updateQuery := `UPDATE bid SET status = $1 WHERE id = $2 RETURNING ` + bidColumns
	bid, err := scanBid(r.DB.QueryRow(ctx, updateQuery, status, bidID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: such bid does not exist", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update bid status: %w", err)
	}
	return &bid, nil
}

// EditBid меняет контентные поля предложения через движок версионирования.
func (r *PostgresBidRepository) EditBid(ctx context.Context, bidID string, changes versioning.Changes) (*models.Bid, error) {
	bid, err := r.engine.RecordAndAdvance(ctx, bidID, changes)
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// RollbackBid откатывает контентные поля предложения к снимку указанной версии.
func (r *PostgresBidRepository) RollbackBid(ctx context.Context, bidID string, version int32) (*models.Bid, error) {
	bid, err := r.engine.RollbackTo(ctx, bidID, version)
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// CreateBidReview добавляет неизменяемый отзыв по предложению.
func (r *PostgresBidRepository) CreateBidReview(ctx context.Context, review models.BidReview) error {
	insertQuery := `INSERT INTO bid_review (id, bid_id, description, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(ctx, insertQuery, review.ID, review.BidID, review.Description, review.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bid review: %w", err)
	}
	return nil
}

// GetReviewsByAuthor возвращает отзывы на предложения указанного автора.
// Автором может быть как пользователь, так и организация.
func (r *PostgresBidRepository) GetReviewsByAuthor(ctx context.Context, authorID string, limit, offset int) ([]models.BidReview, error) {
	query := `
		SELECT br.id, br.bid_id, br.description, br.created_at
		FROM bid_review br
		JOIN bid b ON br.bid_id = b.id
		WHERE b.author_id = $1
		ORDER BY br.created_at
		LIMIT $2 OFFSET $3`

	rows, err := r.DB.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query bid reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.BidReview
	for rows.Next() {
		var review models.BidReview
		if err := rows.Scan(&review.ID, &review.BidID, &review.Description, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bid review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// CreateBidDecision добавляет неизменяемую запись решения по предложению.
func (r *PostgresBidRepository) CreateBidDecision(ctx context.Context, record models.BidDecisionRecord) error {
	insertQuery := `INSERT INTO bid_decision (id, bid_id, decision, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(ctx, insertQuery, record.ID, record.BidID, record.Decision, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bid decision: %w", err)
	}
	return nil
}

// CountApprovedDecisions считает все решения Approved по предложению за всю
// его историю.
func (r *PostgresBidRepository) CountApprovedDecisions(ctx context.Context, bidID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM bid_decision WHERE bid_id = $1 AND decision = $2`
	err := r.DB.QueryRow(ctx, query, bidID, models.DecisionApproved).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count approved decisions: %w", err)
	}
	return count, nil
}

// ApproveBidAndCloseTender одной транзакцией переводит предложение в Approved,
// а его тендер в Closed, чтобы эти статусы нельзя было увидеть порознь.
func (r *PostgresBidRepository) ApproveBidAndCloseTender(ctx context.Context, bidID, tenderID string) (*models.Bid, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	updateBidQuery := `UPDATE bid SET status = $1 WHERE id = $2 RETURNING ` + bidColumns
	bid, err := scanBid(tx.QueryRow(ctx, updateBidQuery, models.ApprovedBid, bidID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: such bid does not exist", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("approve bid: %w", err)
	}

	updateTenderQuery := `UPDATE tender SET status = $1 WHERE id = $2`
	if _, err := tx.Exec(ctx, updateTenderQuery, models.ClosedTender, tenderID); err != nil {
		return nil, fmt.Errorf("close tender: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &bid, nil
}

// bidVersionStore привязывает предложение к таблице снимков bid_version.
type bidVersionStore struct{}

func (bidVersionStore) Current(ctx context.Context, tx pgx.Tx, id string) (models.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bid WHERE id = $1 FOR UPDATE`
	bid, err := scanBid(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Bid{}, fmt.Errorf("%w: such bid does not exist", apperrors.ErrNotFound)
	}
	if err != nil {
		return models.Bid{}, fmt.Errorf("lock bid: %w", err)
	}
	return bid, nil
}

func (bidVersionStore) Version(b models.Bid) int32 {
	return b.Version
}

func (bidVersionStore) SaveSnapshot(ctx context.Context, tx pgx.Tx, b models.Bid) error {
	insertQuery := `INSERT INTO bid_version (id, bid_id, name, description, version, created_at)
                    VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.Exec(
		ctx,
		insertQuery,
		uuid.New().String(),
		b.ID,
		b.Name,
		b.Description,
		b.Version,
		time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert bid snapshot: %w", err)
	}
	return nil
}

func (bidVersionStore) SnapshotChanges(ctx context.Context, tx pgx.Tx, id string, version int32) (versioning.Changes, error) {
	var name, description string

	query := `SELECT name, description FROM bid_version WHERE bid_id = $1 AND version = $2`
	err := tx.QueryRow(ctx, query, id, version).Scan(&name, &description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: such version does not exist", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query bid snapshot: %w", err)
	}

	return versioning.Changes{
		"name":        name,
		"description": description,
	}, nil
}

func (bidVersionStore) Apply(ctx context.Context, tx pgx.Tx, id string, changes versioning.Changes, version int32) (models.Bid, error) {
	updates := []string{}
	args := []interface{}{id}
	argIndex := 2

	for _, column := range bidContentColumns {
		value, ok := changes[column]
		if !ok {
			continue
		}
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}
	updates = append(updates, fmt.Sprintf("version = $%d", argIndex))
	args = append(args, version)

	updateQuery := fmt.Sprintf(
		"UPDATE bid SET %s WHERE id = $1 RETURNING %s",
		strings.Join(updates, ", "), bidColumns)

	bid, err := scanBid(tx.QueryRow(ctx, updateQuery, args...))
	if err != nil {
		return models.Bid{}, fmt.Errorf("apply bid changes: %w", err)
	}
	return bid, nil
}
