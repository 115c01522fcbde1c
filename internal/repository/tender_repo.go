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
	"github.com/lib/pq"
)

// TenderRepository - интерфейс для работы с тендерами.
type TenderRepository interface {
	CreateTender(ctx context.Context, tenderReq models.TenderRequest) (*models.Tender, error)
	GetTenders(ctx context.Context, limit, offset int, serviceTypes []string) ([]models.Tender, error)
	GetUserTenders(ctx context.Context, username string, limit, offset int) ([]models.Tender, error)
	// GetTenderByID возвращает тендер или nil, если его нет.
	GetTenderByID(ctx context.Context, tenderID string) (*models.Tender, error)
	// GetTenderByName возвращает тендер или nil, если его нет.
	GetTenderByName(ctx context.Context, name string) (*models.Tender, error)
	UpdateTenderStatus(ctx context.Context, tenderID string, status models.TenderStatus) (*models.Tender, error)
	EditTender(ctx context.Context, tenderID string, changes versioning.Changes) (*models.Tender, error)
	RollbackTender(ctx context.Context, tenderID string, version int32) (*models.Tender, error)
}

const tenderColumns = `id, name, description, service_type, status, organization_id, version, created_at, creator_username`

// Контентные поля тендера, участвующие в версионировании.
var tenderContentColumns = []string{"name", "description", "service_type"}

// PostgresTenderRepository - реализация TenderRepository для базы данных.
type PostgresTenderRepository struct {
	DB     *pgxpool.Pool
	engine *versioning.Engine[models.Tender]
}

// NewPostgresTenderRepository создаёт новый экземпляр PostgresTenderRepository.
func NewPostgresTenderRepository(db *pgxpool.Pool) *PostgresTenderRepository {
	return &PostgresTenderRepository{
		DB:     db,
		engine: versioning.New[models.Tender](db, tenderVersionStore{}),
	}
}

func scanTender(row pgx.Row) (models.Tender, error) {
	var t models.Tender
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.ServiceType,
		&t.Status,
		&t.OrganizationID,
		&t.Version,
		&t.CreatedAt,
		&t.CreatorUsername,
	)
	return t, err
}

// CreateTender создаёт новый тендер с версией 1 и заданным начальным статусом.
func (r *PostgresTenderRepository) CreateTender(ctx context.Context, tenderReq models.TenderRequest) (*models.Tender, error) {
	newTender := models.Tender{
		ID:              uuid.New().String(),
		Name:            tenderReq.Name,
		Description:     tenderReq.Description,
		ServiceType:     tenderReq.ServiceType,
		Status:          tenderReq.Status,
		OrganizationID:  tenderReq.OrganizationID,
		Version:         1,
		CreatedAt:       time.Now().UTC(),
		CreatorUsername: tenderReq.CreatorUsername,
	}
	insertQuery := `INSERT INTO tender (` + tenderColumns + `)
                    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.Exec(
		ctx,
		insertQuery,
		newTender.ID,
		newTender.Name,
		newTender.Description,
		newTender.ServiceType,
		newTender.Status,
		newTender.OrganizationID,
		newTender.Version,
		newTender.CreatedAt,
		newTender.CreatorUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to insert tender: %w", err)
	}
	return &newTender, nil
}

// GetTenders возвращает список тендеров с опциональным фильтром по типу услуги.
func (r *PostgresTenderRepository) GetTenders(ctx context.Context, limit, offset int, serviceTypes []string) ([]models.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tender`
	var filters []string
	var args []interface{}
	argIndex := 1

	if len(serviceTypes) > 0 {
		filters = append(filters, fmt.Sprintf("service_type = ANY($%d)", argIndex))
		args = append(args, pq.Array(serviceTypes))
		argIndex++
	}

	if len(filters) > 0 {
		query += " WHERE " + strings.Join(filters, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tenders: %w", err)
	}
	defer rows.Close()

	var tenders []models.Tender
	for rows.Next() {
		tender, err := scanTender(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tender: %w", err)
		}
		tenders = append(tenders, tender)
	}
	return tenders, rows.Err()
}

// GetUserTenders возвращает список тендеров, созданных пользователем.
func (r *PostgresTenderRepository) GetUserTenders(ctx context.Context, username string, limit, offset int) ([]models.Tender, error) {
	query := `SELECT ` + tenderColumns + `
              FROM tender WHERE creator_username = $1 ORDER BY name LIMIT $2 OFFSET $3`

	rows, err := r.DB.Query(ctx, query, username, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query user tenders: %w", err)
	}
	defer rows.Close()

	var tenders []models.Tender
	for rows.Next() {
		tender, err := scanTender(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tender: %w", err)
		}
		tenders = append(tenders, tender)
	}
	return tenders, rows.Err()
}

// GetTenderByID возвращает тендер по идентификатору.
func (r *PostgresTenderRepository) GetTenderByID(ctx context.Context, tenderID string) (*models.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tender WHERE id = $1`
	tender, err := scanTender(r.DB.QueryRow(ctx, query, tenderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query tender by id: %w", err)
	}
	return &tender, nil
}

// GetTenderByName возвращает тендер по имени.
func (r *PostgresTenderRepository) GetTenderByName(ctx context.Context, name string) (*models.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tender WHERE name = $1`
	tender, err := scanTender(r.DB.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query tender by name: %w", err)
	}
	return &tender, nil
}

// UpdateTenderStatus меняет статус тендера. Версия при этом не меняется.
func (r *PostgresTenderRepository) UpdateTenderStatus(ctx context.Context, tenderID string, status models.TenderStatus) (*models.Tender, error) {
	updateQuery := `UPDATE tender SET status = $1 WHERE id = $2 RETURNING ` + tenderColumns
	tender, err := scanTender(r.DB.QueryRow(ctx, updateQuery, status, tenderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: such tender does not exist", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update tender status: %w", err)
	}
	return &tender, nil
}

// EditTender меняет контентные поля тендера через движок версионирования.
func (r *PostgresTenderRepository) EditTender(ctx context.Context, tenderID string, changes versioning.Changes) (*models.Tender, error) {
	tender, err := r.engine.RecordAndAdvance(ctx, tenderID, changes)
	if err != nil {
		return nil, err
	}
	return &tender, nil
}

// RollbackTender откатывает контентные поля тендера к снимку указанной версии.
func (r *PostgresTenderRepository) RollbackTender(ctx context.Context, tenderID string, version int32) (*models.Tender, error) {
	tender, err := r.engine.RollbackTo(ctx, tenderID, version)
	if err != nil {
		return nil, err
	}
	return &tender, nil
}

// tenderVersionStore привязывает тендер к таблице снимков tender_version.
type tenderVersionStore struct{}

func (tenderVersionStore) Current(ctx context.Context, tx pgx.Tx, id string) (models.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tender WHERE id = $1 FOR UPDATE`
	tender, err := scanTender(tx.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Tender{}, fmt.Errorf("%w: such tender does not exist", apperrors.ErrNotFound)
	}
	if err != nil {
		return models.Tender{}, fmt.Errorf("lock tender: %w", err)
	}
	return tender, nil
}

func (tenderVersionStore) Version(t models.Tender) int32 {
	return t.Version
}

func (tenderVersionStore) SaveSnapshot(ctx context.Context, tx pgx.Tx, t models.Tender) error {
	insertQuery := `INSERT INTO tender_version (id, tender_id, name, description, service_type, version, created_at)
                    VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := tx.Exec(
		ctx,
		insertQuery,
		uuid.New().String(),
		t.ID,
		t.Name,
		t.Description,
		t.ServiceType,
		t.Version,
		time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert tender snapshot: %w", err)
	}
	return nil
}

func (tenderVersionStore) SnapshotChanges(ctx context.Context, tx pgx.Tx, id string, version int32) (versioning.Changes, error) {
	var name, description string
	var serviceType models.TenderServiceType

	query := `SELECT name, description, service_type FROM tender_version WHERE tender_id = $1 AND version = $2`
	err := tx.QueryRow(ctx, query, id, version).Scan(&name, &description, &serviceType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: such version does not exist", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query tender snapshot: %w", err)
	}

	return versioning.Changes{
		"name":         name,
		"description":  description,
		"service_type": serviceType,
	}, nil
}

func (tenderVersionStore) Apply(ctx context.Context, tx pgx.Tx, id string, changes versioning.Changes, version int32) (models.Tender, error) {
	updates := []string{}
	args := []interface{}{id}
	argIndex := 2

	for _, column := range tenderContentColumns {
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
		"UPDATE tender SET %s WHERE id = $1 RETURNING %s",
		strings.Join(updates, ", "), tenderColumns)

	tender, err := scanTender(tx.QueryRow(ctx, updateQuery, args...))
	if err != nil {
		return models.Tender{}, fmt.Errorf("apply tender changes: %w", err)
	}
	return tender, nil
}
