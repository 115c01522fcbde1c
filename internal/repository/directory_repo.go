package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/procureflow/procurement-service/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DirectoryRepository - интерфейс справочника пользователей, организаций и
// ответственных. Все операции только на чтение.
type DirectoryRepository interface {
	// GetUserByUsername возвращает пользователя или nil, если его нет.
	GetUserByUsername(ctx context.Context, username string) (*models.Employee, error)
	// GetOrganizationByID возвращает организацию или nil, если её нет.
	GetOrganizationByID(ctx context.Context, organizationID string) (*models.Organization, error)
	// IsOrganizationResponsible проверяет, представляет ли пользователь организацию.
	IsOrganizationResponsible(ctx context.Context, organizationID, userID string) (bool, error)
	// GetUserOrganization возвращает организацию пользователя или nil, если
	// он не состоит ни в одной.
	GetUserOrganization(ctx context.Context, userID string) (*models.Organization, error)
}

// PostgresDirectoryRepository - реализация DirectoryRepository для базы данных.
type PostgresDirectoryRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresDirectoryRepository создаёт новый экземпляр PostgresDirectoryRepository.
func NewPostgresDirectoryRepository(db *pgxpool.Pool) *PostgresDirectoryRepository {
	return &PostgresDirectoryRepository{DB: db}
}

// GetUserByUsername возвращает пользователя по username.
func (r *PostgresDirectoryRepository) GetUserByUsername(ctx context.Context, username string) (*models.Employee, error) {
	var user models.Employee
	query := `SELECT id, username, first_name, last_name, created_at FROM employee WHERE username = $1`
	err := r.DB.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query employee by username: %w", err)
	}
	return &user, nil
}

// GetOrganizationByID возвращает организацию по идентификатору.
func (r *PostgresDirectoryRepository) GetOrganizationByID(ctx context.Context, organizationID string) (*models.Organization, error) {
	var organization models.Organization
	query := `SELECT id, name, description, type, created_at FROM organization WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, organizationID).Scan(
		&organization.ID,
		&organization.Name,
		&organization.Description,
		&organization.Type,
		&organization.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query organization by id: %w", err)
	}
	return &organization, nil
}

// IsOrganizationResponsible проверяет, является ли пользователь ответственным
// за организацию.
func (r *PostgresDirectoryRepository) IsOrganizationResponsible(ctx context.Context, organizationID, userID string) (bool, error) {
	var isResponsible bool
	query := `SELECT EXISTS(
		SELECT 1 FROM organization_responsible
		WHERE organization_id = $1 AND user_id = $2
	)`
	err := r.DB.QueryRow(ctx, query, organizationID, userID).Scan(&isResponsible)
	if err != nil {
		return false, fmt.Errorf("query organization responsibility: %w", err)
	}
	return isResponsible, nil
}

// GetUserOrganization возвращает организацию, за которую отвечает пользователь.
func (r *PostgresDirectoryRepository) GetUserOrganization(ctx context.Context, userID string) (*models.Organization, error) {
	var organization models.Organization
	query := `
		SELECT o.id, o.name, o.description, o.type, o.created_at
		FROM organization_responsible orr
		JOIN organization o ON o.id = orr.organization_id
		WHERE orr.user_id = $1
		LIMIT 1`
	err := r.DB.QueryRow(ctx, query, userID).Scan(
		&organization.ID,
		&organization.Name,
		&organization.Description,
		&organization.Type,
		&organization.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user organization: %w", err)
	}
	return &organization, nil
}
