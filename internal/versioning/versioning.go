package versioning

import (
	"context"
	"fmt"

	"github.com/procureflow/procurement-service/internal/apperrors"

	"github.com/jackc/pgx/v5"
)

// Changes - частичный набор изменений контентных полей, ключ - имя колонки.
type Changes map[string]interface{}

// TxBeginner открывает транзакции. Ему удовлетворяет *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// EntityStore связывает один вид версионируемой сущности с её таблицей
// снимков. Все методы вызываются внутри одной транзакции движка.
type EntityStore[E any] interface {
	// Current читает сущность с блокировкой строки (FOR UPDATE).
	Current(ctx context.Context, tx pgx.Tx, id string) (E, error)
	// Version возвращает текущую версию сущности.
	Version(e E) int32
	// SaveSnapshot добавляет снимок текущих контентных полей сущности.
	SaveSnapshot(ctx context.Context, tx pgx.Tx, e E) error
	// SnapshotChanges возвращает контентные поля снимка указанной версии.
	SnapshotChanges(ctx context.Context, tx pgx.Tx, id string, version int32) (Changes, error)
	// Apply применяет изменения и новую версию, возвращая обновлённую сущность.
	Apply(ctx context.Context, tx pgx.Tx, id string, changes Changes, version int32) (E, error)
}

// Engine реализует общий алгоритм "снимок, затем изменение" для
// версионируемых сущностей: снимок пишется с текущей версией, изменения
// применяются с версией на единицу больше, всё в одной транзакции.
// Статусные поля движок никогда не трогает.
type Engine[E any] struct {
	db    TxBeginner
	store EntityStore[E]
}

// New создаёт движок версионирования поверх хранилища одной сущности.
func New[E any](db TxBeginner, store EntityStore[E]) *Engine[E] {
	return &Engine[E]{db: db, store: store}
}

// RecordAndAdvance записывает снимок текущего состояния и применяет изменения,
// увеличивая версию на единицу.
func (g *Engine[E]) RecordAndAdvance(ctx context.Context, id string, changes Changes) (E, error) {
	var zero E

	tx, err := g.db.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	updated, err := g.advance(ctx, tx, id, func(E) (Changes, error) {
		return changes, nil
	})
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("commit tx: %w", err)
	}
	return updated, nil
}

// RollbackTo восстанавливает контентные поля из снимка указанной версии.
// Откат сам является изменением: текущее состояние сначала попадает в
// снимок, а сущность получает новую версию, а не target.
func (g *Engine[E]) RollbackTo(ctx context.Context, id string, target int32) (E, error) {
	var zero E

	tx, err := g.db.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	updated, err := g.advance(ctx, tx, id, func(current E) (Changes, error) {
		// Снимки существуют только для прошлых состояний строго ниже
		// текущей версии.
		if target < 1 || target >= g.store.Version(current) {
			return nil, fmt.Errorf("%w: such version does not exist", apperrors.ErrNotFound)
		}
		return g.store.SnapshotChanges(ctx, tx, id, target)
	})
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("commit tx: %w", err)
	}
	return updated, nil
}

func (g *Engine[E]) advance(ctx context.Context, tx pgx.Tx, id string, resolve func(E) (Changes, error)) (E, error) {
	var zero E

	current, err := g.store.Current(ctx, tx, id)
	if err != nil {
		return zero, err
	}

	changes, err := resolve(current)
	if err != nil {
		return zero, err
	}

	if err := g.store.SaveSnapshot(ctx, tx, current); err != nil {
		return zero, err
	}

	updated, err := g.store.Apply(ctx, tx, id, changes, g.store.Version(current)+1)
	if err != nil {
		return zero, err
	}
	return updated, nil
}
