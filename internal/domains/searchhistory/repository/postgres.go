package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"collection-backend/internal/domains/searchhistory/model"
)

type PostgresSearchHistoryRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSearchHistoryRepository(db *pgxpool.Pool) *PostgresSearchHistoryRepository {
	return &PostgresSearchHistoryRepository{db: db}
}

func (r *PostgresSearchHistoryRepository) Create(ctx context.Context, record *model.SearchHistory) error {
	query := `
		INSERT INTO search_history (id, uid, history, create_time, update_time)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		record.ID, record.UID, record.History, record.CreateTime, record.UpdateTime)
	if err != nil {
		return fmt.Errorf("insert search history: %w", err)
	}
	return nil
}

func (r *PostgresSearchHistoryRepository) ListByOwner(ctx context.Context, uid uuid.UUID) ([]model.SearchHistory, error) {
	query := `
		SELECT id, uid, history, create_time, update_time
		FROM search_history
		WHERE uid = $1
		ORDER BY create_time ASC`

	rows, err := r.db.Query(ctx, query, uid)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	defer rows.Close()

	records := make([]model.SearchHistory, 0)
	for rows.Next() {
		var record model.SearchHistory
		if err := rows.Scan(
			&record.ID, &record.UID, &record.History,
			&record.CreateTime, &record.UpdateTime); err != nil {
			return nil, fmt.Errorf("scan search history: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *PostgresSearchHistoryRepository) DeleteByOwner(ctx context.Context, uid uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM search_history WHERE uid = $1`, uid)
	if err != nil {
		return 0, fmt.Errorf("delete search history: %w", err)
	}
	return tag.RowsAffected(), nil
}
