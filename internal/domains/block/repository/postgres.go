package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"collection-backend/internal/domains/block/model"
)

// PostgresBlockRepository persists blocks in Postgres. The imgs column
// is text[]; pq.Array bridges it to []string.
type PostgresBlockRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBlockRepository(db *pgxpool.Pool) *PostgresBlockRepository {
	return &PostgresBlockRepository{db: db}
}

func (r *PostgresBlockRepository) Create(ctx context.Context, block *model.Block) error {
	query := `
		INSERT INTO blocks (id, pid, context, imgs, location, latitude_and_longitude, draft, create_time, update_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		block.ID, block.Pid, block.Context, pq.Array(block.Imgs),
		block.Location, block.LatitudeAndLongitude, block.Draft,
		block.CreateTime, block.UpdateTime)
	if err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

func (r *PostgresBlockRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Block, error) {
	query := `
		SELECT id, pid, context, imgs, location, latitude_and_longitude, draft, create_time, update_time
		FROM blocks
		WHERE id = $1`

	var block model.Block
	err := r.db.QueryRow(ctx, query, id).Scan(
		&block.ID, &block.Pid, &block.Context, pq.Array(&block.Imgs),
		&block.Location, &block.LatitudeAndLongitude, &block.Draft,
		&block.CreateTime, &block.UpdateTime)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select block: %w", err)
	}
	return &block, nil
}

func (r *PostgresBlockRepository) List(ctx context.Context, limit, offset int) ([]model.Block, error) {
	query := `
		SELECT id, pid, context, imgs, location, latitude_and_longitude, draft, create_time, update_time
		FROM blocks
		ORDER BY create_time ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	blocks := make([]model.Block, 0)
	for rows.Next() {
		var block model.Block
		if err := rows.Scan(
			&block.ID, &block.Pid, &block.Context, pq.Array(&block.Imgs),
			&block.Location, &block.LatitudeAndLongitude, &block.Draft,
			&block.CreateTime, &block.UpdateTime); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, block)
	}
	return blocks, rows.Err()
}

func (r *PostgresBlockRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blocks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count blocks: %w", err)
	}
	return count, nil
}

func (r *PostgresBlockRepository) Update(ctx context.Context, block *model.Block) (int64, error) {
	query := `
		UPDATE blocks
		SET context = $1, imgs = $2, location = $3, latitude_and_longitude = $4, draft = $5, update_time = $6
		WHERE id = $7`

	tag, err := r.db.Exec(ctx, query,
		block.Context, pq.Array(block.Imgs), block.Location,
		block.LatitudeAndLongitude, block.Draft, block.UpdateTime, block.ID)
	if err != nil {
		return 0, fmt.Errorf("update block: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresBlockRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM blocks WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete block: %w", err)
	}
	return tag.RowsAffected(), nil
}
