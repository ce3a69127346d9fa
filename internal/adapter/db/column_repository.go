package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"planboard/internal/core/domain"
	"planboard/internal/core/ports"
)

type ColumnRepository struct {
	db *sqlx.DB
}

type columnRow struct {
	ID        string          `db:"id"`
	BoardID   string          `db:"board_id"`
	Name      string          `db:"name"`
	Position  int             `db:"position"`
	TaskIDs   json.RawMessage `db:"task_ids"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

var _ ports.ColumnRepository = (*ColumnRepository)(nil)

func NewColumnRepository(db *sqlx.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) GetByID(ctx context.Context, id string) (domain.Column, error) {
	var row columnRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, board_id, name, position, task_ids, created_at, updated_at FROM board_columns WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Column{}, domain.ErrColumnNotFound
		}
		return domain.Column{}, err
	}
	return mapColumnRow(row)
}

func (r *ColumnRepository) ListByBoard(ctx context.Context, boardID string) ([]domain.Column, error) {
	var rows []columnRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, board_id, name, position, task_ids, created_at, updated_at FROM board_columns WHERE board_id = ? ORDER BY position", boardID)
	if err != nil {
		return nil, err
	}

	columns := make([]domain.Column, 0, len(rows))
	for _, row := range rows {
		column, err := mapColumnRow(row)
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}
	return columns, nil
}

func (r *ColumnRepository) Create(ctx context.Context, column domain.Column) error {
	return insertColumn(ctx, r.db, column)
}

func (r *ColumnRepository) Update(ctx context.Context, column domain.Column) error {
	taskIDs, err := marshalIDs(column.TaskIDs)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE board_columns SET board_id = ?, name = ?, position = ?, task_ids = ?, updated_at = ?
WHERE id = ?`,
		column.BoardID, column.Name, column.Order, taskIDs, column.UpdatedAt, column.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists int
		if err := r.db.GetContext(ctx, &exists, "SELECT COUNT(*) FROM board_columns WHERE id = ?", column.ID); err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrColumnNotFound
		}
	}
	return nil
}

// DeleteCascade removes the column together with its tasks and their
// comments in one transaction.
func (r *ColumnRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM comments WHERE task_id IN (SELECT id FROM tasks WHERE column_id = ?)", id); err != nil {
		return fmt.Errorf("delete comments of column %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE column_id = ?", id); err != nil {
		return fmt.Errorf("delete tasks of column %s: %w", id, err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM board_columns WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrColumnNotFound
	}

	return tx.Commit()
}

func insertColumn(ctx context.Context, e execer, column domain.Column) error {
	taskIDs, err := marshalIDs(column.TaskIDs)
	if err != nil {
		return err
	}

	_, err = e.ExecContext(ctx, `
INSERT INTO board_columns (id, board_id, name, position, task_ids, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		column.ID, column.BoardID, column.Name, column.Order, taskIDs, column.CreatedAt, column.UpdatedAt,
	)
	return err
}

func mapColumnRow(row columnRow) (domain.Column, error) {
	column := domain.Column{
		ID:        row.ID,
		BoardID:   row.BoardID,
		Name:      row.Name,
		Order:     row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if len(row.TaskIDs) > 0 {
		if err := json.Unmarshal(row.TaskIDs, &column.TaskIDs); err != nil {
			return domain.Column{}, fmt.Errorf("unmarshal task ids of column %s: %w", row.ID, err)
		}
	}
	return column, nil
}

func marshalIDs(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	out, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("marshal id list: %w", err)
	}
	return out, nil
}
