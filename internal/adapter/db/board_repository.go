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

type BoardRepository struct {
	db *sqlx.DB
}

type boardRow struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	IsGlobal      bool            `db:"is_global"`
	Projektnummer sql.NullString  `db:"projektnummer"`
	ColumnIDs     json.RawMessage `db:"column_ids"`
	DefaultView   string          `db:"default_view"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

var _ ports.BoardRepository = (*BoardRepository)(nil)

func NewBoardRepository(db *sqlx.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) GetByID(ctx context.Context, id string) (domain.Board, error) {
	var row boardRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, name, is_global, projektnummer, column_ids, default_view, created_at, updated_at FROM boards WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, domain.ErrBoardNotFound
		}
		return domain.Board{}, err
	}
	return mapBoardRow(row)
}

func (r *BoardRepository) List(ctx context.Context) ([]domain.Board, error) {
	var rows []boardRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, name, is_global, projektnummer, column_ids, default_view, created_at, updated_at FROM boards ORDER BY created_at")
	if err != nil {
		return nil, err
	}

	boards := make([]domain.Board, 0, len(rows))
	for _, row := range rows {
		board, err := mapBoardRow(row)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, nil
}

// CreateWithContents persists the board and its initial columns and tasks
// in one transaction. This is the only multi-document write on the create
// path; per-task scheduler writes stay sequential by design.
func (r *BoardRepository) CreateWithContents(ctx context.Context, board domain.Board, columns []domain.Column, tasks []domain.Task) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	columnIDs, err := marshalIDs(board.ColumnIDs)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO boards (id, name, is_global, projektnummer, column_ids, default_view, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		board.ID, board.Name, board.IsGlobal, board.Projektnummer, columnIDs,
		string(board.DefaultView), board.CreatedAt, board.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert board: %w", err)
	}

	for _, column := range columns {
		if err := insertColumn(ctx, tx, column); err != nil {
			return fmt.Errorf("insert column %s: %w", column.ID, err)
		}
	}
	for _, task := range tasks {
		if err := insertTask(ctx, tx, task); err != nil {
			return fmt.Errorf("insert task %s: %w", task.ID, err)
		}
	}

	return tx.Commit()
}

func (r *BoardRepository) Update(ctx context.Context, board domain.Board) error {
	columnIDs, err := marshalIDs(board.ColumnIDs)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
UPDATE boards SET name = ?, is_global = ?, projektnummer = ?, column_ids = ?, default_view = ?, updated_at = ?
WHERE id = ?`,
		board.Name, board.IsGlobal, board.Projektnummer, columnIDs,
		string(board.DefaultView), board.UpdatedAt, board.ID,
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
		if err := r.db.GetContext(ctx, &exists, "SELECT COUNT(*) FROM boards WHERE id = ?", board.ID); err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrBoardNotFound
		}
	}
	return nil
}

// DeleteCascade removes the board with all columns, tasks and comments in
// one transaction.
func (r *BoardRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM comments WHERE task_id IN (SELECT id FROM tasks WHERE board_id = ?)", id); err != nil {
		return fmt.Errorf("delete comments of board %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE board_id = ?", id); err != nil {
		return fmt.Errorf("delete tasks of board %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM board_columns WHERE board_id = ?", id); err != nil {
		return fmt.Errorf("delete columns of board %s: %w", id, err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBoardNotFound
	}

	return tx.Commit()
}

func mapBoardRow(row boardRow) (domain.Board, error) {
	board := domain.Board{
		ID:          row.ID,
		Name:        row.Name,
		IsGlobal:    row.IsGlobal,
		DefaultView: domain.BoardView(row.DefaultView),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Projektnummer.Valid {
		value := row.Projektnummer.String
		board.Projektnummer = &value
	}
	if len(row.ColumnIDs) > 0 {
		if err := json.Unmarshal(row.ColumnIDs, &board.ColumnIDs); err != nil {
			return domain.Board{}, fmt.Errorf("unmarshal column ids of board %s: %w", row.ID, err)
		}
	}
	return board, nil
}
