package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"planboard/internal/core/domain"
	"planboard/internal/core/ports"
)

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID        string    `db:"id"`
	TaskID    string    `db:"task_id"`
	Author    string    `db:"author"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	var rows []commentRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, task_id, author, body, created_at FROM comments WHERE task_id = ? ORDER BY created_at", taskID)
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, domain.Comment{
			ID:        row.ID,
			TaskID:    row.TaskID,
			Author:    row.Author,
			Body:      row.Body,
			CreatedAt: row.CreatedAt,
		})
	}
	return comments, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment domain.Comment) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO comments (id, task_id, author, body, created_at) VALUES (?, ?, ?, ?, ?)",
		comment.ID, comment.TaskID, comment.Author, comment.Body, comment.CreatedAt,
	)
	return err
}

func (r *CommentRepository) DeleteByTask(ctx context.Context, taskID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE task_id = ?", taskID)
	return err
}
