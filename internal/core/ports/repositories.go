package ports

import (
	"context"

	"planboard/internal/core/domain"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (domain.Task, error)
	ListByBoard(ctx context.Context, boardID string) ([]domain.Task, error)
	Create(ctx context.Context, task domain.Task) error
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id string) error
}

type ColumnRepository interface {
	GetByID(ctx context.Context, id string) (domain.Column, error)
	ListByBoard(ctx context.Context, boardID string) ([]domain.Column, error)
	Create(ctx context.Context, column domain.Column) error
	Update(ctx context.Context, column domain.Column) error
	// DeleteCascade removes the column, its tasks and their comments in one
	// batch. Task migration to another column is handled above this layer.
	DeleteCascade(ctx context.Context, id string) error
}

type BoardRepository interface {
	GetByID(ctx context.Context, id string) (domain.Board, error)
	List(ctx context.Context) ([]domain.Board, error)
	// CreateWithContents persists the board together with its initial
	// columns and tasks in one batch (default columns or a template
	// instantiation).
	CreateWithContents(ctx context.Context, board domain.Board, columns []domain.Column, tasks []domain.Task) error
	Update(ctx context.Context, board domain.Board) error
	// DeleteCascade removes the board, all columns, tasks and comments in
	// one batch.
	DeleteCascade(ctx context.Context, id string) error
}

type CommentRepository interface {
	ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
	Create(ctx context.Context, comment domain.Comment) error
	DeleteByTask(ctx context.Context, taskID string) error
}
