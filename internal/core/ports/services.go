package ports

import (
	"context"
	"time"

	"planboard/internal/core/domain"
)

type TaskService interface {
	CreateTask(ctx context.Context, columnID string, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	MoveTask(ctx context.Context, id, targetColumnID string, index int) error
	AddComment(ctx context.Context, taskID, author, body string) (domain.Comment, error)
	ListComments(ctx context.Context, taskID string) ([]domain.Comment, error)
}

type BoardService interface {
	CreateBoard(ctx context.Context, input domain.CreateBoardInput) (domain.Board, error)
	GetBoard(ctx context.Context, id string) (domain.Board, error)
	ListBoards(ctx context.Context) ([]domain.Board, error)
	UpdateBoard(ctx context.Context, id string, input domain.UpdateBoardInput) (domain.Board, error)
	DeleteBoard(ctx context.Context, id string) error
	CreateColumn(ctx context.Context, boardID string, input domain.CreateColumnInput) (domain.Column, error)
	UpdateColumn(ctx context.Context, id string, input domain.UpdateColumnInput) (domain.Column, error)
	ReorderColumns(ctx context.Context, boardID string, columnIDs []string) error
	// DeleteColumn removes a column. With migrateTo set its tasks are
	// appended to the target column; otherwise they are deleted with their
	// comments.
	DeleteColumn(ctx context.Context, id string, migrateTo *string) error
	ListColumns(ctx context.Context, boardID string) ([]domain.Column, error)
	ListTasks(ctx context.Context, boardID string) ([]domain.Task, error)
}

// CascadeResult reports what a reschedule cascade did. Applied counts the
// successor writes that reached the repository; on partial failure it is
// smaller than Planned and the error from the failing write is returned
// alongside it.
type CascadeResult struct {
	Planned int
	Applied int
}

type ScheduleService interface {
	// SetTaskDates applies a direct date edit to a task and, when the end
	// date changed, cascades the shift to all transitive successors.
	SetTaskDates(ctx context.Context, taskID string, start, due *time.Time) (CascadeResult, error)
	// AutoSchedule packs the board's dated tasks back-to-back along the
	// canonical code order, anchored at the first task's start date (or
	// anchor when given). Returns the number of tasks rescheduled.
	AutoSchedule(ctx context.Context, boardID string, anchor *time.Time) (int, error)
}

// EventPublisher pushes domain events to live board subscribers. A nil-safe
// no-op implementation is acceptable in tests.
type EventPublisher interface {
	Publish(event domain.Event)
}
