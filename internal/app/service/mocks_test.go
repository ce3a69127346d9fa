package service

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"planboard/internal/core/domain"
)

type taskRepoMock struct {
	mock.Mock
}

func (m *taskRepoMock) GetByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepoMock) ListByBoard(ctx context.Context, boardID string) ([]domain.Task, error) {
	args := m.Called(ctx, boardID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepoMock) Create(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepoMock) Update(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type columnRepoMock struct {
	mock.Mock
}

func (m *columnRepoMock) GetByID(ctx context.Context, id string) (domain.Column, error) {
	args := m.Called(ctx, id)

	var column domain.Column
	if value := args.Get(0); value != nil {
		column = value.(domain.Column)
	}
	return column, args.Error(1)
}

func (m *columnRepoMock) ListByBoard(ctx context.Context, boardID string) ([]domain.Column, error) {
	args := m.Called(ctx, boardID)

	var columns []domain.Column
	if value := args.Get(0); value != nil {
		columns = value.([]domain.Column)
	}
	return columns, args.Error(1)
}

func (m *columnRepoMock) Create(ctx context.Context, column domain.Column) error {
	return m.Called(ctx, column).Error(0)
}

func (m *columnRepoMock) Update(ctx context.Context, column domain.Column) error {
	return m.Called(ctx, column).Error(0)
}

func (m *columnRepoMock) DeleteCascade(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type boardRepoMock struct {
	mock.Mock
}

func (m *boardRepoMock) GetByID(ctx context.Context, id string) (domain.Board, error) {
	args := m.Called(ctx, id)

	var board domain.Board
	if value := args.Get(0); value != nil {
		board = value.(domain.Board)
	}
	return board, args.Error(1)
}

func (m *boardRepoMock) List(ctx context.Context) ([]domain.Board, error) {
	args := m.Called(ctx)

	var boards []domain.Board
	if value := args.Get(0); value != nil {
		boards = value.([]domain.Board)
	}
	return boards, args.Error(1)
}

func (m *boardRepoMock) CreateWithContents(ctx context.Context, board domain.Board, columns []domain.Column, tasks []domain.Task) error {
	return m.Called(ctx, board, columns, tasks).Error(0)
}

func (m *boardRepoMock) Update(ctx context.Context, board domain.Board) error {
	return m.Called(ctx, board).Error(0)
}

func (m *boardRepoMock) DeleteCascade(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type commentRepoMock struct {
	mock.Mock
}

func (m *commentRepoMock) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *commentRepoMock) Create(ctx context.Context, comment domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *commentRepoMock) DeleteByTask(ctx context.Context, taskID string) error {
	return m.Called(ctx, taskID).Error(0)
}

// eventRecorder collects published events for assertions.
type eventRecorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *eventRecorder) Publish(event domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) all() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}
