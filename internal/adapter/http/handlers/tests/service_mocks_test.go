package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"planboard/internal/core/domain"
	"planboard/internal/core/ports"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, columnID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, columnID, input)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskServiceMock) MoveTask(ctx context.Context, id, targetColumnID string, index int) error {
	args := m.Called(ctx, id, targetColumnID, index)
	return args.Error(0)
}

func (m *taskServiceMock) AddComment(ctx context.Context, taskID, author, body string) (domain.Comment, error) {
	args := m.Called(ctx, taskID, author, body)

	var comment domain.Comment
	if value := args.Get(0); value != nil {
		comment = value.(domain.Comment)
	}
	return comment, args.Error(1)
}

func (m *taskServiceMock) ListComments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

type boardServiceMock struct {
	mock.Mock
}

func (m *boardServiceMock) CreateBoard(ctx context.Context, input domain.CreateBoardInput) (domain.Board, error) {
	args := m.Called(ctx, input)

	var board domain.Board
	if value := args.Get(0); value != nil {
		board = value.(domain.Board)
	}
	return board, args.Error(1)
}

func (m *boardServiceMock) GetBoard(ctx context.Context, id string) (domain.Board, error) {
	args := m.Called(ctx, id)

	var board domain.Board
	if value := args.Get(0); value != nil {
		board = value.(domain.Board)
	}
	return board, args.Error(1)
}

func (m *boardServiceMock) ListBoards(ctx context.Context) ([]domain.Board, error) {
	args := m.Called(ctx)

	var boards []domain.Board
	if value := args.Get(0); value != nil {
		boards = value.([]domain.Board)
	}
	return boards, args.Error(1)
}

func (m *boardServiceMock) UpdateBoard(ctx context.Context, id string, input domain.UpdateBoardInput) (domain.Board, error) {
	args := m.Called(ctx, id, input)

	var board domain.Board
	if value := args.Get(0); value != nil {
		board = value.(domain.Board)
	}
	return board, args.Error(1)
}

func (m *boardServiceMock) DeleteBoard(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *boardServiceMock) CreateColumn(ctx context.Context, boardID string, input domain.CreateColumnInput) (domain.Column, error) {
	args := m.Called(ctx, boardID, input)

	var column domain.Column
	if value := args.Get(0); value != nil {
		column = value.(domain.Column)
	}
	return column, args.Error(1)
}

func (m *boardServiceMock) UpdateColumn(ctx context.Context, id string, input domain.UpdateColumnInput) (domain.Column, error) {
	args := m.Called(ctx, id, input)

	var column domain.Column
	if value := args.Get(0); value != nil {
		column = value.(domain.Column)
	}
	return column, args.Error(1)
}

func (m *boardServiceMock) ReorderColumns(ctx context.Context, boardID string, columnIDs []string) error {
	args := m.Called(ctx, boardID, columnIDs)
	return args.Error(0)
}

func (m *boardServiceMock) DeleteColumn(ctx context.Context, id string, migrateTo *string) error {
	args := m.Called(ctx, id, migrateTo)
	return args.Error(0)
}

func (m *boardServiceMock) ListColumns(ctx context.Context, boardID string) ([]domain.Column, error) {
	args := m.Called(ctx, boardID)

	var columns []domain.Column
	if value := args.Get(0); value != nil {
		columns = value.([]domain.Column)
	}
	return columns, args.Error(1)
}

func (m *boardServiceMock) ListTasks(ctx context.Context, boardID string) ([]domain.Task, error) {
	args := m.Called(ctx, boardID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

type scheduleServiceMock struct {
	mock.Mock
}

func (m *scheduleServiceMock) SetTaskDates(ctx context.Context, taskID string, start, due *time.Time) (ports.CascadeResult, error) {
	args := m.Called(ctx, taskID, start, due)

	var result ports.CascadeResult
	if value := args.Get(0); value != nil {
		result = value.(ports.CascadeResult)
	}
	return result, args.Error(1)
}

func (m *scheduleServiceMock) AutoSchedule(ctx context.Context, boardID string, anchor *time.Time) (int, error) {
	args := m.Called(ctx, boardID, anchor)
	return args.Int(0), args.Error(1)
}
