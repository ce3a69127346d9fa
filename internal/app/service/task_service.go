package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"planboard/internal/core/domain"
	"planboard/internal/core/ports"
	"planboard/internal/core/scheduling"
)

type TaskService struct {
	tasks    ports.TaskRepository
	columns  ports.ColumnRepository
	comments ports.CommentRepository
	events   ports.EventPublisher
	now      func() time.Time
}

func NewTaskService(
	tasks ports.TaskRepository,
	columns ports.ColumnRepository,
	comments ports.CommentRepository,
	events ports.EventPublisher,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		columns:  columns,
		comments: comments,
		events:   events,
		now:      time.Now,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) CreateTask(ctx context.Context, columnID string, input domain.CreateTaskInput) (domain.Task, error) {
	column, err := s.columns.GetByID(ctx, columnID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("load column %s: %w", columnID, err)
	}

	taskType := input.TaskType
	if taskType == "" {
		taskType = domain.TaskTypeActivity
	}

	now := s.now()
	task := domain.Task{
		ID:           uuid.NewString(),
		Code:         input.Code,
		Title:        input.Title,
		Description:  input.Description,
		TaskType:     taskType,
		StartDate:    input.StartDate,
		DueDate:      input.DueDate,
		Dependencies: input.Dependencies,
		Checklist:    input.Checklist,
		ColumnID:     column.ID,
		BoardID:      column.BoardID,
		Order:        len(column.TaskIDs),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	normalizeMilestone(&task)
	if len(task.Checklist) > 0 {
		task.CompletionPercentage = domain.ChecklistCompletion(task.Checklist)
	}

	if len(task.Dependencies) > 0 {
		if err := s.checkDependencies(ctx, task.BoardID, task.ID, task.Dependencies); err != nil {
			return domain.Task{}, err
		}
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	column.TaskIDs = append(column.TaskIDs, task.ID)
	if err := s.columns.Update(ctx, column); err != nil {
		return domain.Task{}, fmt.Errorf("attach task to column %s: %w", column.ID, err)
	}

	s.publish(domain.EventTaskCreated, task.BoardID, task)
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, fmt.Errorf("load task %s: %w", id, err)
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.Code != nil {
		task.Code = *input.Code
	}
	if input.TaskType != nil {
		task.TaskType = *input.TaskType
	}
	if input.StartDateSet {
		task.StartDate = input.StartDate
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}
	if input.CompletedAtSet {
		task.CompletedAt = input.CompletedAt
	}
	if input.DependenciesSet {
		if err := s.checkDependencies(ctx, task.BoardID, task.ID, input.Dependencies); err != nil {
			return domain.Task{}, err
		}
		task.Dependencies = input.Dependencies
	}
	if input.ChecklistSet {
		task.Checklist = input.Checklist
		task.CompletionPercentage = domain.ChecklistCompletion(input.Checklist)
	}

	normalizeMilestone(&task)
	task.UpdatedAt = s.now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}

	s.publish(domain.EventTaskUpdated, task.BoardID, task)
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load task %s: %w", id, err)
	}

	if err := s.comments.DeleteByTask(ctx, id); err != nil {
		return fmt.Errorf("delete comments of task %s: %w", id, err)
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}

	column, err := s.columns.GetByID(ctx, task.ColumnID)
	if err != nil {
		// The owning column may already be gone; the task is deleted either way.
		if !errors.Is(err, domain.ErrColumnNotFound) {
			return fmt.Errorf("load column %s: %w", task.ColumnID, err)
		}
		zap.L().Debug("column of deleted task not found", zap.String("task_id", id), zap.String("column_id", task.ColumnID))
	} else {
		column.TaskIDs = remove(column.TaskIDs, id)
		if err := s.columns.Update(ctx, column); err != nil {
			return fmt.Errorf("detach task from column %s: %w", column.ID, err)
		}
		if err := s.renumberColumn(ctx, column); err != nil {
			return err
		}
	}

	s.publish(domain.EventTaskDeleted, task.BoardID, map[string]string{"id": id})
	return nil
}

func (s *TaskService) MoveTask(ctx context.Context, id, targetColumnID string, index int) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load task %s: %w", id, err)
	}
	source, err := s.columns.GetByID(ctx, task.ColumnID)
	if err != nil {
		return fmt.Errorf("load source column %s: %w", task.ColumnID, err)
	}
	target := source
	if targetColumnID != source.ID {
		target, err = s.columns.GetByID(ctx, targetColumnID)
		if err != nil {
			return fmt.Errorf("load target column %s: %w", targetColumnID, err)
		}
	}

	source.TaskIDs = remove(source.TaskIDs, id)
	if targetColumnID == source.ID {
		target = source
	}

	if index < 0 {
		index = 0
	}
	if index > len(target.TaskIDs) {
		index = len(target.TaskIDs)
	}
	target.TaskIDs = append(target.TaskIDs[:index], append([]string{id}, target.TaskIDs[index:]...)...)

	if err := s.columns.Update(ctx, target); err != nil {
		return fmt.Errorf("update target column %s: %w", target.ID, err)
	}
	if source.ID != target.ID {
		if err := s.columns.Update(ctx, source); err != nil {
			return fmt.Errorf("update source column %s: %w", source.ID, err)
		}
	}

	task.ColumnID = target.ID
	task.Order = index
	task.UpdatedAt = s.now()
	if err := s.tasks.Update(ctx, task); err != nil {
		return fmt.Errorf("update task %s: %w", id, err)
	}

	if err := s.renumberColumn(ctx, target); err != nil {
		return err
	}
	if source.ID != target.ID {
		if err := s.renumberColumn(ctx, source); err != nil {
			return err
		}
	}

	s.publish(domain.EventTaskUpdated, task.BoardID, task)
	return nil
}

func (s *TaskService) AddComment(ctx context.Context, taskID, author, body string) (domain.Comment, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("load task %s: %w", taskID, err)
	}

	comment := domain.Comment{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		Author:    author,
		Body:      body,
		CreatedAt: s.now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return domain.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	s.publish(domain.EventCommentCreated, task.BoardID, comment)
	return comment, nil
}

func (s *TaskService) ListComments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, fmt.Errorf("load task %s: %w", taskID, err)
	}
	return s.comments.ListByTask(ctx, taskID)
}

// checkDependencies rejects edge sets that would close a cycle. Dangling
// references are allowed; they simply contribute no edge.
func (s *TaskService) checkDependencies(ctx context.Context, boardID, taskID string, deps []domain.Dependency) error {
	for _, dep := range deps {
		if dep.Type != "" && !dep.Type.IsValid() {
			return fmt.Errorf("dependency type %q: %w", dep.Type, domain.ErrDependencyCycle)
		}
	}
	snapshot, err := s.tasks.ListByBoard(ctx, boardID)
	if err != nil {
		return fmt.Errorf("load board tasks: %w", err)
	}
	if scheduling.WouldCreateCycle(snapshot, taskID, deps) {
		return domain.ErrDependencyCycle
	}
	return nil
}

// renumberColumn rewrites task Order values to match the column's TaskIDs
// positions, keeping the two views of ordering consistent. Tasks that can
// no longer be loaded are skipped.
func (s *TaskService) renumberColumn(ctx context.Context, column domain.Column) error {
	for position, taskID := range column.TaskIDs {
		t, err := s.tasks.GetByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				zap.L().Debug("stale task id in column", zap.String("column_id", column.ID), zap.String("task_id", taskID))
				continue
			}
			return fmt.Errorf("load task %s: %w", taskID, err)
		}
		if t.Order == position && t.ColumnID == column.ID {
			continue
		}
		t.Order = position
		t.ColumnID = column.ID
		if err := s.tasks.Update(ctx, t); err != nil {
			return fmt.Errorf("renumber task %s: %w", taskID, err)
		}
	}
	return nil
}

// normalizeMilestone enforces zero duration: a milestone's due date equals
// its start date whenever one of them is set.
func normalizeMilestone(task *domain.Task) {
	if task.TaskType != domain.TaskTypeMilestone {
		return
	}
	switch {
	case task.StartDate != nil:
		d := *task.StartDate
		task.DueDate = &d
	case task.DueDate != nil:
		d := *task.DueDate
		task.StartDate = &d
	}
}

func (s *TaskService) publish(eventType domain.EventType, boardID string, payload any) {
	if s.events == nil {
		return
	}
	s.events.Publish(domain.Event{Type: eventType, BoardID: boardID, Payload: payload})
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
