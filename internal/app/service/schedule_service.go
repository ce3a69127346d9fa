package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"planboard/internal/core/domain"
	"planboard/internal/core/ports"
	"planboard/internal/core/scheduling"
)

// ScheduleService applies reschedule plans through the task repository:
// one update per task, awaited in order, no multi-task transaction. A write
// failure abandons the remaining shifts and leaves the earlier ones applied.
type ScheduleService struct {
	tasks     ports.TaskRepository
	events    ports.EventPublisher
	codeOrder []string
	now       func() time.Time
}

func NewScheduleService(tasks ports.TaskRepository, events ports.EventPublisher) *ScheduleService {
	return &ScheduleService{
		tasks:     tasks,
		events:    events,
		codeOrder: domain.CanonicalCodeOrder(),
		now:       time.Now,
	}
}

var _ ports.ScheduleService = (*ScheduleService)(nil)

func (s *ScheduleService) SetTaskDates(ctx context.Context, taskID string, start, due *time.Time) (ports.CascadeResult, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return ports.CascadeResult{}, fmt.Errorf("load task %s: %w", taskID, err)
	}
	oldDue := task.DueDate

	// The direct edit always wins; it is not validated against the task's
	// own predecessors.
	task.StartDate = start
	task.DueDate = due
	normalizeMilestone(&task)
	task.UpdatedAt = s.now()
	if err := s.tasks.Update(ctx, task); err != nil {
		return ports.CascadeResult{}, fmt.Errorf("update task %s: %w", taskID, err)
	}
	s.publish(task.BoardID, task)

	if task.DueDate == nil {
		return ports.CascadeResult{}, nil
	}
	if oldDue != nil && scheduling.DaysBetween(*oldDue, *task.DueDate) == 0 {
		return ports.CascadeResult{}, nil
	}

	// The cascade computes entirely against this snapshot; concurrent edits
	// from other sessions are not observed mid-run.
	snapshot, err := s.tasks.ListByBoard(ctx, task.BoardID)
	if err != nil {
		return ports.CascadeResult{}, fmt.Errorf("load board tasks: %w", err)
	}
	for i := range snapshot {
		if snapshot[i].ID == task.ID {
			snapshot[i] = task
		}
	}

	shifts := scheduling.PlanCascade(snapshot, task.ID, oldDue)
	result := ports.CascadeResult{Planned: len(shifts)}

	byID := make(map[string]domain.Task, len(snapshot))
	for _, t := range snapshot {
		byID[t.ID] = t
	}

	for _, shift := range shifts {
		succ, ok := byID[shift.TaskID]
		if !ok {
			continue
		}
		if succ.StartDate != nil {
			start := shift.StartDate
			succ.StartDate = &start
		}
		if succ.DueDate != nil {
			due := shift.DueDate
			succ.DueDate = &due
		}
		succ.UpdatedAt = s.now()

		if err := s.tasks.Update(ctx, succ); err != nil {
			// No rollback: earlier writes stay applied, the rest are abandoned.
			zap.L().Error("cascade aborted",
				zap.String("trigger_id", task.ID),
				zap.String("task_id", succ.ID),
				zap.Int("applied", result.Applied),
				zap.Int("planned", result.Planned),
				zap.Error(err))
			return result, fmt.Errorf("cascade update of task %s: %w", succ.ID, err)
		}
		result.Applied++
		s.publish(succ.BoardID, succ)
	}

	return result, nil
}

func (s *ScheduleService) AutoSchedule(ctx context.Context, boardID string, anchor *time.Time) (int, error) {
	snapshot, err := s.tasks.ListByBoard(ctx, boardID)
	if err != nil {
		return 0, fmt.Errorf("load board tasks: %w", err)
	}

	assignments := scheduling.PlanSequential(snapshot, s.codeOrder, anchor, s.now())

	byID := make(map[string]domain.Task, len(snapshot))
	for _, t := range snapshot {
		byID[t.ID] = t
	}

	applied := 0
	for _, a := range assignments {
		task, ok := byID[a.TaskID]
		if !ok {
			continue
		}
		start, due := a.StartDate, a.DueDate
		task.StartDate = &start
		task.DueDate = &due
		task.UpdatedAt = s.now()
		if err := s.tasks.Update(ctx, task); err != nil {
			zap.L().Error("auto-schedule aborted",
				zap.String("board_id", boardID),
				zap.String("task_id", task.ID),
				zap.Int("applied", applied),
				zap.Error(err))
			return applied, fmt.Errorf("auto-schedule update of task %s: %w", task.ID, err)
		}
		applied++
		s.publish(boardID, task)
	}
	return applied, nil
}

func (s *ScheduleService) publish(boardID string, task domain.Task) {
	if s.events == nil {
		return
	}
	s.events.Publish(domain.Event{Type: domain.EventTaskUpdated, BoardID: boardID, Payload: task})
}
