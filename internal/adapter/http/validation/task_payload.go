package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"planboard/internal/adapter/http/dto"
	"planboard/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dateLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "task_type") && req.TaskType == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	taskType := domain.TaskTypeActivity
	if req.TaskType != nil {
		taskType = domain.TaskType(*req.TaskType)
	}

	code := ""
	if req.Code != nil {
		code = strings.TrimSpace(*req.Code)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dependencies, err := buildDependencies(req.Dependencies)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:        title,
		Description:  req.Description,
		Code:         code,
		TaskType:     taskType,
		StartDate:    startDate,
		DueDate:      dueDate,
		Dependencies: dependencies,
		Checklist:    buildChecklist(req.Checklist),
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var code *string
	if hasJSONField(raw, "code") && req.Code == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Code != nil {
		value := strings.TrimSpace(*req.Code)
		code = &value
	}

	var taskType *domain.TaskType
	if hasJSONField(raw, "task_type") && req.TaskType == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.TaskType != nil {
		value := domain.TaskType(*req.TaskType)
		taskType = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	startDate, startDateSet, err := buildDateField(raw, "start_date", req.StartDate)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}
	dueDate, dueDateSet, err := buildDateField(raw, "due_date", req.DueDate)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}
	completedAt, completedAtSet, err := buildDateField(raw, "completed_at", req.CompletedAt)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	var dependencies []domain.Dependency
	dependenciesSet := hasJSONField(raw, "dependencies")
	if dependenciesSet && !isJSONNull(raw["dependencies"]) {
		dependencies, err = buildDependencies(req.Dependencies)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
	}

	var checklist []domain.ChecklistItem
	checklistSet := hasJSONField(raw, "checklist")
	if checklistSet && !isJSONNull(raw["checklist"]) {
		checklist = buildChecklist(req.Checklist)
	}

	return domain.UpdateTaskInput{
		Title:           title,
		Description:     req.Description,
		DescriptionSet:  descriptionSet,
		Code:            code,
		TaskType:        taskType,
		StartDate:       startDate,
		StartDateSet:    startDateSet,
		DueDate:         dueDate,
		DueDateSet:      dueDateSet,
		CompletedAt:     completedAt,
		CompletedAtSet:  completedAtSet,
		Dependencies:    dependencies,
		DependenciesSet: dependenciesSet,
		Checklist:       checklist,
		ChecklistSet:    checklistSet,
	}, nil
}

// buildDateField applies the three-way semantics of a nullable date: absent
// means keep, null means clear, a value must parse as a calendar day.
func buildDateField(raw map[string]json.RawMessage, field string, value *string) (*time.Time, bool, error) {
	if !hasJSONField(raw, field) {
		return nil, false, nil
	}
	if isJSONNull(raw[field]) {
		return nil, true, nil
	}
	if value == nil {
		return nil, false, ErrInvalidTaskPayload
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, false, ErrInvalidTaskPayload
	}
	return &parsed, true, nil
}

func buildDependencies(items []dto.DependencyItem) ([]domain.Dependency, error) {
	if len(items) == 0 {
		return nil, nil
	}
	dependencies := make([]domain.Dependency, 0, len(items))
	for _, item := range items {
		ref := strings.TrimSpace(item.PredecessorID)
		if ref == "" {
			return nil, ErrInvalidTaskPayload
		}
		depType := domain.DependencyFinishToStart
		if item.Type != "" {
			depType = domain.DependencyType(item.Type)
			if !depType.IsValid() {
				return nil, ErrInvalidTaskPayload
			}
		}
		dependencies = append(dependencies, domain.Dependency{
			PredecessorRef: ref,
			Type:           depType,
			LagDays:        item.LagDays,
		})
	}
	return dependencies, nil
}

func buildChecklist(entries []dto.ChecklistEntry) []domain.ChecklistItem {
	if len(entries) == 0 {
		return nil
	}
	checklist := make([]domain.ChecklistItem, 0, len(entries))
	for _, entry := range entries {
		id := entry.ID
		if id == "" {
			id = uuid.NewString()
		}
		checklist = append(checklist, domain.ChecklistItem{
			ID:    id,
			Title: entry.Title,
			Done:  entry.Done,
		})
	}
	return checklist
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "code") ||
		hasJSONField(raw, "task_type") ||
		hasJSONField(raw, "start_date") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "completed_at") ||
		hasJSONField(raw, "dependencies") ||
		hasJSONField(raw, "checklist")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
