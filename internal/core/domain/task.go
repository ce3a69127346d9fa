package domain

import "time"

type TaskType string

const (
	TaskTypeActivity  TaskType = "activity"
	TaskTypeMilestone TaskType = "milestone"
)

type DependencyType string

const (
	// DependencyFinishToStart: successor may start only after the predecessor finishes (+ lag).
	DependencyFinishToStart DependencyType = "FS"
	// DependencyStartToStart: successor may start only after the predecessor starts (+ lag).
	DependencyStartToStart DependencyType = "SS"
	// DependencyFinishToFinish: successor may finish only after the predecessor finishes (+ lag).
	DependencyFinishToFinish DependencyType = "FF"
	// DependencyStartToFinish: successor may finish only after the predecessor starts (+ lag).
	DependencyStartToFinish DependencyType = "SF"
)

func (t DependencyType) IsValid() bool {
	switch t {
	case DependencyFinishToStart, DependencyStartToStart, DependencyFinishToFinish, DependencyStartToFinish:
		return true
	default:
		return false
	}
}

// Dependency is a predecessor reference owned by the successor task.
// PredecessorRef holds either the predecessor's id or its human-readable
// code; it is resolved against the current task set on every traversal and
// never rewritten in place, so codes stay legible across reseeds.
type Dependency struct {
	PredecessorRef string         `json:"predecessor_id"`
	Type           DependencyType `json:"type"`
	LagDays        int            `json:"lag_days"`
}

type ChecklistItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type Task struct {
	ID                   string          `json:"id"`
	Code                 string          `json:"code,omitempty"`
	Title                string          `json:"title"`
	Description          *string         `json:"description,omitempty"`
	TaskType             TaskType        `json:"task_type"`
	StartDate            *time.Time      `json:"start_date,omitempty"`
	DueDate              *time.Time      `json:"due_date,omitempty"`
	CompletedAt          *time.Time      `json:"completed_at,omitempty"`
	Dependencies         []Dependency    `json:"dependencies,omitempty"`
	Checklist            []ChecklistItem `json:"checklist,omitempty"`
	CompletionPercentage int             `json:"completion_percentage"`
	ColumnID             string          `json:"column_id"`
	BoardID              string          `json:"board_id"`
	Order                int             `json:"order"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ChecklistCompletion derives the completion percentage from checklist
// state. Tasks without a checklist keep their stored percentage.
func ChecklistCompletion(items []ChecklistItem) int {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, item := range items {
		if item.Done {
			done++
		}
	}
	return done * 100 / len(items)
}

type CreateTaskInput struct {
	Title        string
	Description  *string
	Code         string
	TaskType     TaskType
	StartDate    *time.Time
	DueDate      *time.Time
	Dependencies []Dependency
	Checklist    []ChecklistItem
}

// UpdateTaskInput carries a partial task update. Date and description
// fields follow three-way semantics: the Set flag distinguishes "clear the
// field" (Set true, pointer nil) from "leave it alone" (Set false).
type UpdateTaskInput struct {
	Title           *string
	Description     *string
	DescriptionSet  bool
	Code            *string
	TaskType        *TaskType
	StartDate       *time.Time
	StartDateSet    bool
	DueDate         *time.Time
	DueDateSet      bool
	CompletedAt     *time.Time
	CompletedAtSet  bool
	Dependencies    []Dependency
	DependenciesSet bool
	Checklist       []ChecklistItem
	ChecklistSet    bool
}
