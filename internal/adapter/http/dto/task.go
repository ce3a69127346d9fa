package dto

type DependencyItem struct {
	PredecessorID string `json:"predecessor_id" binding:"required"`
	Type          string `json:"type" binding:"omitempty,oneof=FS SS FF SF"`
	LagDays       int    `json:"lag_days"`
}

type ChecklistEntry struct {
	ID    string `json:"id"`
	Title string `json:"title" binding:"required,max=255"`
	Done  bool   `json:"done"`
}

type TaskItem struct {
	ID                   string           `json:"id"`
	Code                 string           `json:"code,omitempty"`
	Title                string           `json:"title"`
	Description          *string          `json:"description,omitempty"`
	TaskType             string           `json:"task_type"`
	StartDate            *string          `json:"start_date,omitempty"`
	DueDate              *string          `json:"due_date,omitempty"`
	CompletedAt          *string          `json:"completed_at,omitempty"`
	Dependencies         []DependencyItem `json:"dependencies,omitempty"`
	Checklist            []ChecklistEntry `json:"checklist,omitempty"`
	CompletionPercentage int              `json:"completion_percentage"`
	ColumnID             string           `json:"column_id"`
	BoardID              string           `json:"board_id"`
	Order                int              `json:"order"`
	CreatedAt            string           `json:"created_at"`
	UpdatedAt            string           `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title        string           `json:"title" binding:"required,max=255"`
	Description  *string          `json:"description" binding:"omitempty,max=65535"`
	Code         *string          `json:"code" binding:"omitempty,max=32"`
	TaskType     *string          `json:"task_type" binding:"omitempty,oneof=activity milestone"`
	StartDate    *string          `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate      *string          `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Dependencies []DependencyItem `json:"dependencies" binding:"omitempty,dive"`
	Checklist    []ChecklistEntry `json:"checklist" binding:"omitempty,dive"`
}

type UpdateTaskRequest struct {
	Title        *string          `json:"title" binding:"omitempty,max=255"`
	Description  *string          `json:"description" binding:"omitempty,max=65535"`
	Code         *string          `json:"code" binding:"omitempty,max=32"`
	TaskType     *string          `json:"task_type" binding:"omitempty,oneof=activity milestone"`
	StartDate    *string          `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate      *string          `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	CompletedAt  *string          `json:"completed_at" binding:"omitempty,datetime=2006-01-02"`
	Dependencies []DependencyItem `json:"dependencies" binding:"omitempty,dive"`
	Checklist    []ChecklistEntry `json:"checklist" binding:"omitempty,dive"`
}

type MoveTaskRequest struct {
	ColumnID string `json:"column_id" binding:"required"`
	Index    int    `json:"index" binding:"gte=0"`
}

type CommentItem struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type CreateCommentRequest struct {
	Author string `json:"author" binding:"required,max=255"`
	Body   string `json:"body" binding:"required,max=65535"`
}
