package dto

type BoardItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	IsGlobal      bool     `json:"is_global"`
	Projektnummer *string  `json:"projektnummer,omitempty"`
	ColumnIDs     []string `json:"column_ids"`
	DefaultView   string   `json:"default_view"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type ColumnItem struct {
	ID        string   `json:"id"`
	BoardID   string   `json:"board_id"`
	Name      string   `json:"name"`
	Order     int      `json:"order"`
	TaskIDs   []string `json:"task_ids"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type CreateBoardRequest struct {
	Name          string  `json:"name" binding:"required,max=255"`
	IsGlobal      bool    `json:"is_global"`
	Projektnummer *string `json:"projektnummer" binding:"omitempty,max=64"`
	DefaultView   *string `json:"default_view" binding:"omitempty,oneof=kanban gantt list"`
}

type UpdateBoardRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	DefaultView *string `json:"default_view" binding:"omitempty,oneof=kanban gantt list"`
}

type CreateColumnRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateColumnRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

type ReorderColumnsRequest struct {
	ColumnIDs []string `json:"column_ids" binding:"required,min=1"`
}
