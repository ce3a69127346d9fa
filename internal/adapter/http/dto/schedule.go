package dto

// SetTaskDatesRequest carries a direct date edit. The PUT replaces both
// dates wholesale; a missing or null field clears it.
type SetTaskDatesRequest struct {
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate   *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type CascadeResponse struct {
	Planned int `json:"planned"`
	Applied int `json:"applied"`
}

type AutoScheduleRequest struct {
	Anchor *string `json:"anchor" binding:"omitempty,datetime=2006-01-02"`
}

type AutoScheduleResponse struct {
	Rescheduled int `json:"rescheduled"`
}
