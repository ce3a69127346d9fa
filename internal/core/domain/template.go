package domain

// TaskTemplate describes one task of a board template. StartOffsetDays is
// relative to the board's anchor date; PredecessorCodes reference other
// template entries by code and are resolved to generated task ids during
// board instantiation.
type TaskTemplate struct {
	Code             string
	Title            string
	Type             TaskType
	StartOffsetDays  int
	DurationDays     int
	PredecessorCodes []string
}

// PhaseTemplate becomes one column on an instantiated project board.
type PhaseTemplate struct {
	Name          string
	DurationWeeks int
	Tasks         []TaskTemplate
}

// DefaultProjectPhases is the template project boards are created from.
var DefaultProjectPhases = []PhaseTemplate{
	{
		Name:          "Vorbereitung",
		DurationWeeks: 2,
		Tasks: []TaskTemplate{
			{Code: "M1", Title: "Projektstart", Type: TaskTypeMilestone},
			{Code: "V1", Title: "Konzept erstellen", Type: TaskTypeActivity, DurationDays: 5, PredecessorCodes: []string{"M1"}},
		},
	},
	{
		Name:          "Planung",
		DurationWeeks: 3,
		Tasks: []TaskTemplate{
			{Code: "V2.1", Title: "Konstruktion", Type: TaskTypeActivity, StartOffsetDays: 14, DurationDays: 10, PredecessorCodes: []string{"V1"}},
			{Code: "V2.2", Title: "Stueckliste erstellen", Type: TaskTypeActivity, StartOffsetDays: 24, DurationDays: 5, PredecessorCodes: []string{"V2.1"}},
		},
	},
	{
		Name:          "Beschaffung",
		DurationWeeks: 4,
		Tasks: []TaskTemplate{
			{Code: "M2", Title: "Konstruktionsfreigabe", Type: TaskTypeMilestone, StartOffsetDays: 35, PredecessorCodes: []string{"V2.2"}},
			{Code: "V3", Title: "Material bestellen", Type: TaskTypeActivity, StartOffsetDays: 35, DurationDays: 10, PredecessorCodes: []string{"M2"}},
		},
	},
	{
		Name:          "Fertigung",
		DurationWeeks: 6,
		Tasks: []TaskTemplate{
			{Code: "V4", Title: "Fertigung", Type: TaskTypeActivity, StartOffsetDays: 63, DurationDays: 15, PredecessorCodes: []string{"V3"}},
			{Code: "V5", Title: "Montage", Type: TaskTypeActivity, StartOffsetDays: 78, DurationDays: 10, PredecessorCodes: []string{"V4"}},
		},
	},
	{
		Name:          "Abschluss",
		DurationWeeks: 1,
		Tasks: []TaskTemplate{
			{Code: "M3", Title: "Projektabschluss", Type: TaskTypeMilestone, StartOffsetDays: 105, PredecessorCodes: []string{"V5"}},
		},
	},
}

// CanonicalCodeOrder is the fixed code sequence the sequential
// auto-scheduler packs tasks by. It follows the template's phase order.
func CanonicalCodeOrder() []string {
	var codes []string
	for _, phase := range DefaultProjectPhases {
		for _, t := range phase.Tasks {
			codes = append(codes, t.Code)
		}
	}
	return codes
}
