package apierrors

const (
	MsgInvalidBoardID         = "invalidBoardID"
	MsgInvalidColumnID        = "invalidColumnID"
	MsgInvalidTaskID          = "invalidTaskID"
	MsgInvalidBoardPayload    = "invalidBoardPayload"
	MsgInvalidColumnPayload   = "invalidColumnPayload"
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgInvalidCommentPayload  = "invalidCommentPayload"
	MsgInvalidSchedulePayload = "invalidSchedulePayload"
	MsgBoardNotFound          = "boardNotFound"
	MsgColumnNotFound         = "columnNotFound"
	MsgTaskNotFound           = "taskNotFound"
	MsgDependencyCycle        = "dependencyCycle"
	MsgFailListBoards         = "failListBoards"
	MsgFailCreateBoard        = "failCreateBoard"
	MsgFailUpdateBoard        = "failUpdateBoard"
	MsgFailDeleteBoard        = "failDeleteBoard"
	MsgFailCreateColumn       = "failCreateColumn"
	MsgFailUpdateColumn       = "failUpdateColumn"
	MsgFailDeleteColumn       = "failDeleteColumn"
	MsgFailReorderColumns     = "failReorderColumns"
	MsgFailListColumns        = "failListColumns"
	MsgFailListTasks          = "failListTasks"
	MsgFailCreateTask         = "failCreateTask"
	MsgFailUpdateTask         = "failUpdateTask"
	MsgFailDeleteTask         = "failDeleteTask"
	MsgFailMoveTask           = "failMoveTask"
	MsgFailListComments       = "failListComments"
	MsgFailCreateComment      = "failCreateComment"
	MsgFailSchedule           = "failSchedule"
)
