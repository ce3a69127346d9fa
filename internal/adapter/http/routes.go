package http

import (
	"github.com/gin-gonic/gin"

	"planboard/internal/adapter/http/handlers"
	"planboard/internal/adapter/http/middleware"
	"planboard/internal/adapter/ws"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Boards   *handlers.BoardHandler
	Columns  *handlers.ColumnHandler
	Tasks    *handlers.TaskHandler
	Schedule *handlers.ScheduleHandler
	Hub      *ws.Hub
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/boards", h.Boards.CreateBoard)
		api.GET("/boards", h.Boards.ListBoards)
		api.GET("/boards/:id", h.Boards.GetBoard)
		api.PATCH("/boards/:id", h.Boards.UpdateBoard)
		api.DELETE("/boards/:id", h.Boards.DeleteBoard)
		api.GET("/boards/:id/columns", h.Boards.ListColumns)
		api.GET("/boards/:id/tasks", h.Boards.ListTasks)
		api.POST("/boards/:id/columns", h.Columns.CreateColumn)
		api.PUT("/boards/:id/columns/order", h.Columns.ReorderColumns)
		api.POST("/boards/:id/autoschedule", h.Schedule.AutoSchedule)

		api.PATCH("/columns/:id", h.Columns.UpdateColumn)
		api.DELETE("/columns/:id", h.Columns.DeleteColumn)
		api.POST("/columns/:id/tasks", h.Tasks.CreateTask)

		api.GET("/tasks/:id", h.Tasks.GetTask)
		api.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		api.PUT("/tasks/:id/move", h.Tasks.MoveTask)
		api.PUT("/tasks/:id/dates", h.Schedule.SetTaskDates)
		api.POST("/tasks/:id/comments", h.Tasks.CreateComment)
		api.GET("/tasks/:id/comments", h.Tasks.ListComments)

		if h.Hub != nil {
			api.GET("/ws", ws.ServeWS(h.Hub))
		}
	}
}
