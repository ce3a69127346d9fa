//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	dbadapter "planboard/internal/adapter/db"
	httpadapter "planboard/internal/adapter/http"
	"planboard/internal/adapter/http/dto"
	"planboard/internal/adapter/http/handlers"
	appservice "planboard/internal/app/service"
)

type BoardsIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestBoardsIntegrationSuite(t *testing.T) {
	suite.Run(t, new(BoardsIntegrationSuite))
}

func (s *BoardsIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	taskRepo := dbadapter.NewTaskRepository(s.DB)
	columnRepo := dbadapter.NewColumnRepository(s.DB)
	boardRepo := dbadapter.NewBoardRepository(s.DB)
	commentRepo := dbadapter.NewCommentRepository(s.DB)

	taskService := appservice.NewTaskService(taskRepo, columnRepo, commentRepo, nil)
	boardService := appservice.NewBoardService(boardRepo, columnRepo, taskRepo, nil)
	scheduleService := appservice.NewScheduleService(taskRepo, nil)

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(s.DB),
		Boards:   handlers.NewBoardHandler(boardService),
		Columns:  handlers.NewColumnHandler(boardService),
		Tasks:    handlers.NewTaskHandler(taskService),
		Schedule: handlers.NewScheduleHandler(scheduleService),
	})
	s.router = router
}

func (s *BoardsIntegrationSuite) request(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BoardsIntegrationSuite) createProjectBoard() dto.BoardItem {
	rec := s.request(http.MethodPost, "/api/boards", `{
		"name": "Anlage Nord",
		"projektnummer": "P-2026-041",
		"default_view": "gantt"
	}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var board dto.BoardItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &board))
	return board
}

func (s *BoardsIntegrationSuite) boardTasks(boardID string) []dto.TaskItem {
	rec := s.request(http.MethodGet, "/api/boards/"+boardID+"/tasks", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var tasks []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &tasks))
	return tasks
}

func (s *BoardsIntegrationSuite) TestCreateProjectBoard_InstantiatesTemplate() {
	board := s.createProjectBoard()
	s.Require().Equal("P-2026-041", *board.Projektnummer)
	s.Require().Len(board.ColumnIDs, 5)

	tasks := s.boardTasks(board.ID)
	s.Require().Len(tasks, 9)

	byCode := make(map[string]dto.TaskItem, len(tasks))
	for _, task := range tasks {
		byCode[task.Code] = task
	}

	s.Require().Equal("milestone", byCode["M1"].TaskType)
	s.Require().Equal(*byCode["M1"].StartDate, *byCode["M1"].DueDate)

	// Template dependencies are resolved to the created task ids.
	v1 := byCode["V1"]
	s.Require().Len(v1.Dependencies, 1)
	s.Require().Equal(byCode["M1"].ID, v1.Dependencies[0].PredecessorID)
	s.Require().Equal("FS", v1.Dependencies[0].Type)
}

func (s *BoardsIntegrationSuite) TestCreateGlobalBoard_HasDefaultColumns() {
	rec := s.request(http.MethodPost, "/api/boards", `{"name": "Übersicht", "is_global": true}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var board dto.BoardItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &board))
	s.Require().Len(board.ColumnIDs, 5)

	recCols := s.request(http.MethodGet, "/api/boards/"+board.ID+"/columns", "")
	s.Require().Equal(http.StatusOK, recCols.Code)

	var columns []dto.ColumnItem
	s.Require().NoError(json.Unmarshal(recCols.Body.Bytes(), &columns))
	s.Require().Len(columns, 5)
	s.Require().Equal("Backlog", columns[0].Name)
	s.Require().Equal("Done", columns[4].Name)
}

func (s *BoardsIntegrationSuite) TestSetTaskDates_CascadesToSuccessors() {
	board := s.createProjectBoard()
	tasks := s.boardTasks(board.ID)

	byCode := make(map[string]dto.TaskItem, len(tasks))
	for _, task := range tasks {
		byCode[task.Code] = task
	}
	m1 := byCode["M1"]
	v1Before := byCode["V1"]

	rec := s.request(http.MethodPut, "/api/tasks/"+m1.ID+"/dates", `{
		"start_date": "2026-06-01",
		"due_date": "2026-06-01"
	}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var result dto.CascadeResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	s.Require().Equal(result.Planned, result.Applied)

	after := s.boardTasks(board.ID)
	for _, task := range after {
		if task.Code != "V1" {
			continue
		}
		s.Require().NotEqual(*v1Before.StartDate, *task.StartDate)
		// Duration is preserved by the shift.
		s.Require().Equal(
			daysBetween(s.T(), *v1Before.StartDate, *v1Before.DueDate),
			daysBetween(s.T(), *task.StartDate, *task.DueDate),
		)
	}
}

func (s *BoardsIntegrationSuite) TestMoveTask_RenumbersBothColumns() {
	board := s.createProjectBoard()
	tasks := s.boardTasks(board.ID)
	s.Require().NotEmpty(tasks)

	recCols := s.request(http.MethodGet, "/api/boards/"+board.ID+"/columns", "")
	var columns []dto.ColumnItem
	s.Require().NoError(json.Unmarshal(recCols.Body.Bytes(), &columns))
	s.Require().True(len(columns) >= 2)

	moved := columns[0].TaskIDs[0]
	rec := s.request(http.MethodPut, "/api/tasks/"+moved+"/move", `{
		"column_id": "`+columns[1].ID+`",
		"index": 0
	}`)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	recAfter := s.request(http.MethodGet, "/api/boards/"+board.ID+"/columns", "")
	var after []dto.ColumnItem
	s.Require().NoError(json.Unmarshal(recAfter.Body.Bytes(), &after))
	s.Require().NotContains(after[0].TaskIDs, moved)
	s.Require().Equal(moved, after[1].TaskIDs[0])

	recTask := s.request(http.MethodGet, "/api/tasks/"+moved, "")
	var task dto.TaskItem
	s.Require().NoError(json.Unmarshal(recTask.Body.Bytes(), &task))
	s.Require().Equal(after[1].ID, task.ColumnID)
	s.Require().Equal(0, task.Order)
}

func (s *BoardsIntegrationSuite) TestDeleteBoard_CascadesEverything() {
	board := s.createProjectBoard()

	rec := s.request(http.MethodDelete, "/api/boards/"+board.ID, "")
	s.Require().Equal(http.StatusNoContent, rec.Code)

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM tasks WHERE board_id = ?", board.ID))
	s.Require().Zero(count)
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM board_columns WHERE board_id = ?", board.ID))
	s.Require().Zero(count)

	recGet := s.request(http.MethodGet, "/api/boards/"+board.ID, "")
	s.Require().Equal(http.StatusNotFound, recGet.Code)
}

func daysBetween(t *testing.T, from, to string) int {
	t.Helper()
	a, err := time.Parse("2006-01-02", from)
	if err != nil {
		t.Fatalf("parse %s: %v", from, err)
	}
	b, err := time.Parse("2006-01-02", to)
	if err != nil {
		t.Fatalf("parse %s: %v", to, err)
	}
	return int(b.Sub(a).Hours() / 24)
}
