package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"planboard/internal/adapter/http/dto"
	"planboard/internal/adapter/http/handlers"
	"planboard/internal/adapter/http/middleware"
	"planboard/internal/core/domain"
	"planboard/pkg/apierrors"
)

func boardRouter(serviceMock *boardServiceMock) *gin.Engine {
	boardHandler := handlers.NewBoardHandler(serviceMock)
	columnHandler := handlers.NewColumnHandler(serviceMock)
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware())
	group.POST("/boards", boardHandler.CreateBoard)
	group.GET("/boards", boardHandler.ListBoards)
	group.GET("/boards/:id", boardHandler.GetBoard)
	group.PATCH("/boards/:id", boardHandler.UpdateBoard)
	group.DELETE("/boards/:id", boardHandler.DeleteBoard)
	group.GET("/boards/:id/columns", boardHandler.ListColumns)
	group.GET("/boards/:id/tasks", boardHandler.ListTasks)
	group.POST("/boards/:id/columns", columnHandler.CreateColumn)
	group.PUT("/boards/:id/columns/order", columnHandler.ReorderColumns)
	group.PATCH("/columns/:id", columnHandler.UpdateColumn)
	group.DELETE("/columns/:id", columnHandler.DeleteColumn)
	return router
}

func TestBoardHandler_CreateBoard_ProjectBoard(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	projektnummer := "P-2026-041"

	serviceMock := new(boardServiceMock)
	serviceMock.On("CreateBoard", mock.Anything, mock.MatchedBy(func(input domain.CreateBoardInput) bool {
		return input.Name == "Anlage Nord" &&
			!input.IsGlobal &&
			input.Projektnummer != nil && *input.Projektnummer == projektnummer &&
			input.DefaultView == domain.BoardViewGantt
	})).Return(
		domain.Board{
			ID:            boardID,
			Name:          "Anlage Nord",
			Projektnummer: &projektnummer,
			ColumnIDs:     []string{columnID},
			DefaultView:   domain.BoardViewGantt,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		nil,
	).Once()

	router := boardRouter(serviceMock)
	rec := doJSON(t, router, http.MethodPost, "/api/boards", `{
		"name": "Anlage Nord",
		"projektnummer": "P-2026-041",
		"default_view": "gantt"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.BoardItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, boardID, got.ID)
	require.Equal(t, "P-2026-041", *got.Projektnummer)
	require.Equal(t, "gantt", got.DefaultView)
	require.Equal(t, []string{columnID}, got.ColumnIDs)
	serviceMock.AssertExpectations(t)
}

func TestBoardHandler_CreateBoard_InvalidView(t *testing.T) {
	serviceMock := new(boardServiceMock)
	router := boardRouter(serviceMock)

	rec := doJSON(t, router, http.MethodPost, "/api/boards", `{
		"name": "Anlage Nord",
		"default_view": "timeline"
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "CreateBoard")
}

func TestBoardHandler_GetBoard_NotFound(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("GetBoard", mock.Anything, boardID).Return(nil, domain.ErrBoardNotFound).Once()

	router := boardRouter(serviceMock)
	rec := doJSON(t, router, http.MethodGet, "/api/boards/"+boardID, "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Board not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestBoardHandler_ListBoards_Error(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("ListBoards", mock.Anything).Return(nil, errors.New("db is down")).Once()

	router := boardRouter(serviceMock)
	rec := doJSON(t, router, http.MethodGet, "/api/boards", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Could not retrieve boards.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestColumnHandler_ReorderColumns_Success(t *testing.T) {
	other := "3c1d5e7f-90ab-4cde-8f01-23456789abcd"

	serviceMock := new(boardServiceMock)
	serviceMock.On("ReorderColumns", mock.Anything, boardID, []string{other, columnID}).Return(nil).Once()

	router := boardRouter(serviceMock)
	rec := doJSON(t, router, http.MethodPut, "/api/boards/"+boardID+"/columns/order", `{
		"column_ids": ["`+other+`", "`+columnID+`"]
	}`)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestColumnHandler_ReorderColumns_UnknownColumn(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("ReorderColumns", mock.Anything, boardID, []string{columnID}).
		Return(domain.ErrColumnNotFound).Once()

	router := boardRouter(serviceMock)
	rec := doJSON(t, router, http.MethodPut, "/api/boards/"+boardID+"/columns/order", `{
		"column_ids": ["`+columnID+`"]
	}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestColumnHandler_DeleteColumn_WithMigration(t *testing.T) {
	target := "3c1d5e7f-90ab-4cde-8f01-23456789abcd"

	serviceMock := new(boardServiceMock)
	serviceMock.On("DeleteColumn", mock.Anything, columnID, mock.MatchedBy(func(migrateTo *string) bool {
		return migrateTo != nil && *migrateTo == target
	})).Return(nil).Once()

	router := boardRouter(serviceMock)
	rec := doJSON(t, router, http.MethodDelete, "/api/columns/"+columnID+"?migrate_to="+target, "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestColumnHandler_DeleteColumn_CascadeWithoutTarget(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("DeleteColumn", mock.Anything, columnID, (*string)(nil)).Return(nil).Once()

	router := boardRouter(serviceMock)
	rec := doJSON(t, router, http.MethodDelete, "/api/columns/"+columnID, "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestColumnHandler_CreateColumn_BoardNotFound(t *testing.T) {
	serviceMock := new(boardServiceMock)
	serviceMock.On("CreateColumn", mock.Anything, boardID, domain.CreateColumnInput{Name: "Abnahme"}).
		Return(nil, domain.ErrBoardNotFound).Once()

	router := boardRouter(serviceMock)
	rec := doJSON(t, router, http.MethodPost, "/api/boards/"+boardID+"/columns", `{"name": "Abnahme"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestBoardHandler_ListTasks_Success(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	serviceMock := new(boardServiceMock)
	serviceMock.On("ListTasks", mock.Anything, boardID).Return(
		[]domain.Task{
			{
				ID:        taskID,
				Code:      "M1",
				Title:     "Projektstart",
				TaskType:  domain.TaskTypeMilestone,
				ColumnID:  columnID,
				BoardID:   boardID,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		nil,
	).Once()

	router := boardRouter(serviceMock)
	rec := doJSON(t, router, http.MethodGet, "/api/boards/"+boardID+"/tasks", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "milestone", got[0].TaskType)
	require.Equal(t, "M1", got[0].Code)
	serviceMock.AssertExpectations(t)
}
