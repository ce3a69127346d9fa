package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"planboard/internal/adapter/http/dto"
	"planboard/internal/adapter/http/mapper"
	"planboard/internal/adapter/http/middleware"
	"planboard/internal/core/domain"
	"planboard/internal/core/ports"
	"planboard/pkg/apierrors"
)

type BoardHandler struct {
	boardService ports.BoardService
}

func NewBoardHandler(boardService ports.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

func (h *BoardHandler) CreateBoard(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBoardPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBoardPayload, lang),
		)
		return
	}

	view := domain.BoardViewKanban
	if req.DefaultView != nil {
		view = domain.BoardView(*req.DefaultView)
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), domain.CreateBoardInput{
		Name:          name,
		IsGlobal:      req.IsGlobal,
		Projektnummer: req.Projektnummer,
		DefaultView:   view,
	})
	if err != nil {
		zap.L().Error("failed to create board", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateBoard, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToBoardItem(board))
}

func (h *BoardHandler) ListBoards(c *gin.Context) {
	lang := middleware.GetLang(c)

	boards, err := h.boardService.ListBoards(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list boards", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListBoards, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoardItems(boards))
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	lang := middleware.GetLang(c)

	boardID, ok := boardIDParam(c, lang)
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgBoardNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load board", zap.String("board_id", boardID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListBoards, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoardItem(board))
}

func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	lang := middleware.GetLang(c)

	boardID, ok := boardIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Name == nil && req.DefaultView == nil) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBoardPayload, lang),
		)
		return
	}

	input := domain.UpdateBoardInput{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBoardPayload, lang),
			)
			return
		}
		input.Name = &name
	}
	if req.DefaultView != nil {
		view := domain.BoardView(*req.DefaultView)
		input.DefaultView = &view
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), boardID, input)
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgBoardNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update board", zap.String("board_id", boardID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateBoard, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoardItem(board))
}

func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	lang := middleware.GetLang(c)

	boardID, ok := boardIDParam(c, lang)
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), boardID); err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgBoardNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete board", zap.String("board_id", boardID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteBoard, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BoardHandler) ListColumns(c *gin.Context) {
	lang := middleware.GetLang(c)

	boardID, ok := boardIDParam(c, lang)
	if !ok {
		return
	}

	columns, err := h.boardService.ListColumns(c.Request.Context(), boardID)
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgBoardNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to list columns", zap.String("board_id", boardID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListColumns, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToColumnItems(columns))
}

func (h *BoardHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	boardID, ok := boardIDParam(c, lang)
	if !ok {
		return
	}

	tasks, err := h.boardService.ListTasks(c.Request.Context(), boardID)
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgBoardNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to list board tasks", zap.String("board_id", boardID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func boardIDParam(c *gin.Context, lang string) (string, bool) {
	boardID := c.Param("id")
	if uuid.Validate(boardID) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidBoardID, lang),
		)
		return "", false
	}
	return boardID, true
}
