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

type ColumnHandler struct {
	boardService ports.BoardService
}

func NewColumnHandler(boardService ports.BoardService) *ColumnHandler {
	return &ColumnHandler{boardService: boardService}
}

func (h *ColumnHandler) CreateColumn(c *gin.Context) {
	lang := middleware.GetLang(c)

	boardID, ok := boardIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidColumnPayload, lang),
		)
		return
	}

	column, err := h.boardService.CreateColumn(c.Request.Context(), boardID, domain.CreateColumnInput{
		Name: strings.TrimSpace(req.Name),
	})
	if err != nil {
		if errors.Is(err, domain.ErrBoardNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgBoardNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create column", zap.String("board_id", boardID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateColumn, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToColumnItem(column))
}

func (h *ColumnHandler) UpdateColumn(c *gin.Context) {
	lang := middleware.GetLang(c)

	columnID, ok := columnIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidColumnPayload, lang),
		)
		return
	}

	name := strings.TrimSpace(*req.Name)
	column, err := h.boardService.UpdateColumn(c.Request.Context(), columnID, domain.UpdateColumnInput{Name: &name})
	if err != nil {
		if errors.Is(err, domain.ErrColumnNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgColumnNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update column", zap.String("column_id", columnID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateColumn, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToColumnItem(column))
}

func (h *ColumnHandler) ReorderColumns(c *gin.Context) {
	lang := middleware.GetLang(c)

	boardID, ok := boardIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidColumnPayload, lang),
		)
		return
	}
	for _, id := range req.ColumnIDs {
		if uuid.Validate(id) != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidColumnID, lang),
			)
			return
		}
	}

	if err := h.boardService.ReorderColumns(c.Request.Context(), boardID, req.ColumnIDs); err != nil {
		switch {
		case errors.Is(err, domain.ErrBoardNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgBoardNotFound, lang),
			)
		case errors.Is(err, domain.ErrColumnNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgColumnNotFound, lang),
			)
		default:
			zap.L().Error("failed to reorder columns", zap.String("board_id", boardID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailReorderColumns, lang),
			)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ColumnHandler) DeleteColumn(c *gin.Context) {
	lang := middleware.GetLang(c)

	columnID, ok := columnIDParam(c, lang)
	if !ok {
		return
	}

	var migrateTo *string
	if target := c.Query("migrate_to"); target != "" {
		if uuid.Validate(target) != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidColumnID, lang),
			)
			return
		}
		migrateTo = &target
	}

	if err := h.boardService.DeleteColumn(c.Request.Context(), columnID, migrateTo); err != nil {
		if errors.Is(err, domain.ErrColumnNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgColumnNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete column", zap.String("column_id", columnID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteColumn, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func columnIDParam(c *gin.Context, lang string) (string, bool) {
	columnID := c.Param("id")
	if uuid.Validate(columnID) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidColumnID, lang),
		)
		return "", false
	}
	return columnID, true
}
