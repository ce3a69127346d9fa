package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planboard/internal/adapter/http/dto"
	"planboard/internal/adapter/http/middleware"
	"planboard/internal/core/domain"
	"planboard/internal/core/ports"
	"planboard/pkg/apierrors"
)

const dateLayout = "2006-01-02"

type ScheduleHandler struct {
	scheduleService ports.ScheduleService
}

func NewScheduleHandler(scheduleService ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) SetTaskDates(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := taskIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.SetTaskDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}

	result, err := h.scheduleService.SetTaskDates(c.Request.Context(), taskID, start, due)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		// A failed cascade write leaves earlier shifts in place; report the
		// counts so callers can see how far it got.
		zap.L().Error("failed to cascade reschedule",
			zap.String("task_id", taskID),
			zap.Int("planned", result.Planned),
			zap.Int("applied", result.Applied),
			zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.CascadeResponse{Planned: result.Planned, Applied: result.Applied})
}

func (h *ScheduleHandler) AutoSchedule(c *gin.Context) {
	lang := middleware.GetLang(c)

	boardID, ok := boardIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.AutoScheduleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
			)
			return
		}
	}

	anchor, err := parseDate(req.Anchor)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}

	rescheduled, err := h.scheduleService.AutoSchedule(c.Request.Context(), boardID, anchor)
	if err != nil {
		zap.L().Error("failed to auto-schedule board",
			zap.String("board_id", boardID),
			zap.Int("rescheduled", rescheduled),
			zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AutoScheduleResponse{Rescheduled: rescheduled})
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
