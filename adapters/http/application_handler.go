package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	applicationUC "github.com/avlorenzana/jobtrail/internal/application/usecase/application"
	"github.com/avlorenzana/jobtrail/internal/application/usecase/calendar"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type ApplicationHandler struct {
	createUseCase   *applicationUC.CreateApplicationUseCase
	updateUseCase   *applicationUC.UpdateApplicationUseCase
	deleteUseCase   *applicationUC.DeleteApplicationUseCase
	listUseCase     *applicationUC.ListApplicationsUseCase
	calendarUseCase *calendar.CalendarUseCase
	logger          logger.Logger
}

func NewApplicationHandler(
	createUC *applicationUC.CreateApplicationUseCase,
	updateUC *applicationUC.UpdateApplicationUseCase,
	deleteUC *applicationUC.DeleteApplicationUseCase,
	listUC *applicationUC.ListApplicationsUseCase,
	calendarUC *calendar.CalendarUseCase,
	log logger.Logger,
) *ApplicationHandler {
	return &ApplicationHandler{
		createUseCase:   createUC,
		updateUseCase:   updateUC,
		deleteUseCase:   deleteUC,
		listUseCase:     listUC,
		calendarUseCase: calendarUC,
		logger:          log,
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	caller, ok := GetCallerFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("caller not found in context", nil))
		return
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for application", err))
		return
	}

	input := applicationUC.CreateApplicationInput{
		OwnerID:     caller.ID,
		ID:          req.ID,
		Company:     req.Company,
		Position:    req.Position,
		Status:      req.Status,
		Location:    req.Location,
		AppliedDate: req.AppliedDate,
		Notes:       req.Notes,
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToJobApplicationDTO(output.Application))
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	caller, ok := GetCallerFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("caller not found in context", nil))
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for application", err))
		return
	}

	input := applicationUC.UpdateApplicationInput{
		OwnerID:     caller.ID,
		ID:          c.Param("id"),
		Company:     req.Company,
		Position:    req.Position,
		Status:      req.Status,
		Location:    req.Location,
		AppliedDate: req.AppliedDate,
		Notes:       req.Notes,
	}

	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToJobApplicationDTO(output.Application))
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	caller, ok := GetCallerFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("caller not found in context", nil))
		return
	}

	input := applicationUC.DeleteApplicationInput{
		OwnerID: caller.ID,
		ID:      c.Param("id"),
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}

func (h *ApplicationHandler) List(c *gin.Context) {
	caller, ok := GetCallerFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("caller not found in context", nil))
		return
	}

	output, err := h.listUseCase.Execute(c.Request.Context(), applicationUC.ListApplicationsInput{OwnerID: caller.ID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToJobApplicationDTOs(output.Applications))
}

// CalendarOn handles GET /applications/calendar?date=YYYY-MM-DD.
func (h *ApplicationHandler) CalendarOn(c *gin.Context) {
	caller, ok := GetCallerFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("caller not found in context", nil))
		return
	}

	input := calendar.ApplicationsOnInput{
		OwnerID: caller.ID,
		Date:    c.Query("date"),
	}

	output, err := h.calendarUseCase.ExecuteApplicationsOn(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         output.Date,
		"applications": ToJobApplicationDTOs(output.Applications),
	})
}

// CalendarDates handles GET /applications/calendar/dates.
func (h *ApplicationHandler) CalendarDates(c *gin.Context) {
	caller, ok := GetCallerFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("caller not found in context", nil))
		return
	}

	output, err := h.calendarUseCase.ExecuteMarkedDates(c.Request.Context(), calendar.MarkedDatesInput{OwnerID: caller.ID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": output.Dates})
}
