// internal/handlers/leave.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/i18n"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

type LeaveHandler struct {
	leaveService *services.LeaveService
}

func NewLeaveHandler(leaveService *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

type ReviewRequest struct {
	Remarks string `json:"remarks"`
}

// POST /leave-applications
func (h *LeaveHandler) Submit(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	studentID, _ := utils.GetStudentIDFromContext(c)

	var form models.LeaveForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	result, err := h.leaveService.SubmitLeaveApplication(c.Request.Context(), studentID, form)
	if err != nil {
		respondError(c, err, "student")
		return
	}

	utils.CreatedResponse(c, result)
}

// GET /leave-applications
func (h *LeaveHandler) ListMine(c *gin.Context) {
	studentID, _ := utils.GetStudentIDFromContext(c)

	apps, err := h.leaveService.GetLeaveApplicationsByStudentID(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err, "leave")
		return
	}

	utils.SuccessResponseWithMeta(c, apps, gin.H{"count": len(apps)})
}

// GET /admin/leave-applications
func (h *LeaveHandler) ListForReview(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	filter := models.LeaveFilter{Status: models.LeaveStatus(c.Query("status"))}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "limit"), nil)
			return
		}
		filter.Limit = n
	}

	apps, err := h.leaveService.ListForReview(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyLeaveInvalidStatus, filter.Status), nil)
			return
		}
		respondError(c, err, "leave")
		return
	}

	utils.SuccessResponseWithMeta(c, apps, gin.H{"count": len(apps)})
}

// PUT /admin/leave-applications/:id/approve
func (h *LeaveHandler) Approve(c *gin.Context) {
	h.review(c, models.LeaveStatusApproved, i18n.KeyLeaveApproved)
}

// PUT /admin/leave-applications/:id/reject
func (h *LeaveHandler) Reject(c *gin.Context) {
	h.review(c, models.LeaveStatusRejected, i18n.KeyLeaveRejected)
}

func (h *LeaveHandler) review(c *gin.Context, decision models.LeaveStatus, successKey string) {
	lang := utils.GetLangFromContext(c)
	reviewerID, _ := utils.GetUserIDFromContext(c)

	var req ReviewRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
			return
		}
	}

	app, err := h.leaveService.ReviewLeaveApplication(c.Request.Context(), c.Param("id"), reviewerID, decision, req.Remarks)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyReviewed):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyLeaveAlreadyReviewed))
		case errors.Is(err, services.ErrRemarksRequired):
			utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", i18n.T(lang, i18n.KeyLeaveRemarksRequired),
				[]utils.ValidationError{{Field: "remarks", Tag: "required", Message: services.ErrRemarksRequired.Error()}})
		default:
			respondError(c, err, "leave")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":     i18n.T(lang, successKey),
		"application": app,
	})
}
