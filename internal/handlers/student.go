// internal/handlers/student.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

type StudentHandler struct {
	studentService *services.StudentService
}

func NewStudentHandler(studentService *services.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// GET /students/me
func (h *StudentHandler) GetMyProfile(c *gin.Context) {
	studentID, _ := utils.GetStudentIDFromContext(c)

	profile, err := h.studentService.GetProfile(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err, "student")
		return
	}

	utils.SuccessResponse(c, profile)
}
