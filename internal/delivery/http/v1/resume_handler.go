package v1

import (
	"net/http"
	"strconv"

	"go-resume-tracker/internal/delivery/http/middleware"
	"go-resume-tracker/internal/delivery/http/response"
	"go-resume-tracker/internal/domain"
	"go-resume-tracker/pkg/apperror"
	"go-resume-tracker/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
	statusUC domain.StatusUsecase
}

// NewResumeHandler registers resume authoring and status workflow routes.
// Role policy lives entirely in the RequireRoles allow-lists below.
func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase, statusUC domain.StatusUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC, statusUC: statusUC}

	resumes := protected.Group("/resumes")
	{
		resumes.GET("", handler.ListResumes)
		resumes.GET("/:id", handler.GetResume)

		applicantOnly := middleware.RequireRoles(domain.RoleApplicant)
		resumes.POST("", applicantOnly, handler.CreateResume)
		resumes.PATCH("/:id", applicantOnly, handler.UpdateResume)
		resumes.DELETE("/:id", applicantOnly, handler.DeleteResume)

		recruiterOnly := middleware.RequireRoles(domain.RoleRecruiter)
		resumes.PATCH("/:id/status", recruiterOnly, handler.ChangeStatus)
		resumes.GET("/:id/logs", recruiterOnly, handler.ListLogs)
	}
}

func resumeIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid resume ID"))
		return 0, false
	}
	return id, true
}

// CreateResumeRequest is the request payload for creating a resume
type CreateResumeRequest struct {
	Title        string `json:"title" binding:"required"`
	Introduction string `json:"introduction" binding:"required,min=150"`
}

// CreateResume godoc
// @Summary      Create a resume
// @Description  Create a resume owned by the current applicant. Status starts at APPLY.
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        body  body      CreateResumeRequest  true  "Resume data"
// @Success      201   {object}  response.Response{data=domain.Resume}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	resume, err := h.resumeUC.CreateResume(c.Request.Context(), userID, req.Title, req.Introduction)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created", resume)
}

// ListResumes godoc
// @Summary      List resumes
// @Description  Applicants see their own resumes; recruiters see all, optionally filtered by status. Sorted by creation time, newest first by default.
// @Tags         resumes
// @Produce      json
// @Param        sort    query     string  false  "asc or desc (default desc)"
// @Param        status  query     string  false  "apply status filter (recruiter listing)"
// @Success      200     {object}  response.Response{data=[]domain.Resume}
// @Failure      401     {object}  response.Response
// @Router       /resumes [get]
// @Security     BearerAuth
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	resumes, err := h.resumeUC.ListResumes(c.Request.Context(), userID, role, c.Query("sort"), c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resumes retrieved", resumes)
}

// GetResume godoc
// @Summary      Get resume detail
// @Description  Owners and recruiters can view; others get 404
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [get]
// @Security     BearerAuth
func (h *ResumeHandler) GetResume(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	id, ok := resumeIDParam(c)
	if !ok {
		return
	}

	resume, err := h.resumeUC.GetResume(c.Request.Context(), userID, role, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume retrieved", resume)
}

// UpdateResume godoc
// @Summary      Update a resume
// @Description  Update title and/or introduction of an owned resume
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Resume ID"
// @Param        body  body      domain.ResumeUpdate  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.Resume}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /resumes/{id} [patch]
// @Security     BearerAuth
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, ok := resumeIDParam(c)
	if !ok {
		return
	}

	var update domain.ResumeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	resume, err := h.resumeUC.UpdateResume(c.Request.Context(), userID, id, update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume updated", resume)
}

// DeleteResume godoc
// @Summary      Delete a resume
// @Description  Delete an owned resume and its logs
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, ok := resumeIDParam(c)
	if !ok {
		return
	}

	if err := h.resumeUC.DeleteResume(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", gin.H{"resumeId": id})
}

// ChangeStatusRequest is the request payload for a status change
type ChangeStatusRequest struct {
	ApplyStatus string `json:"applyStatus" binding:"required,oneof=APPLY DROP PASS INTERVIEW1 INTERVIEW2 FINAL_PASS"`
	Reason      string `json:"reason" binding:"required"`
}

// ChangeStatus godoc
// @Summary      Change apply status
// @Description  Atomically update a resume's apply status and record the audit log entry (Recruiter only)
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Resume ID"
// @Param        body  body      ChangeStatusRequest  true  "New status and reason"
// @Success      200   {object}  response.Response{data=domain.ResumeLog}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /resumes/{id}/status [patch]
// @Security     BearerAuth
func (h *ResumeHandler) ChangeStatus(c *gin.Context) {
	recruiterID := c.GetInt64(string(domain.KeyUserID))

	id, ok := resumeIDParam(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatValidationErrors(err)))
		return
	}

	log, err := h.statusUC.ChangeStatus(c.Request.Context(), recruiterID, id, req.ApplyStatus, req.Reason)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Apply status updated", log)
}

// ListLogs godoc
// @Summary      List status change logs
// @Description  Status change history for a resume, newest first (Recruiter only)
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response{data=[]domain.ResumeLog}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /resumes/{id}/logs [get]
// @Security     BearerAuth
func (h *ResumeHandler) ListLogs(c *gin.Context) {
	id, ok := resumeIDParam(c)
	if !ok {
		return
	}

	logs, err := h.statusUC.ListLogs(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume logs retrieved", logs)
}
