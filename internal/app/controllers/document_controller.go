package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chwc/clinicops/internal/app/models/dto"
	"github.com/chwc/clinicops/internal/app/services"
	"github.com/chwc/clinicops/internal/middleware"
	"github.com/chwc/clinicops/internal/pkg/logger"
)

// DocumentController handles proof of registration endpoints
type DocumentController struct {
	documentService services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService services.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// Upload stores a proof of registration file for a student
func (c *DocumentController) Upload(ctx *gin.Context) {
	studentNumber := ctx.Param("studentNumber")

	file, err := ctx.FormFile("document")
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file uploaded")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	doc, err := c.documentService.Upload(ctx.Request.Context(), studentNumber, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DocumentResponse{Document: doc})
}

// GetLatest returns the student's most recent upload
func (c *DocumentController) GetLatest(ctx *gin.Context) {
	studentNumber := ctx.Param("studentNumber")

	doc, err := c.documentService.GetLatest(ctx.Request.Context(), studentNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DocumentResponse{Document: doc})
}

// Decide records an approval decision for the student's latest upload
func (c *DocumentController) Decide(ctx *gin.Context) {
	studentNumber := ctx.Param("studentNumber")

	var req dto.DecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid decision")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	if err := c.documentService.Decide(ctx.Request.Context(), studentNumber, req.Decision); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: fmt.Sprintf("POR %s successfully", req.Decision),
	})
}

// ListFiles returns the student's uploads
func (c *DocumentController) ListFiles(ctx *gin.Context) {
	studentNumber := ctx.Param("studentNumber")

	response, err := c.documentService.ListFiles(ctx.Request.Context(), studentNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// Download streams a stored file back to the client
func (c *DocumentController) Download(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid file ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	doc, reader, err := c.documentService.Download(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer reader.Close()

	ctx.Header("Content-Type", doc.Mimetype)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	ctx.Status(http.StatusOK)

	if _, err := io.Copy(ctx.Writer, reader); err != nil {
		logger.Error().Err(err).Int64("documentID", id).Msg("Error streaming file to client")
	}
}
