package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/usecases"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
	"github.com/resolvia-inc/resolvia/internal/shared/utils"
)

// maxUploadBytes caps a single attachment upload at 25MB.
const maxUploadBytes = 25 << 20

// AttachmentHandler serves attachment uploads and downloads metadata.
type AttachmentHandler struct {
	uploadAttachmentUC usecases.UploadAttachmentExecutor
	listAttachmentsUC  usecases.ListAttachmentsExecutor
	deleteAttachmentUC usecases.DeleteAttachmentExecutor
	logger             logger.Interface
}

func NewAttachmentHandler(
	uploadAttachmentUC usecases.UploadAttachmentExecutor,
	listAttachmentsUC usecases.ListAttachmentsExecutor,
	deleteAttachmentUC usecases.DeleteAttachmentExecutor,
	logger logger.Interface,
) *AttachmentHandler {
	return &AttachmentHandler{
		uploadAttachmentUC: uploadAttachmentUC,
		listAttachmentsUC:  listAttachmentsUC,
		deleteAttachmentUC: deleteAttachmentUC,
		logger:             logger,
	}
}

// UploadAttachment handles POST /tickets/:id/attachments as multipart form
// data with a "file" part and an optional "response_id" field.
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("missing file upload"))
		return
	}

	if fileHeader.Size > maxUploadBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file exceeds the upload size limit"))
		return
	}

	var responseID *uint
	if raw := c.PostForm("response_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || v == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid response_id"))
			return
		}
		id := uint(v)
		responseID = &id
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("unreadable file upload"))
		return
	}
	defer f.Close()

	result, err := h.uploadAttachmentUC.Execute(c.Request.Context(), usecases.UploadAttachmentCommand{
		Principal:  principal,
		TicketID:   ticketID,
		ResponseID: responseID,
		FileName:   fileHeader.Filename,
		MimeType:   fileHeader.Header.Get("Content-Type"),
		SizeBytes:  fileHeader.Size,
		Content:    f,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded successfully")
}

// ListAttachments handles GET /tickets/:id/attachments
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listAttachmentsUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{
		Principal: principal,
		TicketID:  ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteAttachment handles DELETE /tickets/:id/attachments/:attachmentID
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachmentID, err := parseIDParam(c, "attachmentID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteAttachmentUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		Principal:    principal,
		TicketID:     ticketID,
		AttachmentID: attachmentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment deleted successfully", nil)
}
