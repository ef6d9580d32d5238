package dto

import (
	"time"

	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
)

type TicketDTO struct {
	ID                     uint             `json:"id"`
	Code                   string           `json:"code"`
	CompanyID              uint             `json:"company_id"`
	CreatedByUserID        uint             `json:"created_by_user_id"`
	OwnerAgentID           *uint            `json:"owner_agent_id"`
	CategoryID             uint             `json:"category_id"`
	AreaID                 *uint            `json:"area_id"`
	Title                  string           `json:"title"`
	Description            string           `json:"description"`
	Status                 string           `json:"status"`
	Priority               string           `json:"priority"`
	LastResponseAuthorType string           `json:"last_response_author_type"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
	FirstResponseAt        *time.Time       `json:"first_response_at"`
	ResolvedAt             *time.Time       `json:"resolved_at"`
	ClosedAt               *time.Time       `json:"closed_at"`
	Responses              []ResponseDTO    `json:"responses,omitempty"`
	Attachments            []AttachmentDTO  `json:"attachments,omitempty"`
}

type TicketListItemDTO struct {
	ID                     uint       `json:"id"`
	Code                   string     `json:"code"`
	CompanyID              uint       `json:"company_id"`
	OwnerAgentID           *uint      `json:"owner_agent_id"`
	Title                  string     `json:"title"`
	Status                 string     `json:"status"`
	Priority               string     `json:"priority"`
	LastResponseAuthorType string     `json:"last_response_author_type"`
	CreatedAt              time.Time  `json:"created_at"`
	FirstResponseAt        *time.Time `json:"first_response_at"`
}

type ResponseDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	AuthorID   uint      `json:"author_id"`
	AuthorType string    `json:"author_type"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AttachmentDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	ResponseID *uint     `json:"response_id"`
	UploadedBy uint      `json:"uploaded_by"`
	FileName   string    `json:"file_name"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket, responses []*ticket.Response, attachments []*ticket.Attachment) *TicketDTO {
	if t == nil {
		return nil
	}

	responseDTOs := make([]ResponseDTO, 0, len(responses))
	for _, r := range responses {
		responseDTOs = append(responseDTOs, ToResponseDTO(r))
	}

	attachmentDTOs := make([]AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		attachmentDTOs = append(attachmentDTOs, ToAttachmentDTO(a))
	}

	return &TicketDTO{
		ID:                     t.ID(),
		Code:                   t.Code(),
		CompanyID:              t.CompanyID(),
		CreatedByUserID:        t.CreatedByUserID(),
		OwnerAgentID:           t.OwnerAgentID(),
		CategoryID:             t.CategoryID(),
		AreaID:                 t.AreaID(),
		Title:                  t.Title(),
		Description:            t.Description(),
		Status:                 t.Status().String(),
		Priority:               t.Priority().String(),
		LastResponseAuthorType: t.LastResponseAuthorType().String(),
		CreatedAt:              t.CreatedAt(),
		UpdatedAt:              t.UpdatedAt(),
		FirstResponseAt:        t.FirstResponseAt(),
		ResolvedAt:             t.ResolvedAt(),
		ClosedAt:               t.ClosedAt(),
		Responses:              responseDTOs,
		Attachments:            attachmentDTOs,
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:                     t.ID(),
		Code:                   t.Code(),
		CompanyID:              t.CompanyID(),
		OwnerAgentID:           t.OwnerAgentID(),
		Title:                  t.Title(),
		Status:                 t.Status().String(),
		Priority:               t.Priority().String(),
		LastResponseAuthorType: t.LastResponseAuthorType().String(),
		CreatedAt:              t.CreatedAt(),
		FirstResponseAt:        t.FirstResponseAt(),
	}
}

func ToResponseDTO(r *ticket.Response) ResponseDTO {
	return ResponseDTO{
		ID:         r.ID(),
		TicketID:   r.TicketID(),
		AuthorID:   r.AuthorID(),
		AuthorType: r.AuthorType().String(),
		Content:    r.Content(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		ResponseID: a.ResponseID(),
		UploadedBy: a.UploadedByUserID(),
		FileName:   a.FileName(),
		MimeType:   a.MimeType(),
		SizeBytes:  a.SizeBytes(),
		CreatedAt:  a.CreatedAt(),
	}
}
