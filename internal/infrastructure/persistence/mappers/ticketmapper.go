package mappers

import (
	"fmt"

	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	vo "github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ResponseToModel(r *ticket.Response) *models.ResponseModel
	ResponseToDomain(model *models.ResponseModel) (*ticket.Response, error)
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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
		Version:                t.Version(),
		CreatedAt:              t.CreatedAt().UnixMilli(),
		UpdatedAt:              t.UpdatedAt().UnixMilli(),
		FirstResponseAt:        timeToMillisPtr(t.FirstResponseAt()),
		ResolvedAt:             timeToMillisPtr(t.ResolvedAt()),
		ClosedAt:               timeToMillisPtr(t.ClosedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Code,
		model.CompanyID,
		model.CreatedByUserID,
		model.OwnerAgentID,
		model.CategoryID,
		model.AreaID,
		model.Title,
		model.Description,
		status,
		vo.TicketPriority(model.Priority),
		vo.ResponseAuthorType(model.LastResponseAuthorType),
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		millisPtrToTime(model.FirstResponseAt),
		millisPtrToTime(model.ResolvedAt),
		millisPtrToTime(model.ClosedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket (id=%d): %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ResponseToModel(r *ticket.Response) *models.ResponseModel {
	return &models.ResponseModel{
		ID:         r.ID(),
		TicketID:   r.TicketID(),
		AuthorID:   r.AuthorID(),
		AuthorType: r.AuthorType().String(),
		Content:    r.Content(),
		CreatedAt:  r.CreatedAt().UnixMilli(),
		UpdatedAt:  r.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ResponseToDomain(model *models.ResponseModel) (*ticket.Response, error) {
	r, err := ticket.ReconstructResponse(
		model.ID,
		model.TicketID,
		model.AuthorID,
		vo.ResponseAuthorType(model.AuthorType),
		model.Content,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct response (id=%d): %w", model.ID, err)
	}
	return r, nil
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:               a.ID(),
		TicketID:         a.TicketID(),
		ResponseID:       a.ResponseID(),
		UploadedByUserID: a.UploadedByUserID(),
		FileName:         a.FileName(),
		StoragePath:      a.StoragePath(),
		MimeType:         a.MimeType(),
		SizeBytes:        a.SizeBytes(),
		CreatedAt:        a.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	a, err := ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.ResponseID,
		model.UploadedByUserID,
		model.FileName,
		model.StoragePath,
		model.MimeType,
		model.SizeBytes,
		millisToTime(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct attachment (id=%d): %w", model.ID, err)
	}
	return a, nil
}
