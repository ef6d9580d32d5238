package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/mappers"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
	"github.com/resolvia-inc/resolvia/internal/shared/db"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

type ResponseRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ResponseRepository) Save(ctx context.Context, response *ticket.Response) error {
	model := r.mapper.ResponseToModel(response)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}

	return response.SetID(model.ID)
}

func (r *ResponseRepository) Update(ctx context.Context, response *ticket.Response) error {
	model := r.mapper.ResponseToModel(response)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ResponseModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"content":    model.Content,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update response: %w", result.Error)
	}
	return nil
}

func (r *ResponseRepository) Delete(ctx context.Context, responseID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ResponseModel{}, responseID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete response: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("response not found")
	}
	return nil
}

func (r *ResponseRepository) GetByID(ctx context.Context, responseID uint) (*ticket.Response, error) {
	var model models.ResponseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, responseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("response not found")
		}
		return nil, fmt.Errorf("failed to find response: %w", err)
	}

	return r.mapper.ResponseToDomain(&model)
}

func (r *ResponseRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Response, error) {
	var responseModels []models.ResponseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&responseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	responses := make([]*ticket.Response, len(responseModels))
	for i := range responseModels {
		response, err := r.mapper.ResponseToDomain(&responseModels[i])
		if err != nil {
			return nil, err
		}
		responses[i] = response
	}

	return responses, nil
}

func (r *ResponseRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.ResponseModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket responses: %w", err)
	}
	return nil
}
