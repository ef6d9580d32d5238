package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
	"github.com/resolvia-inc/resolvia/internal/shared/db"
)

// TicketCodeGenerator hands out TKT-{year}-{seq} codes from a per-year
// sequence row. The row is locked for the duration of the enclosing
// transaction, so concurrent creates serialize and never share a number.
// A rolled-back create leaves a gap, which is acceptable.
type TicketCodeGenerator struct {
	db *gorm.DB
}

func NewTicketCodeGenerator(db *gorm.DB) *TicketCodeGenerator {
	return &TicketCodeGenerator{db: db}
}

func (g *TicketCodeGenerator) Generate(ctx context.Context) (string, error) {
	year := biztime.NowUTC().Year()
	tx := db.GetTxFromContext(ctx, g.db)

	var seq models.TicketSequenceModel
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("year = ?", year).
		First(&seq).Error
	if err == gorm.ErrRecordNotFound {
		seq = models.TicketSequenceModel{Year: year, LastValue: 0}
		if err := tx.Create(&seq).Error; err != nil {
			return "", fmt.Errorf("failed to create ticket sequence for %d: %w", year, err)
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to lock ticket sequence for %d: %w", year, err)
	}

	seq.LastValue++
	if err := tx.
		Model(&models.TicketSequenceModel{}).
		Where("year = ?", year).
		Update("last_value", seq.LastValue).Error; err != nil {
		return "", fmt.Errorf("failed to advance ticket sequence for %d: %w", year, err)
	}

	return ticket.FormatCode(year, seq.LastValue), nil
}
