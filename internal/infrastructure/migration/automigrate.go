package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

// AutoMigrateModels lists every persisted model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CompanyModel{},
		&models.RoleAssignmentModel{},
		&models.FollowModel{},
		&models.CategoryModel{},
		&models.AreaModel{},
		&models.TicketModel{},
		&models.ResponseModel{},
		&models.AttachmentModel{},
		&models.TicketSequenceModel{},
		&models.ArticleCategoryModel{},
		&models.ArticleModel{},
	}
}

// GormAutoMigrateStrategy lets GORM reconcile the schema from the models.
// Development only; versioned scripts own the schema everywhere else.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm automigrate", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("automigrate failed", "error", err)
		return fmt.Errorf("failed to automigrate schema: %w", err)
	}

	s.logger.Infow("automigrate completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}
