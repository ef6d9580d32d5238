package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/article/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

// CreateArticleCommand carries the authoring payload. There is deliberately
// no status field: clients asking for an immediate publish still get a
// draft and must call publish separately.
type CreateArticleCommand struct {
	Principal  identity.Principal
	CompanyID  uint
	CategoryID uint
	Title      string
	Excerpt    string
	Content    string
}

type CreateArticleUseCase struct {
	articleRepo  article.ArticleRepository
	categoryRepo article.CategoryRepository
	logger       logger.Interface
}

func NewCreateArticleUseCase(
	articleRepo article.ArticleRepository,
	categoryRepo article.CategoryRepository,
	logger logger.Interface,
) *CreateArticleUseCase {
	return &CreateArticleUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateArticleUseCase) Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error) {
	uc.logger.Infow("executing create article use case", "company_id", cmd.CompanyID, "author_id", cmd.Principal.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create article command", "error", err)
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive() {
		return nil, errors.NewValidationError("category is inactive")
	}

	newArticle, err := article.NewArticle(
		cmd.CompanyID,
		cmd.Principal.ID,
		cmd.CategoryID,
		cmd.Title,
		cmd.Excerpt,
		cmd.Content,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.articleRepo.Save(ctx, newArticle); err != nil {
		uc.logger.Errorw("failed to save article", "error", err)
		return nil, err
	}

	uc.logger.Infow("article created", "article_id", newArticle.ID(), "status", newArticle.Status().String())
	result := dto.ToArticleDTO(newArticle, "")
	return &result, nil
}

func (uc *CreateArticleUseCase) validateCommand(cmd CreateArticleCommand) error {
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}
	if !cmd.Principal.IsPlatformAdmin() && !cmd.Principal.HasRoleInCompany(identity.RoleCompanyAdmin, cmd.CompanyID) {
		return errors.NewForbiddenError("only company admins can create articles")
	}
	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Content) == 0 {
		return errors.NewValidationError("content is required")
	}
	return nil
}
