package article

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/resolvia-inc/resolvia/internal/domain/article/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

const (
	maxTitleLength   = 200
	maxExcerptLength = 500
	excerptAutoChars = 150
)

// Article is a help center entry. Publication state and the view counter
// only move through its methods; creation is always a draft no matter what
// the caller supplied.
type Article struct {
	id          uint
	companyID   uint
	authorID    uint
	categoryID  uint
	title       string
	excerpt     string
	content     string
	status      valueobjects.ArticleStatus
	viewsCount  uint
	publishedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// GenerateExcerpt derives a short summary from the content when the author
// did not provide one.
func GenerateExcerpt(content string) string {
	trimmed := strings.TrimSpace(content)
	if utf8.RuneCountInString(trimmed) <= excerptAutoChars {
		return trimmed
	}
	runes := []rune(trimmed)
	return strings.TrimSpace(string(runes[:excerptAutoChars])) + "..."
}

func NewArticle(
	companyID uint,
	authorID uint,
	categoryID uint,
	title string,
	excerpt string,
	content string,
) (*Article, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(excerpt) > maxExcerptLength {
		return nil, fmt.Errorf("excerpt exceeds maximum length of %d characters", maxExcerptLength)
	}
	if len(excerpt) == 0 {
		excerpt = GenerateExcerpt(content)
	}

	now := biztime.NowUTC()
	return &Article{
		companyID:  companyID,
		authorID:   authorID,
		categoryID: categoryID,
		title:      title,
		excerpt:    excerpt,
		content:    content,
		status:     valueobjects.StatusDraft,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructArticle(
	id uint,
	companyID uint,
	authorID uint,
	categoryID uint,
	title string,
	excerpt string,
	content string,
	status valueobjects.ArticleStatus,
	viewsCount uint,
	publishedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if status.IsPublished() && publishedAt == nil {
		return nil, fmt.Errorf("published article is missing published_at")
	}
	if status.IsDraft() && publishedAt != nil {
		return nil, fmt.Errorf("draft article must not carry published_at")
	}

	return &Article{
		id:          id,
		companyID:   companyID,
		authorID:    authorID,
		categoryID:  categoryID,
		title:       title,
		excerpt:     excerpt,
		content:     content,
		status:      status,
		viewsCount:  viewsCount,
		publishedAt: publishedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (a *Article) ID() uint {
	return a.id
}

func (a *Article) CompanyID() uint {
	return a.companyID
}

func (a *Article) AuthorID() uint {
	return a.authorID
}

func (a *Article) CategoryID() uint {
	return a.categoryID
}

func (a *Article) Title() string {
	return a.title
}

func (a *Article) Excerpt() string {
	return a.excerpt
}

func (a *Article) Content() string {
	return a.content
}

func (a *Article) Status() valueobjects.ArticleStatus {
	return a.status
}

func (a *Article) ViewsCount() uint {
	return a.viewsCount
}

func (a *Article) PublishedAt() *time.Time {
	return a.publishedAt
}

func (a *Article) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Article) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

// Publish moves a draft live and stamps published_at.
func (a *Article) Publish() error {
	if a.status.IsPublished() {
		return errors.NewArticleAlreadyPublishedError()
	}

	now := biztime.NowUTC()
	a.status = valueobjects.StatusPublished
	a.publishedAt = &now
	a.updatedAt = now
	return nil
}

// Unpublish takes a published article back to draft. The view counter is
// preserved so republishing does not reset readership history.
func (a *Article) Unpublish() error {
	if !a.status.IsPublished() {
		return errors.NewArticleNotPublishedError()
	}

	a.status = valueobjects.StatusDraft
	a.publishedAt = nil
	a.updatedAt = biztime.NowUTC()
	return nil
}

// RecordView bumps the counter only while published. Draft reads by staff
// never count.
func (a *Article) RecordView() {
	if a.status.IsPublished() {
		a.viewsCount++
	}
}

// Update rewrites the editable fields. Status, views_count and published_at
// never move through an update; the excerpt is regenerated when cleared.
func (a *Article) Update(categoryID uint, title, excerpt, content string) error {
	if categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(content) == 0 {
		return fmt.Errorf("content is required")
	}
	if len(excerpt) > maxExcerptLength {
		return fmt.Errorf("excerpt exceeds maximum length of %d characters", maxExcerptLength)
	}
	if len(excerpt) == 0 {
		excerpt = GenerateExcerpt(content)
	}

	a.categoryID = categoryID
	a.title = title
	a.excerpt = excerpt
	a.content = content
	a.updatedAt = biztime.NowUTC()
	return nil
}

// CanBeDeleted enforces the hard rule that published articles must be
// unpublished before removal.
func (a *Article) CanBeDeleted() error {
	if a.status.IsPublished() {
		return errors.NewCannotDeletePublishedArticleError()
	}
	return nil
}
