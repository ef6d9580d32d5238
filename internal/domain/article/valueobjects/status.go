package valueobjects

import "fmt"

// ArticleStatus is the publication state of a help center article. Statuses
// transit the wire as uppercase strings.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "DRAFT"
	StatusPublished ArticleStatus = "PUBLISHED"
)

func (as ArticleStatus) String() string {
	return string(as)
}

func (as ArticleStatus) IsValid() bool {
	return as == StatusDraft || as == StatusPublished
}

func (as ArticleStatus) IsDraft() bool {
	return as == StatusDraft
}

func (as ArticleStatus) IsPublished() bool {
	return as == StatusPublished
}

func NewArticleStatus(s string) (ArticleStatus, error) {
	as := ArticleStatus(s)
	if !as.IsValid() {
		return "", fmt.Errorf("invalid article status: %s", s)
	}
	return as, nil
}
