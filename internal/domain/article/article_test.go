package article

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/resolvia-inc/resolvia/internal/domain/article/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

func draftArticle(t *testing.T) *Article {
	t.Helper()
	a, err := NewArticle(1, 10, 3, "How to reset your password", "", "Go to settings and click reset.")
	require.NoError(t, err)
	require.NoError(t, a.SetID(1))
	return a
}

func publishedArticle(t *testing.T, views uint) *Article {
	t.Helper()
	now := time.Now().UTC()
	a, err := ReconstructArticle(2, 1, 10, 3, "Known issues", "excerpt", "content", vo.StatusPublished, views, &now, now, now)
	require.NoError(t, err)
	return a
}

func TestNewArticle_AlwaysDraft(t *testing.T) {
	a := draftArticle(t)
	assert.Equal(t, vo.StatusDraft, a.Status())
	assert.Nil(t, a.PublishedAt())
	assert.Equal(t, uint(0), a.ViewsCount())
}

func TestNewArticle_ExcerptAutoGeneration(t *testing.T) {
	t.Run("short content copied verbatim", func(t *testing.T) {
		a, err := NewArticle(1, 10, 3, "Title", "", "Short body.")
		require.NoError(t, err)
		assert.Equal(t, "Short body.", a.Excerpt())
	})

	t.Run("long content truncated with ellipsis", func(t *testing.T) {
		long := strings.Repeat("palabra ", 40)
		a, err := NewArticle(1, 10, 3, "Title", "", long)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(a.Excerpt(), "..."))
		assert.LessOrEqual(t, len([]rune(a.Excerpt())), 153)
	})

	t.Run("explicit excerpt preserved", func(t *testing.T) {
		a, err := NewArticle(1, 10, 3, "Title", "my summary", strings.Repeat("x", 1000))
		require.NoError(t, err)
		assert.Equal(t, "my summary", a.Excerpt())
	})
}

func TestArticle_Publish(t *testing.T) {
	t.Run("draft publishes", func(t *testing.T) {
		a := draftArticle(t)
		require.NoError(t, a.Publish())
		assert.Equal(t, vo.StatusPublished, a.Status())
		assert.NotNil(t, a.PublishedAt())
	})

	t.Run("already published rejected", func(t *testing.T) {
		a := publishedArticle(t, 0)
		err := a.Publish()
		require.Error(t, err)
		assert.True(t, errors.IsDomainError(err, errors.CodeArticleAlreadyPublished))
		assert.Equal(t, "El artículo ya está publicado", errors.GetDomainError(err).Message)
	})
}

func TestArticle_Unpublish(t *testing.T) {
	t.Run("published unpublishes preserving views", func(t *testing.T) {
		a := publishedArticle(t, 7)
		require.NoError(t, a.Unpublish())
		assert.Equal(t, vo.StatusDraft, a.Status())
		assert.Nil(t, a.PublishedAt())
		assert.Equal(t, uint(7), a.ViewsCount())
	})

	t.Run("draft rejected", func(t *testing.T) {
		a := draftArticle(t)
		err := a.Unpublish()
		require.Error(t, err)
		assert.True(t, errors.IsDomainError(err, errors.CodeArticleNotPublished))
		assert.Equal(t, "El artículo no está publicado", errors.GetDomainError(err).Message)
	})
}

func TestArticle_RecordView(t *testing.T) {
	published := publishedArticle(t, 3)
	published.RecordView()
	assert.Equal(t, uint(4), published.ViewsCount())

	draft := draftArticle(t)
	draft.RecordView()
	assert.Equal(t, uint(0), draft.ViewsCount())
}

func TestArticle_CanBeDeleted(t *testing.T) {
	assert.NoError(t, draftArticle(t).CanBeDeleted())

	err := publishedArticle(t, 0).CanBeDeleted()
	require.Error(t, err)
	assert.True(t, errors.IsDomainError(err, errors.CodeCannotDeletePublishedArticle))
	assert.Equal(t, "No se puede eliminar un artículo publicado", errors.GetDomainError(err).Message)
}

func TestArticle_Update(t *testing.T) {
	a := publishedArticle(t, 9)
	require.NoError(t, a.Update(5, "New title", "", "New content"))

	assert.Equal(t, uint(5), a.CategoryID())
	assert.Equal(t, "New title", a.Title())
	assert.Equal(t, "New content", a.Content())
	assert.Equal(t, "New content", a.Excerpt())
	// publication state and readership are untouched by edits
	assert.Equal(t, vo.StatusPublished, a.Status())
	assert.NotNil(t, a.PublishedAt())
	assert.Equal(t, uint(9), a.ViewsCount())
}

func TestReconstructArticle_InvariantChecks(t *testing.T) {
	now := time.Now().UTC()

	_, err := ReconstructArticle(1, 1, 10, 3, "t", "e", "c", vo.StatusPublished, 0, nil, now, now)
	assert.Error(t, err)

	_, err = ReconstructArticle(1, 1, 10, 3, "t", "e", "c", vo.StatusDraft, 0, &now, now, now)
	assert.Error(t, err)
}
