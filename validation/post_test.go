package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-cms/models"
	"editorial-cms/richtext"
	"editorial-cms/validation"
)

func validPost() models.Post {
	return models.Post{
		Title:    "Dez caracteres",
		Content:  richtext.FromNode(richtext.Text("Corpo do texto")),
		Category: "tecnologia",
	}
}

func TestValidatePostOK(t *testing.T) {
	assert.NoError(t, validation.ValidatePost(validPost()))

	p := validPost()
	p.Slug = "dez-caracteres"
	p.Excerpt = strings.Repeat("a", 50)
	p.Status = models.StatusPublished
	assert.NoError(t, validation.ValidatePost(p))
}

func TestValidatePostShortTitle(t *testing.T) {
	p := validPost()
	p.Title = "A"

	err := validation.ValidatePost(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrInvalid))

	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"title must be at least 10 characters"}, verr.Messages())
}

func TestValidatePostAggregatesAllFailures(t *testing.T) {
	p := models.Post{
		Title:   strings.Repeat("t", 101),
		Slug:    "Not A Slug",
		Excerpt: "curto",
		Status:  "pending",
	}

	err := validation.ValidatePost(p)
	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr))

	assert.ElementsMatch(t, []string{
		"title must be at most 100 characters",
		"slug must contain only lowercase letters, numbers and single hyphens",
		"content is required",
		"category is required",
		"excerpt must be at least 50 characters",
		"status must be one of: draft, published, archived",
	}, verr.Messages())
}

func TestValidatePostCountsRunes(t *testing.T) {
	p := validPost()
	p.Title = "ãããããããããã" // 10 runes, 20 bytes
	assert.NoError(t, validation.ValidatePost(p))

	p.Title = strings.Repeat("é", 100)
	assert.NoError(t, validation.ValidatePost(p))
}

func TestValidationErrorAddDeduplicates(t *testing.T) {
	v := &validation.ValidationError{}
	assert.NoError(t, v.Err())
	v.Add("title", "title is required")
	v.Add("title", "title is required")
	v.Merge(validation.New("title", "title is required"))
	assert.Len(t, v.Items, 1)
	assert.EqualError(t, v.Err(), "validation failed: title is required")
}
