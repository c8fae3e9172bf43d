// Package validation holds the declarative field rules for posts.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"editorial-cms/models"
	"editorial-cms/richtext"
)

const (
	TitleMinLength   = 10
	TitleMaxLength   = 100
	ExcerptMinLength = 50
	ExcerptMaxLength = 300
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// postFields is the subset of a post the rules look at, already trimmed.
type postFields struct {
	Title    string `json:"title" validate:"required,min=10,max=100"`
	Slug     string `json:"slug" validate:"omitempty,slug"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
	Excerpt  string `json:"excerpt" validate:"omitempty,min=50,max=300"`
	Status   string `json:"status" validate:"omitempty,oneof=draft published archived"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidSlug reports whether s is a well-formed slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ValidatePost checks title, slug, content, category, excerpt and status and
// returns a *ValidationError carrying every failure, or nil.
func ValidatePost(p models.Post) error {
	fields := postFields{
		Title:    strings.TrimSpace(p.Title),
		Slug:     strings.TrimSpace(p.Slug),
		Content:  strings.TrimSpace(richtext.ExtractPlainText(p.Content)),
		Category: strings.TrimSpace(p.Category),
		Excerpt:  strings.TrimSpace(p.Excerpt),
		Status:   string(p.Status),
	}

	err := validate.Struct(fields)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate post: %w", err)
	}

	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), message(fe))
	}
	return out.Err()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "slug":
		return "slug must contain only lowercase letters, numbers and single hyphens"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
