package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateNewsRequest struct {
	Title            string     `json:"title"`
	Subtitle         string     `json:"subtitle"`
	ShortDescription string     `json:"short_description"`
	LongDescription  string     `json:"long_description"`
	HeaderImg        string     `json:"header_img"`
	ThumbnailImg     string     `json:"thumbnail_img"`
	ScheduledDate    *time.Time `json:"scheduled_date"`
	IsLive           bool       `json:"is_live"`
	IsScheduled      bool       `json:"is_scheduled"`
	IsTrashed        bool       `json:"is_trashed"`
	Slug             string     `json:"slug"`
	Keywords         string     `json:"keywords"`
	Tags             string     `json:"tags"`
	CreatedBy        string     `json:"created_by"`
	CategoryUID      string     `json:"category_uid"`
}

// Validate runs validation rules.
func (r CreateNewsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Slug, validation.Required, validation.Length(1, 300)),
	)
}
