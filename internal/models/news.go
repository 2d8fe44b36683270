package models

import "time"

// News mirrors the news table: editorial copy, artwork URLs, scheduling
// flags, and SEO fields.
type News struct {
	ID               int64      `json:"news_id"`
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
	CreatedAt        time.Time  `json:"created_at"`
}
