package models

import "github.com/blockpress/core/internal/modules/content/block"

// PostModel is an authored post: metadata plus its ordered block sequence.
// The sequence is stored whole as a JSON column; block mutations rewrite the
// column, the array order in it is the single source of truth for display
// order.
type PostModel struct {
	Base
	Slug        string     `json:"slug"         gorm:"uniqueIndex;not null"`
	Title       string     `json:"title"        gorm:"not null"`
	Summary     string     `json:"summary"`
	CoverImage  string     `json:"cover_image"`
	IsPublished bool       `json:"is_published" gorm:"default:false;index"`
	Blocks      block.List `json:"blocks"       gorm:"type:longtext;serializer:json"`
}

func (PostModel) TableName() string { return "posts" }
