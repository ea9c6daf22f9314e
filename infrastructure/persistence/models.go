// Package persistence provides database storage implementations.
package persistence

import "time"

// PageMetaModel is the database model for a documentation page's meta record.
type PageMetaModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Slug         string `gorm:"uniqueIndex;not null"`
	DocID        string
	Title        string `gorm:"not null"`
	Subtitle     string
	Description  string
	SidebarLabel string
	// Breadcrumb is the JSON-encoded trail, outermost first.
	Breadcrumb string
	HideToc    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName sets the table name for PageMetaModel.
func (PageMetaModel) TableName() string { return "page_meta" }
