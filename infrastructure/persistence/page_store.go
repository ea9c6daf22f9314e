package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jordienr/docsite/domain/page"
	"github.com/jordienr/docsite/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageStore persists page meta records.
type PageStore struct {
	db     database.Database
	mapper pageMetaMapper
}

// NewPageStore creates a new PageStore.
func NewPageStore(db database.Database) PageStore {
	return PageStore{db: db}
}

// Upsert inserts or updates the meta record for its slug.
func (s PageStore) Upsert(ctx context.Context, meta page.Meta) (page.Meta, error) {
	model := s.mapper.ToModel(meta)

	result := s.db.Session(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"doc_id", "title", "subtitle", "description",
			"sidebar_label", "breadcrumb", "hide_toc", "updated_at",
		}),
	}).Create(&model)
	if result.Error != nil {
		return page.Meta{}, fmt.Errorf("upsert page meta: %w", result.Error)
	}

	return s.Get(ctx, meta.Slug())
}

// Get retrieves the meta record for a slug.
func (s PageStore) Get(ctx context.Context, slug string) (page.Meta, error) {
	var model PageMetaModel
	result := s.db.Session(ctx).Where("slug = ?", slug).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return page.Meta{}, fmt.Errorf("%w: page %q", database.ErrNotFound, slug)
		}
		return page.Meta{}, fmt.Errorf("get page meta: %w", result.Error)
	}
	return s.mapper.ToDomain(model), nil
}

// List retrieves every meta record ordered by slug.
func (s PageStore) List(ctx context.Context) ([]page.Meta, error) {
	var models []PageMetaModel
	result := s.db.Session(ctx).Order("slug ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("list page meta: %w", result.Error)
	}

	metas := make([]page.Meta, len(models))
	for i, m := range models {
		metas[i] = s.mapper.ToDomain(m)
	}
	return metas, nil
}

// Delete removes the meta record for a slug.
func (s PageStore) Delete(ctx context.Context, slug string) error {
	result := s.db.Session(ctx).Where("slug = ?", slug).Delete(&PageMetaModel{})
	if result.Error != nil {
		return fmt.Errorf("delete page meta: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: page %q", database.ErrNotFound, slug)
	}
	return nil
}

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(&PageMetaModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
