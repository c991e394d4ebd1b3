package gormrepo

import (
	"context"

	"merhaba-api/internal/domain/visit"

	"gorm.io/gorm"
)

// VisitJournal appends every served greeting to the greeting_visits table.
type VisitJournal struct{ db *gorm.DB }

func NewVisitJournal(db *gorm.DB) *VisitJournal { return &VisitJournal{db: db} }

func (r *VisitJournal) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&visit.Visit{})
}

func (r *VisitJournal) Record(ctx context.Context, v *visit.Visit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// Recent returns up to limit visits for route, newest first.
func (r *VisitJournal) Recent(ctx context.Context, route visit.Route, limit int) ([]visit.Visit, error) {
	var out []visit.Visit
	res := r.db.WithContext(ctx).
		Where("route = ?", route).
		Order("served_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *VisitJournal) Count(ctx context.Context, route visit.Route) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&visit.Visit{}).Where("route = ?", route).Count(&n)
	return n, res.Error
}
