package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
)

var _ repositories.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork runs repository calls inside one GORM transaction
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do commits when fn returns nil and rolls back otherwise
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, tx repositories.TxRepositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, repositories.TxRepositories{
			Contacts: NewContactRepository(tx),
			Flows:    NewMeetingFlowRepository(tx),
			Meetings: NewMeetingRepository(tx),
		})
	})
}
