package repositories

import "context"

// TxRepositories are the repositories bound to one transaction
type TxRepositories struct {
	Contacts ContactRepository
	Flows    MeetingFlowRepository
	Meetings MeetingRepository
}

// UnitOfWork runs fn inside a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, tx TxRepositories) error) error
}
