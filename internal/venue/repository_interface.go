package venue

import "context"

type Repository interface {
	Insert(ctx context.Context, v *Venue) (*Venue, error)
	Update(ctx context.Context, v *Venue) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	ListPublished(ctx context.Context, sport, city string) ([]Venue, error)
	ListByHost(ctx context.Context, hostID string) ([]Venue, error)
}
