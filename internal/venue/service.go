package venue

import (
	"context"
	"errors"

	"github.com/Ved-B18/ground-finder-pro/internal/metrics"
)

var (
	ErrNotOwner              = errors.New("venue belongs to another host")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrNotPublished          = errors.New("venue is not published")
	ErrInvalidTransition     = errors.New("invalid status transition")
)

type Service interface {
	SaveDraft(ctx context.Context, hostID string, draftID string, req *DraftRequest) (*Venue, error)
	Publish(ctx context.Context, hostID string, draftID string, req *DraftRequest) (*Venue, error)
	Get(ctx context.Context, id, requesterID string) (*Venue, error)
	Browse(ctx context.Context, sport, city string) ([]Venue, error)
	ListMine(ctx context.Context, hostID string) ([]Venue, error)
}

type service struct {
	repo  Repository
	cache *Cache
}

func NewService(repo Repository, cache *Cache) Service {
	return &service{repo: repo, cache: cache}
}

// SaveDraft creates or updates a draft listing. With an empty draftID a new
// draft row is created; otherwise the accumulated wizard state is applied
// to the existing draft. Autosave and manual save both land here.
func (s *service) SaveDraft(ctx context.Context, hostID string, draftID string, req *DraftRequest) (*Venue, error) {
	if draftID == "" {
		v := &Venue{HostID: hostID, Status: StatusDraft}
		req.apply(v)
		if v.HourlyRate != nil {
			v.PricePerHour = *v.HourlyRate
		}
		return s.repo.Insert(ctx, v)
	}

	existing, err := s.repo.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if existing.HostID != hostID {
		return nil, ErrNotOwner
	}

	req.apply(existing)
	if existing.HourlyRate != nil {
		existing.PricePerHour = *existing.HourlyRate
	}
	return s.repo.Update(ctx, existing)
}

// Publish re-validates the minimal required subset (name, sport,
// hourly_rate) against the merged draft and flips the listing to
// published. A missing field aborts with no status change.
func (s *service) Publish(ctx context.Context, hostID string, draftID string, req *DraftRequest) (*Venue, error) {
	var v *Venue
	if draftID == "" {
		v = &Venue{HostID: hostID, Status: StatusDraft}
	} else {
		existing, err := s.repo.GetByID(ctx, draftID)
		if err != nil {
			return nil, err
		}
		if existing.HostID != hostID {
			return nil, ErrNotOwner
		}
		v = existing
	}

	req.apply(v)

	if v.Name == "" || v.Sport == "" || v.HourlyRate == nil {
		return nil, ErrMissingRequiredFields
	}

	if !v.Status.CanTransition(StatusPublished) && v.Status != StatusPublished {
		return nil, ErrInvalidTransition
	}

	v.PricePerHour = *v.HourlyRate
	v.Status = StatusPublished

	var saved *Venue
	var err error
	if draftID == "" {
		saved, err = s.repo.Insert(ctx, v)
	} else {
		saved, err = s.repo.Update(ctx, v)
	}
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateBrowse(ctx)
	metrics.RecordVenuePublished()

	return saved, nil
}

// Get returns a published venue to anyone and a draft only to its owner.
func (s *service) Get(ctx context.Context, id, requesterID string) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v.Status != StatusPublished && v.HostID != requesterID {
		return nil, ErrVenueNotFound
	}

	return v, nil
}

func (s *service) Browse(ctx context.Context, sport, city string) ([]Venue, error) {
	unfiltered := sport == "" && city == ""

	if unfiltered {
		if cached, ok := s.cache.GetBrowse(ctx); ok {
			return cached, nil
		}
	}

	venues, err := s.repo.ListPublished(ctx, sport, city)
	if err != nil {
		return nil, err
	}

	if unfiltered {
		s.cache.SetBrowse(ctx, venues)
	}

	return venues, nil
}

func (s *service) ListMine(ctx context.Context, hostID string) ([]Venue, error) {
	return s.repo.ListByHost(ctx, hostID)
}
