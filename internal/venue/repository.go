package venue

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrVenueNotFound = errors.New("venue not found")

const venueColumns = `
	id, host_id, name, sport, sport_emoji, venue_type, surface_type,
	description, capacity, address, city, postal_code, location, latitude,
	longitude, directions_notes, lighting_available, parking_available,
	changing_rooms, equipment_provided, extra_services, safety_measures,
	amenities, accessibility_features, price_per_hour, hourly_rate,
	weekend_rate, discount_percentage, deposit_required, deposit_amount,
	cancellation_policy, operating_hours_start, operating_hours_end,
	cover_photo, images, video_url, house_rules, age_restriction,
	weather_policy, additional_notes, unavailable_dates, rating,
	total_reviews, status, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, v *Venue) (*Venue, error) {
	query := `
		INSERT INTO venues (
			host_id, name, sport, sport_emoji, venue_type, surface_type,
			description, capacity, address, city, postal_code, location,
			latitude, longitude, directions_notes, lighting_available,
			parking_available, changing_rooms, equipment_provided,
			extra_services, safety_measures, amenities,
			accessibility_features, price_per_hour, hourly_rate,
			weekend_rate, discount_percentage, deposit_required,
			deposit_amount, cancellation_policy, operating_hours_start,
			operating_hours_end, cover_photo, images, video_url,
			house_rules, age_restriction, weather_policy, additional_notes,
			unavailable_dates, status
		) VALUES (
			:host_id, :name, :sport, :sport_emoji, :venue_type,
			:surface_type, :description, :capacity, :address, :city,
			:postal_code, :location, :latitude, :longitude,
			:directions_notes, :lighting_available, :parking_available,
			:changing_rooms, :equipment_provided, :extra_services,
			:safety_measures, :amenities, :accessibility_features,
			:price_per_hour, :hourly_rate, :weekend_rate,
			:discount_percentage, :deposit_required, :deposit_amount,
			:cancellation_policy, :operating_hours_start,
			:operating_hours_end, :cover_photo, :images, :video_url,
			:house_rules, :age_restriction, :weather_policy,
			:additional_notes, :unavailable_dates, :status
		)
		RETURNING ` + venueColumns

	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, v)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, sql.ErrNoRows
	}

	var saved Venue
	if err := rows.StructScan(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update rewrites the whole listing row. Ownership is enforced in the
// WHERE clause so a host can never overwrite another host's venue.
func (r *repository) Update(ctx context.Context, v *Venue) (*Venue, error) {
	query := `
		UPDATE venues SET
			name = :name, sport = :sport, sport_emoji = :sport_emoji,
			venue_type = :venue_type, surface_type = :surface_type,
			description = :description, capacity = :capacity,
			address = :address, city = :city, postal_code = :postal_code,
			location = :location, latitude = :latitude,
			longitude = :longitude, directions_notes = :directions_notes,
			lighting_available = :lighting_available,
			parking_available = :parking_available,
			changing_rooms = :changing_rooms,
			equipment_provided = :equipment_provided,
			extra_services = :extra_services,
			safety_measures = :safety_measures, amenities = :amenities,
			accessibility_features = :accessibility_features,
			price_per_hour = :price_per_hour, hourly_rate = :hourly_rate,
			weekend_rate = :weekend_rate,
			discount_percentage = :discount_percentage,
			deposit_required = :deposit_required,
			deposit_amount = :deposit_amount,
			cancellation_policy = :cancellation_policy,
			operating_hours_start = :operating_hours_start,
			operating_hours_end = :operating_hours_end,
			cover_photo = :cover_photo, images = :images,
			video_url = :video_url, house_rules = :house_rules,
			age_restriction = :age_restriction,
			weather_policy = :weather_policy,
			additional_notes = :additional_notes,
			unavailable_dates = :unavailable_dates, status = :status,
			updated_at = NOW()
		WHERE id = :id AND host_id = :host_id
		RETURNING ` + venueColumns

	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, v)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrVenueNotFound
	}

	var saved Venue
	if err := rows.StructScan(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Venue, error) {
	query := `SELECT` + venueColumns + ` FROM venues WHERE id = $1`

	var v Venue
	err := r.db.GetContext(ctx, &v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// ListPublished returns only published listings; drafts never appear in
// browse or search.
func (r *repository) ListPublished(ctx context.Context, sport, city string) ([]Venue, error) {
	query := `SELECT` + venueColumns + ` FROM venues WHERE status = 'published'`
	args := []interface{}{}

	if sport != "" {
		args = append(args, sport)
		query += ` AND sport = $1`
	}
	if city != "" {
		args = append(args, city)
		if len(args) == 1 {
			query += ` AND city = $1`
		} else {
			query += ` AND city = $2`
		}
	}

	query += ` ORDER BY created_at DESC`

	var venues []Venue
	err := r.db.SelectContext(ctx, &venues, query, args...)
	if err != nil {
		return nil, err
	}

	return venues, nil
}

func (r *repository) ListByHost(ctx context.Context, hostID string) ([]Venue, error) {
	query := `SELECT` + venueColumns + ` FROM venues WHERE host_id = $1 ORDER BY updated_at DESC`

	var venues []Venue
	err := r.db.SelectContext(ctx, &venues, query, hostID)
	if err != nil {
		return nil, err
	}

	return venues, nil
}
