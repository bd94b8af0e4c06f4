package venue

import (
	"time"

	"github.com/lib/pq"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// CanTransition reports whether the listing status may move from s to
// target. The only legal move is draft -> published; published listings
// stay published.
func (s Status) CanTransition(target Status) bool {
	return s == StatusDraft && target == StatusPublished
}

func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Venue is a bookable ground listing. Drafts are visible only to the
// owning host; published listings appear in browse and search.
type Venue struct {
	ID     string `db:"id" json:"id"`
	HostID string `db:"host_id" json:"host_id"`

	Name        string  `db:"name" json:"name"`
	Sport       string  `db:"sport" json:"sport"`
	SportEmoji  *string `db:"sport_emoji" json:"sport_emoji,omitempty"`
	VenueType   *string `db:"venue_type" json:"venue_type,omitempty"`
	SurfaceType *string `db:"surface_type" json:"surface_type,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`
	Capacity    *int    `db:"capacity" json:"capacity,omitempty"`

	Address         *string  `db:"address" json:"address,omitempty"`
	City            *string  `db:"city" json:"city,omitempty"`
	PostalCode      *string  `db:"postal_code" json:"postal_code,omitempty"`
	Location        string   `db:"location" json:"location"`
	Latitude        *float64 `db:"latitude" json:"latitude,omitempty"`
	Longitude       *float64 `db:"longitude" json:"longitude,omitempty"`
	DirectionsNotes *string  `db:"directions_notes" json:"directions_notes,omitempty"`

	LightingAvailable     bool           `db:"lighting_available" json:"lighting_available"`
	ParkingAvailable      bool           `db:"parking_available" json:"parking_available"`
	ChangingRooms         bool           `db:"changing_rooms" json:"changing_rooms"`
	EquipmentProvided     pq.StringArray `db:"equipment_provided" json:"equipment_provided"`
	ExtraServices         pq.StringArray `db:"extra_services" json:"extra_services"`
	SafetyMeasures        pq.StringArray `db:"safety_measures" json:"safety_measures"`
	Amenities             pq.StringArray `db:"amenities" json:"amenities"`
	AccessibilityFeatures pq.StringArray `db:"accessibility_features" json:"accessibility_features"`

	PricePerHour        float64  `db:"price_per_hour" json:"price_per_hour"`
	HourlyRate          *float64 `db:"hourly_rate" json:"hourly_rate,omitempty"`
	WeekendRate         *float64 `db:"weekend_rate" json:"weekend_rate,omitempty"`
	DiscountPercentage  int      `db:"discount_percentage" json:"discount_percentage"`
	DepositRequired     bool     `db:"deposit_required" json:"deposit_required"`
	DepositAmount       *float64 `db:"deposit_amount" json:"deposit_amount,omitempty"`
	CancellationPolicy  *string  `db:"cancellation_policy" json:"cancellation_policy,omitempty"`
	OperatingHoursStart *string  `db:"operating_hours_start" json:"operating_hours_start,omitempty"`
	OperatingHoursEnd   *string  `db:"operating_hours_end" json:"operating_hours_end,omitempty"`

	CoverPhoto *string        `db:"cover_photo" json:"cover_photo,omitempty"`
	Images     pq.StringArray `db:"images" json:"images"`
	VideoURL   *string        `db:"video_url" json:"video_url,omitempty"`

	HouseRules      *string `db:"house_rules" json:"house_rules,omitempty"`
	AgeRestriction  *string `db:"age_restriction" json:"age_restriction,omitempty"`
	WeatherPolicy   *string `db:"weather_policy" json:"weather_policy,omitempty"`
	AdditionalNotes *string `db:"additional_notes" json:"additional_notes,omitempty"`

	UnavailableDates pq.StringArray `db:"unavailable_dates" json:"unavailable_dates"`

	Rating       float64 `db:"rating" json:"rating"`
	TotalReviews int     `db:"total_reviews" json:"total_reviews"`

	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DraftRequest carries the listing wizard's accumulated form state. Every
// field is optional; bounds are checked only on what is provided.
type DraftRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Sport       *string `json:"sport,omitempty" binding:"omitempty,max=50"`
	SportEmoji  *string `json:"sport_emoji,omitempty" binding:"omitempty,max=10"`
	VenueType   *string `json:"venue_type,omitempty" binding:"omitempty,max=50"`
	SurfaceType *string `json:"surface_type,omitempty" binding:"omitempty,max=50"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=5000"`
	Capacity    *int    `json:"capacity,omitempty" binding:"omitempty,gt=0,lte=10000"`

	Address         *string  `json:"address,omitempty" binding:"omitempty,max=500"`
	City            *string  `json:"city,omitempty" binding:"omitempty,max=100"`
	PostalCode      *string  `json:"postal_code,omitempty" binding:"omitempty,max=20"`
	Location        *string  `json:"location,omitempty" binding:"omitempty,max=200"`
	Latitude        *float64 `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Longitude       *float64 `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
	DirectionsNotes *string  `json:"directions_notes,omitempty" binding:"omitempty,max=1000"`

	LightingAvailable     *bool    `json:"lighting_available,omitempty"`
	ParkingAvailable      *bool    `json:"parking_available,omitempty"`
	ChangingRooms         *bool    `json:"changing_rooms,omitempty"`
	EquipmentProvided     []string `json:"equipment_provided,omitempty" binding:"omitempty,dive,max=100"`
	ExtraServices         []string `json:"extra_services,omitempty" binding:"omitempty,dive,max=100"`
	SafetyMeasures        []string `json:"safety_measures,omitempty" binding:"omitempty,dive,max=100"`
	Amenities             []string `json:"amenities,omitempty" binding:"omitempty,dive,max=100"`
	AccessibilityFeatures []string `json:"accessibility_features,omitempty" binding:"omitempty,dive,max=100"`

	HourlyRate          *float64 `json:"hourly_rate,omitempty" binding:"omitempty,gt=0,lte=100000"`
	WeekendRate         *float64 `json:"weekend_rate,omitempty" binding:"omitempty,gt=0,lte=100000"`
	DiscountPercentage  *int     `json:"discount_percentage,omitempty" binding:"omitempty,gte=0,lte=100"`
	DepositRequired     *bool    `json:"deposit_required,omitempty"`
	DepositAmount       *float64 `json:"deposit_amount,omitempty" binding:"omitempty,gte=0,lte=100000"`
	CancellationPolicy  *string  `json:"cancellation_policy,omitempty" binding:"omitempty,max=50"`
	OperatingHoursStart *string  `json:"operating_hours_start,omitempty"`
	OperatingHoursEnd   *string  `json:"operating_hours_end,omitempty"`

	CoverPhoto *string  `json:"cover_photo,omitempty" binding:"omitempty,url"`
	Images     []string `json:"images,omitempty" binding:"omitempty,dive,url"`
	VideoURL   *string  `json:"video_url,omitempty" binding:"omitempty,url"`

	HouseRules      *string `json:"house_rules,omitempty" binding:"omitempty,max=2000"`
	AgeRestriction  *string `json:"age_restriction,omitempty" binding:"omitempty,max=50"`
	WeatherPolicy   *string `json:"weather_policy,omitempty" binding:"omitempty,max=50"`
	AdditionalNotes *string `json:"additional_notes,omitempty" binding:"omitempty,max=2000"`

	UnavailableDates []string `json:"unavailable_dates,omitempty"`
}

// apply copies the provided wizard fields onto v, leaving absent fields
// untouched. Saves are last-write-wins; concurrent edits are not
// coordinated.
func (req *DraftRequest) apply(v *Venue) {
	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Sport != nil {
		v.Sport = *req.Sport
	}
	if req.SportEmoji != nil {
		v.SportEmoji = req.SportEmoji
	}
	if req.VenueType != nil {
		v.VenueType = req.VenueType
	}
	if req.SurfaceType != nil {
		v.SurfaceType = req.SurfaceType
	}
	if req.Description != nil {
		v.Description = req.Description
	}
	if req.Capacity != nil {
		v.Capacity = req.Capacity
	}
	if req.Address != nil {
		v.Address = req.Address
	}
	if req.City != nil {
		v.City = req.City
	}
	if req.PostalCode != nil {
		v.PostalCode = req.PostalCode
	}
	if req.Location != nil {
		v.Location = *req.Location
	}
	if req.Latitude != nil {
		v.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		v.Longitude = req.Longitude
	}
	if req.DirectionsNotes != nil {
		v.DirectionsNotes = req.DirectionsNotes
	}
	if req.LightingAvailable != nil {
		v.LightingAvailable = *req.LightingAvailable
	}
	if req.ParkingAvailable != nil {
		v.ParkingAvailable = *req.ParkingAvailable
	}
	if req.ChangingRooms != nil {
		v.ChangingRooms = *req.ChangingRooms
	}
	if req.EquipmentProvided != nil {
		v.EquipmentProvided = req.EquipmentProvided
	}
	if req.ExtraServices != nil {
		v.ExtraServices = req.ExtraServices
	}
	if req.SafetyMeasures != nil {
		v.SafetyMeasures = req.SafetyMeasures
	}
	if req.Amenities != nil {
		v.Amenities = req.Amenities
	}
	if req.AccessibilityFeatures != nil {
		v.AccessibilityFeatures = req.AccessibilityFeatures
	}
	if req.HourlyRate != nil {
		v.HourlyRate = req.HourlyRate
	}
	if req.WeekendRate != nil {
		v.WeekendRate = req.WeekendRate
	}
	if req.DiscountPercentage != nil {
		v.DiscountPercentage = *req.DiscountPercentage
	}
	if req.DepositRequired != nil {
		v.DepositRequired = *req.DepositRequired
	}
	if req.DepositAmount != nil {
		v.DepositAmount = req.DepositAmount
	}
	if req.CancellationPolicy != nil {
		v.CancellationPolicy = req.CancellationPolicy
	}
	if req.OperatingHoursStart != nil {
		v.OperatingHoursStart = req.OperatingHoursStart
	}
	if req.OperatingHoursEnd != nil {
		v.OperatingHoursEnd = req.OperatingHoursEnd
	}
	if req.CoverPhoto != nil {
		v.CoverPhoto = req.CoverPhoto
	}
	if req.Images != nil {
		v.Images = req.Images
	}
	if req.VideoURL != nil {
		v.VideoURL = req.VideoURL
	}
	if req.HouseRules != nil {
		v.HouseRules = req.HouseRules
	}
	if req.AgeRestriction != nil {
		v.AgeRestriction = req.AgeRestriction
	}
	if req.WeatherPolicy != nil {
		v.WeatherPolicy = req.WeatherPolicy
	}
	if req.AdditionalNotes != nil {
		v.AdditionalNotes = req.AdditionalNotes
	}
	if req.UnavailableDates != nil {
		v.UnavailableDates = req.UnavailableDates
	}
}
