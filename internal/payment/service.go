package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ved-B18/ground-finder-pro/internal/booking"
	"github.com/Ved-B18/ground-finder-pro/internal/email"
	"github.com/Ved-B18/ground-finder-pro/internal/logger"
	"github.com/Ved-B18/ground-finder-pro/internal/metrics"
	"github.com/Ved-B18/ground-finder-pro/internal/user"
)

var (
	ErrNotOwner           = errors.New("booking belongs to another user")
	ErrBookingNotPayable  = errors.New("booking cannot be paid")
	ErrAmountMismatch     = errors.New("amount does not match booking price")
	ErrNoCheckoutSession  = errors.New("no checkout session for this booking")
	ErrPaymentNotVerified = errors.New("payment has not been completed")
)

type Service interface {
	CreateCheckout(ctx context.Context, userID, userEmail string, req *CheckoutRequest) (string, error)
	ConfirmBooking(ctx context.Context, userID, bookingID string) (*booking.BookingWithVenue, *Payment, error)
}

type service struct {
	repo         Repository
	bookingRepo  booking.Repository
	userRepo     user.Repository
	provider     Provider
	emailService *email.Service
	successURL   string
	cancelURL    string
}

func NewService(
	repo Repository,
	bookingRepo booking.Repository,
	userRepo user.Repository,
	provider Provider,
	emailService *email.Service,
	successURL, cancelURL string,
) Service {
	return &service{
		repo:         repo,
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		provider:     provider,
		emailService: emailService,
		successURL:   successURL,
		cancelURL:    cancelURL,
	}
}

// CreateCheckout opens a hosted checkout session for a pending booking and
// returns the redirect URL. The session is priced from the booking row; a
// client amount that disagrees with it is rejected rather than trusted.
func (s *service) CreateCheckout(ctx context.Context, userID, userEmail string, req *CheckoutRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	b, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return "", err
	}
	if b.UserID != userID {
		return "", ErrNotOwner
	}
	if b.Status != booking.StatusPending {
		return "", ErrBookingNotPayable
	}
	if req.Amount != b.Price {
		return "", ErrAmountMismatch
	}

	sess, err := s.provider.CreateSession(ctx, CreateSessionParams{
		BookingID:     b.ID,
		UserID:        userID,
		CustomerEmail: userEmail,
		VenueName:     req.VenueName,
		BookingDate:   b.BookingDate,
		TimeSlot:      b.TimeSlot,
		Amount:        b.Price,
		SuccessURL:    fmt.Sprintf("%s?booking_id=%s", s.successURL, b.ID),
		CancelURL:     fmt.Sprintf("%s/%s", s.cancelURL, b.VenueID),
	})
	if err != nil {
		metrics.RecordCheckoutSession("failed")
		return "", err
	}

	if err := s.bookingRepo.SetSessionID(ctx, b.ID, sess.ID); err != nil {
		logger.Error("Failed to store session ID", "booking_id", b.ID, "error", err)
	}

	metrics.RecordCheckoutSession("created")
	logger.Info("Checkout session created", "booking_id", b.ID, "session_id", sess.ID)

	return sess.URL, nil
}

// ConfirmBooking is called when the player lands on the success page. The
// provider is asked whether the session was actually paid before the
// booking is confirmed and credits are granted; the confirmation, the
// payment row, and the credit grant commit together in RecordPayment.
// Revisiting the page for an already-confirmed booking returns the details
// and the stored receipt without side effects.
func (s *service) ConfirmBooking(ctx context.Context, userID, bookingID string) (*booking.BookingWithVenue, *Payment, error) {
	b, err := s.bookingRepo.GetWithVenue(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if b.UserID != userID {
		return nil, nil, ErrNotOwner
	}

	switch b.Status {
	case booking.StatusConfirmed:
		p, err := s.repo.GetByBookingID(ctx, bookingID)
		if err != nil && !errors.Is(err, ErrPaymentNotFound) {
			return nil, nil, err
		}
		return b, p, nil
	case booking.StatusCancelled:
		return nil, nil, ErrBookingNotPayable
	}

	if b.SessionID == nil {
		return nil, nil, ErrNoCheckoutSession
	}

	paid, err := s.provider.IsSessionPaid(ctx, *b.SessionID)
	if err != nil {
		return nil, nil, err
	}
	if !paid {
		return nil, nil, ErrPaymentNotVerified
	}

	credits := b.Price * CreditRate
	p, err := s.repo.RecordPayment(ctx, bookingID, userID, b.Price, credits)
	if errors.Is(err, booking.ErrInvalidTransition) {
		// Raced with another confirmation of the same booking; the other
		// one wrote the payment row, so just read the result back.
		b, err = s.bookingRepo.GetWithVenue(ctx, bookingID)
		if err != nil {
			return nil, nil, err
		}
		p, err = s.repo.GetByBookingID(ctx, bookingID)
		if err != nil && !errors.Is(err, ErrPaymentNotFound) {
			return nil, nil, err
		}
		return b, p, nil
	}
	if err != nil {
		logger.Error("Failed to record payment", "booking_id", bookingID, "error", err)
		return nil, nil, err
	}

	metrics.RecordPaymentProcessed()
	metrics.RecordBooking(string(booking.StatusConfirmed))
	logger.Info("Booking confirmed", "booking_id", bookingID, "amount", b.Price, "credits", credits)

	if s.emailService != nil {
		u, _ := s.userRepo.FindByID(ctx, userID)
		prof, _ := s.userRepo.GetProfile(ctx, userID)
		if u != nil && prof != nil {
			s.emailService.SendBookingConfirmation(
				ctx, u.Email, prof.FullName,
				b.VenueName, b.BookingDate, b.TimeSlot,
				b.Price, credits,
			)
		}
	}

	b.Status = booking.StatusConfirmed
	b.CreditsEarned = credits

	return b, p, nil
}
