package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ved-B18/ground-finder-pro/internal/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateCheckout(ctx context.Context, userID, userEmail string, req *CheckoutRequest) (string, error) {
	args := m.Called(ctx, userID, userEmail, req)
	return args.String(0), args.Error(1)
}

func (m *MockService) ConfirmBooking(ctx context.Context, userID, bookingID string) (*booking.BookingWithVenue, *Payment, error) {
	args := m.Called(ctx, userID, bookingID)
	var b *booking.BookingWithVenue
	var p *Payment
	if args.Get(0) != nil {
		b = args.Get(0).(*booking.BookingWithVenue)
	}
	if args.Get(1) != nil {
		p = args.Get(1).(*Payment)
	}
	return b, p, args.Error(2)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)

	authed := r.Group("/")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Set("user_email", "player@example.com")
		c.Next()
	})
	authed.POST("/checkout", h.CreateCheckout)
	authed.GET("/payment-success", h.PaymentSuccess)

	return r
}

func TestCreateCheckoutHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("CreateCheckout", mock.Anything, testUserID, "player@example.com", mock.Anything).
		Return("https://checkout.stripe.com/pay/cs_test", nil)

	body, _ := json.Marshal(validCheckoutRequest())
	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test", resp["url"])
}

func TestCreateCheckoutHandlerValidationError(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("CreateCheckout", mock.Anything, testUserID, "player@example.com", mock.Anything).
		Return("", ErrInvalidBookingID)

	payload := validCheckoutRequest()
	payload.BookingID = "not-a-uuid"
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request data", resp["error"])
}

func TestCreateCheckoutHandlerMissingBody(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateCheckout")
}

func TestPaymentSuccessHandler(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	confirmed := &booking.BookingWithVenue{
		Booking: booking.Booking{
			ID:     testBookingID,
			UserID: testUserID,
			Status: booking.StatusConfirmed,
		},
		VenueName: "Eastside Turf",
	}
	receipt := &Payment{ID: "p1", BookingID: testBookingID, Amount: 450, CreditsEarned: 22.5}
	svc.On("ConfirmBooking", mock.Anything, testUserID, testBookingID).Return(confirmed, receipt, nil)

	req := httptest.NewRequest(http.MethodGet, "/payment-success?booking_id="+testBookingID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payment successful")
	assert.Contains(t, w.Body.String(), "Eastside Turf")

	var resp ConfirmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Payment)
	assert.Equal(t, 22.5, resp.Payment.CreditsEarned)
}

func TestPaymentSuccessHandlerBadID(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/payment-success?booking_id=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ConfirmBooking")
}

func TestPaymentSuccessHandlerUnpaid(t *testing.T) {
	svc := new(MockService)
	router := setupRouter(svc)

	svc.On("ConfirmBooking", mock.Anything, testUserID, testBookingID).
		Return(nil, nil, ErrPaymentNotVerified)

	req := httptest.NewRequest(http.MethodGet, "/payment-success?booking_id="+testBookingID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusPaymentRequired, w.Code)
}
