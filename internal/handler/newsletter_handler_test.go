package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"alumnihub/internal/errors"
	"alumnihub/internal/model"
	"alumnihub/internal/service"
)

// MockNewsletterService is a mock implementation of service.NewsletterService.
type MockNewsletterService struct {
	mock.Mock
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, email string) (*service.SubscribeResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubscribeResult), args.Error(1)
}

func (m *MockNewsletterService) Unsubscribe(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockNewsletterService) ListActive(ctx context.Context) ([]model.NewsletterSubscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NewsletterSubscriber), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func TestNewsletterHandler_Subscribe(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockNewsletterService)
		expectedStatus int
	}{
		{
			name: "successful subscription",
			body: `{"email":"reader@example.com"}`,
			setupMock: func(m *MockNewsletterService) {
				m.On("Subscribe", mock.Anything, "reader@example.com").Return(&service.SubscribeResult{
					Message:    "Successfully subscribed to newsletter",
					Subscribed: true,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed email rejected before the service",
			body:           `{"email":"not-an-email"}`,
			setupMock:      func(m *MockNewsletterService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing email rejected",
			body:           `{}`,
			setupMock:      func(m *MockNewsletterService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockNewsletterService)
			tt.setupMock(mockService)
			h := NewNewsletterHandler(mockService)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Subscribe(c)
			if tt.expectedStatus == http.StatusCreated {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Contains(t, rec.Body.String(), "subscribed")
			} else {
				httpErr, ok := err.(*echo.HTTPError)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestNewsletterHandler_Unsubscribe(t *testing.T) {
	t.Run("unknown email maps to 404", func(t *testing.T) {
		mockService := new(MockNewsletterService)
		mockService.On("Unsubscribe", mock.Anything, "ghost@example.com").Return(errors.ErrSubscriberNotFound)
		h := NewNewsletterHandler(mockService)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/newsletter/unsubscribe/:email")
		c.SetParamNames("email")
		c.SetParamValues("ghost@example.com")

		err := h.Unsubscribe(c)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("known email succeeds", func(t *testing.T) {
		mockService := new(MockNewsletterService)
		mockService.On("Unsubscribe", mock.Anything, "reader@example.com").Return(nil)
		h := NewNewsletterHandler(mockService)

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/newsletter/unsubscribe/:email")
		c.SetParamNames("email")
		c.SetParamValues("reader@example.com")

		err := h.Unsubscribe(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})
}
