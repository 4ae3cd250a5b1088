package rest

import (
	"context"
	"net/http"
	"time"

	"skyStop/business/discovery"
	"skyStop/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	DiscoveryHandler struct {
		validate         *validator.Validate
		discoveryService DiscoveryService
	}

	DiscoveryService interface {
		Recommend(ctx context.Context, req discovery.Request) (domain.RecommendationSet, error)
		Transit(ctx context.Context, req discovery.Request) (domain.TransitAnalysis, error)
	}

	DiscoveryQuery struct {
		Airport   string `query:"airport" validate:"required,len=3,alpha"`
		Arrival   string `query:"arrival" validate:"required"`
		Departure string `query:"departure" validate:"required"`
		Baggage   bool   `query:"baggage"`
		N         int    `query:"n"`
	}
)

func NewDiscoveryHandler(svc DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{
		validate:         validator.New(),
		discoveryService: svc,
	}
}

func (q DiscoveryQuery) toRequest(userID uint) (discovery.Request, error) {
	arrival, err := time.Parse(time.RFC3339, q.Arrival)
	if err != nil {
		return discovery.Request{}, err
	}
	departure, err := time.Parse(time.RFC3339, q.Departure)
	if err != nil {
		return discovery.Request{}, err
	}

	return discovery.Request{
		UserID:            userID,
		AirportCode:       q.Airport,
		ArrivalTime:       arrival,
		DepartureTime:     departure,
		HasCheckedBaggage: q.Baggage,
		Limit:             q.N,
	}, nil
}

// GET /api/v1/discovery/experiences?airport=SIN&arrival=...&departure=...&n=10
func (h *DiscoveryHandler) Recommend(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q DiscoveryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	req, err := q.toRequest(userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "arrival and departure must be RFC3339 timestamps"})
	}

	set, err := h.discoveryService.Recommend(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(set))
}

// GET /api/v1/discovery/transit?airport=SIN&arrival=...&departure=...
func (h *DiscoveryHandler) Transit(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q DiscoveryQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	req, err := q.toRequest(userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "arrival and departure must be RFC3339 timestamps"})
	}

	analysis, err := h.discoveryService.Transit(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(analysis))
}
