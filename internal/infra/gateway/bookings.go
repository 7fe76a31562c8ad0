package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"tarifario/internal/pkg/config"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/commands"
)

// BookingsGateway pushes night-granular reservation payloads to the external
// reservation-creation API.
type BookingsGateway struct {
	client  *http.Client
	baseURL string
}

func NewBookingsGateway(cfg config.BookingsConfig) *BookingsGateway {
	return &BookingsGateway{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
	}
}

type bookingResponse struct {
	Reference string `json:"reference"`
}

func (g *BookingsGateway) Submit(ctx context.Context, payload commands.BookingPayload) (*commands.BookingReceipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode booking payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/reservations", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build booking request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "booking request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// keep a slice of the body for diagnostics, the service reports
		// rejection reasons as plain text
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.New("reservation service returned status " + resp.Status + ": " + string(detail))
	}

	var out bookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(err, "failed to decode booking response")
	}
	if out.Reference == "" {
		return nil, errs.New("reservation service returned empty reference")
	}
	return &commands.BookingReceipt{Reference: out.Reference}, nil
}
