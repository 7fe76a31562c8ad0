package response

import (
	"time"

	"github.com/google/uuid"

	"tarifario/internal/usecase/queries"
)

type HotelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromHotelView(view *queries.HotelView) *HotelResponse {
	return &HotelResponse{
		ID:          view.ID,
		Name:        view.Name,
		Destination: view.Destination,
		CreatedAt:   view.CreatedAt,
	}
}

func FromHotelViews(views []*queries.HotelView) []*HotelResponse {
	out := make([]*HotelResponse, len(views))
	for i, view := range views {
		out[i] = FromHotelView(view)
	}
	return out
}
