package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
)

type RoomDetailsResponse struct {
	IncludesBreakfast bool             `json:"includesBreakfast"`
	BreakfastType     string           `json:"breakfastType"`
	BreakfastPrice    decimal.Decimal  `json:"breakfastPrice"`
	Comments          string           `json:"comments"`
	ExtraNightPrice   decimal.Decimal  `json:"extraNightPrice"`
	ExtraPersonPrice  *decimal.Decimal `json:"extraPersonPrice,omitempty"`
}

type TariffResponse struct {
	ID        uuid.UUID           `json:"id"`
	HotelID   uuid.UUID           `json:"hotelId"`
	Category  string              `json:"category"`
	Scope     string              `json:"scope"`
	AgentID   *uuid.UUID          `json:"agentId,omitempty"`
	Cost      decimal.Decimal     `json:"cost"`
	Price     decimal.Decimal     `json:"price"`
	Room      RoomDetailsResponse `json:"room"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func FromTariffView(view *queries.TariffView) (*TariffResponse, error) {
	var resp TariffResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map tariff view")
	}
	return &resp, nil
}

func FromTariffViews(views []*queries.TariffView) ([]*TariffResponse, error) {
	out := make([]*TariffResponse, len(views))
	for i, view := range views {
		resp, err := FromTariffView(view)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}
