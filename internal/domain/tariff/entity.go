package tariff

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCategory       = errors.New("invalid room category")
	ErrNegativeCost          = errors.New("cost cannot be negative")
	ErrNegativePrice         = errors.New("price cannot be negative")
	ErrNegativeAmount        = errors.New("amount cannot be negative")
	ErrBreakfastTypeRequired = errors.New("breakfast type required when breakfast is included")
	ErrExtraPersonNotAllowed = errors.New("extra person price only applies to double rooms")
	ErrMissingAgent          = errors.New("preferential tariff requires an agent")
	ErrMissingHotel          = errors.New("tariff requires a hotel")
)

// Tariff is the priced offer for one (hotel, category, scope) triple. At most
// one general tariff exists per (hotel, category) and at most one
// preferential tariff per (hotel, category, agent); upserts replace.
type Tariff struct {
	id        uuid.UUID
	hotelID   uuid.UUID
	category  Category
	scope     Scope
	cost      decimal.Decimal
	price     decimal.Decimal
	room      RoomDetails
	createdAt time.Time
	updatedAt time.Time
}

func NewTariff(hotelID uuid.UUID, category Category, scope Scope, draft Draft) (*Tariff, error) {
	if hotelID == uuid.Nil {
		return nil, ErrMissingHotel
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if _, ok := draft.Room().ExtraPersonPrice(); ok && !category.AllowsExtraPerson() {
		return nil, ErrExtraPersonNotAllowed
	}

	return &Tariff{
		id:       uuid.New(),
		hotelID:  hotelID,
		category: category,
		scope:    scope,
		cost:     draft.Cost(),
		price:    draft.Price(),
		room:     draft.Room(),
	}, nil
}

func Reconstruct(
	id, hotelID uuid.UUID,
	category Category,
	scope Scope,
	cost, price decimal.Decimal,
	room RoomDetails,
	createdAt, updatedAt time.Time,
) *Tariff {
	return &Tariff{
		id:        id,
		hotelID:   hotelID,
		category:  category,
		scope:     scope,
		cost:      cost,
		price:     price,
		room:      room,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Tariff) ID() uuid.UUID          { return t.id }
func (t *Tariff) HotelID() uuid.UUID     { return t.hotelID }
func (t *Tariff) Category() Category     { return t.category }
func (t *Tariff) Scope() Scope           { return t.scope }
func (t *Tariff) Cost() decimal.Decimal  { return t.cost }
func (t *Tariff) Price() decimal.Decimal { return t.price }
func (t *Tariff) Room() RoomDetails      { return t.room }
func (t *Tariff) CreatedAt() time.Time   { return t.createdAt }
func (t *Tariff) UpdatedAt() time.Time   { return t.updatedAt }
