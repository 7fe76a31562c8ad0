package tariff

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scope distinguishes the hotel-wide general rate from an agent-specific
// preferential rate.
type Scope struct {
	agentID *uuid.UUID
}

func GeneralScope() Scope {
	return Scope{}
}

func PreferentialScope(agentID uuid.UUID) (Scope, error) {
	if agentID == uuid.Nil {
		return Scope{}, ErrMissingAgent
	}
	id := agentID
	return Scope{agentID: &id}, nil
}

func (s Scope) IsPreferential() bool {
	return s.agentID != nil
}

func (s Scope) AgentID() (uuid.UUID, bool) {
	if s.agentID == nil {
		return uuid.Nil, false
	}
	return *s.agentID, true
}

const (
	ScopeGeneral      = "general"
	ScopePreferential = "preferential"
)

func (s Scope) String() string {
	if s.agentID != nil {
		return ScopePreferential
	}
	return ScopeGeneral
}

// RoomDetails is the breakfast and surcharge metadata attached to a room
// category. Immutable once the owning tariff is saved; edits replace the
// whole tariff.
type RoomDetails struct {
	includesBreakfast bool
	breakfastType     string
	breakfastPrice    decimal.Decimal
	comments          string
	extraNightPrice   decimal.Decimal
	extraPersonPrice  *decimal.Decimal
}

func NewRoomDetails(
	category Category,
	includesBreakfast bool,
	breakfastType string,
	breakfastPrice decimal.Decimal,
	comments string,
	extraNightPrice decimal.Decimal,
	extraPersonPrice *decimal.Decimal,
) (RoomDetails, error) {
	if includesBreakfast && breakfastType == "" {
		return RoomDetails{}, ErrBreakfastTypeRequired
	}
	if breakfastPrice.IsNegative() || extraNightPrice.IsNegative() {
		return RoomDetails{}, ErrNegativeAmount
	}
	if extraPersonPrice != nil {
		if !category.AllowsExtraPerson() {
			return RoomDetails{}, ErrExtraPersonNotAllowed
		}
		if extraPersonPrice.IsNegative() {
			return RoomDetails{}, ErrNegativeAmount
		}
		p := *extraPersonPrice
		extraPersonPrice = &p
	}

	return RoomDetails{
		includesBreakfast: includesBreakfast,
		breakfastType:     breakfastType,
		breakfastPrice:    breakfastPrice,
		comments:          comments,
		extraNightPrice:   extraNightPrice,
		extraPersonPrice:  extraPersonPrice,
	}, nil
}

func (r RoomDetails) IncludesBreakfast() bool          { return r.includesBreakfast }
func (r RoomDetails) BreakfastType() string            { return r.breakfastType }
func (r RoomDetails) BreakfastPrice() decimal.Decimal  { return r.breakfastPrice }
func (r RoomDetails) Comments() string                 { return r.comments }
func (r RoomDetails) ExtraNightPrice() decimal.Decimal { return r.extraNightPrice }

func (r RoomDetails) ExtraPersonPrice() (decimal.Decimal, bool) {
	if r.extraPersonPrice == nil {
		return decimal.Zero, false
	}
	return *r.extraPersonPrice, true
}

// Draft is the operator-entered tariff data before it is attached to a
// (hotel, category, scope) triple. Validation happens here so malformed
// amounts never reach the allocation engine.
type Draft struct {
	cost  decimal.Decimal
	price decimal.Decimal
	room  RoomDetails
}

func NewDraft(cost, price decimal.Decimal, room RoomDetails) (Draft, error) {
	if cost.IsNegative() {
		return Draft{}, ErrNegativeCost
	}
	if price.IsNegative() {
		return Draft{}, ErrNegativePrice
	}
	return Draft{cost: cost, price: price, room: room}, nil
}

func (d Draft) Cost() decimal.Decimal  { return d.cost }
func (d Draft) Price() decimal.Decimal { return d.price }
func (d Draft) Room() RoomDetails      { return d.room }
