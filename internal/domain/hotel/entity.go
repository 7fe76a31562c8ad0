package hotel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("hotel name cannot be empty")
	ErrEmptyDestination = errors.New("hotel destination cannot be empty")
)

type Hotel struct {
	id          uuid.UUID
	name        string
	destination string
	createdAt   time.Time
}

func NewHotel(name, destination string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	destination = strings.TrimSpace(destination)
	if name == "" {
		return nil, ErrEmptyName
	}
	if destination == "" {
		return nil, ErrEmptyDestination
	}

	return &Hotel{
		id:          uuid.New(),
		name:        name,
		destination: destination,
	}, nil
}

func Reconstruct(id uuid.UUID, name, destination string, createdAt time.Time) *Hotel {
	return &Hotel{
		id:          id,
		name:        name,
		destination: destination,
		createdAt:   createdAt,
	}
}

func (h *Hotel) ID() uuid.UUID       { return h.id }
func (h *Hotel) Name() string        { return h.name }
func (h *Hotel) Destination() string { return h.destination }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
