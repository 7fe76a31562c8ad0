package request

import (
	"tarifario/internal/usecase/commands"
)

type CreateHotelRequest struct {
	Name        string `json:"name" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

func (r CreateHotelRequest) ToCommand() commands.CreateHotelRequest {
	return commands.CreateHotelRequest{
		Name:        r.Name,
		Destination: r.Destination,
	}
}
