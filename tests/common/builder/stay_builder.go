//go:build unit || e2e

package builder

import (
	"time"

	"tarifario/internal/domain/allocation"
)

type StayBuilder struct {
	checkIn  time.Time
	checkOut time.Time
	tariff   *TariffBuilder
}

func NewStayBuilder() *StayBuilder {
	checkIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &StayBuilder{
		checkIn:  checkIn,
		checkOut: checkIn.AddDate(0, 0, 3),
		tariff:   NewTariffBuilder(),
	}
}

func (b *StayBuilder) WithCheckIn(t time.Time) *StayBuilder {
	b.checkIn = t
	return b
}

func (b *StayBuilder) WithCheckOut(t time.Time) *StayBuilder {
	b.checkOut = t
	return b
}

func (b *StayBuilder) WithNights(n int) *StayBuilder {
	b.checkOut = b.checkIn.AddDate(0, 0, n)
	return b
}

func (b *StayBuilder) WithTariff(tb *TariffBuilder) *StayBuilder {
	b.tariff = tb
	return b
}

func (b *StayBuilder) TariffBuilder() *TariffBuilder {
	return b.tariff
}

func (b *StayBuilder) BuildDomain() (allocation.Stay, error) {
	trf, err := b.tariff.BuildDomain()
	if err != nil {
		return allocation.Stay{}, err
	}
	return allocation.NewStay(b.checkIn, b.checkOut, trf)
}
