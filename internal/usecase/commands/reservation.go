package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tarifario/internal/domain/allocation"
	"tarifario/internal/domain/tariff"
	"tarifario/internal/pkg/clock"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
)

type SubmitReservationInput struct {
	HotelID   uuid.UUID
	Category  string
	AgentID   *uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	TotalCost decimal.Decimal
	TaxRules  []queries.TaxRuleInput
}

type SubmitReservationResult struct {
	Submission *queries.SubmissionView
	IsReplayed bool
}

type ReservationCommands interface {
	// Submit resolves the tariff, allocates the stay and pushes the
	// night-granular payload to the external reservation service. The result
	// is recorded so replays with the same idempotency key return the
	// original submission without a second push.
	Submit(ctx context.Context, in SubmitReservationInput, operatorID, idempotencyKey uuid.UUID) (*SubmitReservationResult, error)
}

type reservationUseCaseImpl struct {
	tariffQueries   queries.TariffQueries
	submissionRepo  SubmissionRepository
	idempotencyRepo IdempotencyRepository
	bookings        BookingGateway
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewReservationCommands(
	tariffQueries queries.TariffQueries,
	submissionRepo SubmissionRepository,
	idempotencyRepo IdempotencyRepository,
	bookings BookingGateway,
	db *pgxpool.Pool,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		tariffQueries:   tariffQueries,
		submissionRepo:  submissionRepo,
		idempotencyRepo: idempotencyRepo,
		bookings:        bookings,
		db:              db,
		clock:           clk,
	}
}

func (uc *reservationUseCaseImpl) Submit(
	ctx context.Context,
	in SubmitReservationInput,
	operatorID, idempotencyKey uuid.UUID,
) (*SubmitReservationResult, error) {
	requestHash := calculateRequestHash(in)
	expiresAt := uc.clock.Now().Add(24 * time.Hour)

	existing, err := uc.handleIdempotency(ctx, idempotencyKey, operatorID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &SubmitReservationResult{Submission: existing, IsReplayed: true}, nil
	}

	view, err := uc.submitNew(ctx, in, operatorID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &SubmitReservationResult{Submission: view, IsReplayed: false}, nil
}

func (uc *reservationUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, operatorID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.SubmissionView, error) {
	inserted, err := uc.idempotencyRepo.TryInsert(ctx, idempotencyKey, operatorID, "POST /reservations", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		// fresh key (or reclaimed expired one): this request owns it
		return nil, nil
	}

	existing, err := uc.idempotencyRepo.Get(ctx, idempotencyKey, operatorID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.RequestHash != requestHash {
			return nil, errs.ErrDuplicateSubmission
		}
		if existing.ResultSubmissionID != nil {
			return uc.submissionRepo.FindByID(ctx, *existing.ResultSubmissionID)
		}
		return nil, errs.New("completed request missing result submission ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, errs.ErrDuplicateSubmission
		}
		// the first request is still in flight; a second push to the
		// reservation service must not happen
		return nil, errs.ErrSubmissionInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *reservationUseCaseImpl) submitNew(
	ctx context.Context,
	in SubmitReservationInput,
	operatorID, idempotencyKey uuid.UUID,
) (*queries.SubmissionView, error) {
	quote, err := uc.buildAllocation(ctx, in)
	if err != nil {
		return nil, err
	}

	payload := buildBookingPayload(in, quote)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode booking payload")
	}

	receipt, err := uc.bookings.Submit(ctx, payload)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSubmissionRejected)
	}

	rec := &SubmissionRecord{
		ID:                 uuid.New(),
		HotelID:            in.HotelID,
		Category:           quote.stay.Tariff().Category(),
		AgentID:            pricedAgentID(quote.stay.Tariff()),
		CheckIn:            quote.stay.CheckIn(),
		CheckOut:           quote.stay.CheckOut(),
		TotalSale:          quote.result.Summary.TotalSale,
		TotalCostWithTaxes: quote.result.Summary.TotalCostWithTaxes,
		MarkupPercent:      quote.result.Summary.MarkupPercent,
		ExternalRef:        receipt.Reference,
		Payload:            payloadJSON,
	}

	return uc.recordSubmission(ctx, rec, idempotencyKey, operatorID)
}

type allocatedQuote struct {
	stay   allocation.Stay
	result *allocation.Result
}

func (uc *reservationUseCaseImpl) buildAllocation(ctx context.Context, in SubmitReservationInput) (*allocatedQuote, error) {
	category, err := tariff.ParseCategory(in.Category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	view, err := uc.tariffQueries.Resolve(ctx, in.HotelID, category, in.AgentID)
	if err != nil {
		return nil, err
	}

	trf, err := queries.TariffViewToDomain(view)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	stay, err := allocation.NewStay(in.CheckIn, in.CheckOut, trf)
	if err != nil {
		if errors.Is(err, allocation.ErrInvalidDateRange) {
			return nil, errs.ErrInvalidDateRange
		}
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	rules, err := queries.BuildTaxRules(in.TaxRules)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	result, err := allocation.Allocate(stay, in.TotalCost, rules)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	return &allocatedQuote{stay: stay, result: result}, nil
}

func (uc *reservationUseCaseImpl) recordSubmission(
	ctx context.Context,
	rec *SubmissionRecord,
	idempotencyKey, operatorID uuid.UUID,
) (*queries.SubmissionView, error) {
	tx, err := uc.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	view, err := uc.submissionRepo.Create(ctx, tx, rec)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := uc.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, operatorID, rec.ID); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}

func buildBookingPayload(in SubmitReservationInput, quote *allocatedQuote) BookingPayload {
	trf := quote.stay.Tariff()

	nights := make([]BookingNight, len(quote.result.Nights))
	for i, night := range quote.result.Nights {
		costTaxes := decimal.Zero
		for _, line := range night.Taxes {
			costTaxes = costTaxes.Add(line.Total)
		}
		nights[i] = BookingNight{
			Total:        night.SaleTotal,
			Subtotal:     night.SaleSubtotal,
			Taxes:        costTaxes,
			CostTotal:    night.TotalWithTaxes,
			CostSubtotal: night.BaseCost,
			CostTaxes:    costTaxes,
		}
	}

	return BookingPayload{
		HotelID:            in.HotelID,
		Category:           trf.Category().String(),
		Scope:              trf.Scope().String(),
		AgentID:            pricedAgentID(trf),
		CheckIn:            quote.stay.CheckIn(),
		CheckOut:           quote.stay.CheckOut(),
		Nights:             nights,
		TotalSale:          quote.result.Summary.TotalSale,
		TotalCostWithTaxes: quote.result.Summary.TotalCostWithTaxes,
		MarkupPercent:      quote.result.Summary.MarkupPercent,
	}
}

// pricedAgentID is the agent of the tariff that priced the stay: nil when
// resolution fell back to the general rate, even if the request named an
// agent.
func pricedAgentID(trf *tariff.Tariff) *uuid.UUID {
	if id, ok := trf.Scope().AgentID(); ok {
		return &id
	}
	return nil
}

func calculateRequestHash(in SubmitReservationInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
