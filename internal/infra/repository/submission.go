package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"tarifario/internal/infra"
	"tarifario/internal/infra/db"
	"tarifario/internal/pkg/pgconv"
	"tarifario/internal/usecase/commands"
	"tarifario/internal/usecase/queries"
)

type SubmissionRepository struct {
	db db.DBTX
}

func NewSubmissionRepository(dbtx db.DBTX) *SubmissionRepository {
	return &SubmissionRepository{db: dbtx}
}

const createSubmissionSQL = `
INSERT INTO reservation_submissions
    (id, hotel_id, category, agent_id, check_in, check_out,
     total_sale, total_cost_with_taxes, markup_percent, external_ref, payload)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, hotel_id, category, agent_id, check_in, check_out,
          total_sale, total_cost_with_taxes, markup_percent, external_ref, submitted_at
`

func (r *SubmissionRepository) Create(ctx context.Context, dbtx db.DBTX, rec *commands.SubmissionRecord) (*queries.SubmissionView, error) {
	var markup pgtype.Numeric
	if rec.MarkupPercent != nil {
		markup = pgconv.DecimalToNumeric(*rec.MarkupPercent)
	}

	row := dbtx.QueryRow(ctx, createSubmissionSQL,
		rec.ID, rec.HotelID, rec.Category.String(), pgconv.UUIDPtrToPgtype(rec.AgentID),
		pgconv.DateToPgtype(rec.CheckIn), pgconv.DateToPgtype(rec.CheckOut),
		pgconv.DecimalToNumeric(rec.TotalSale), pgconv.DecimalToNumeric(rec.TotalCostWithTaxes),
		markup, rec.ExternalRef, rec.Payload)

	view, err := scanSubmissionView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation submission", err, classifyPgErr(err))
	}
	return view, nil
}

const findSubmissionByIDSQL = `
SELECT id, hotel_id, category, agent_id, check_in, check_out,
       total_sale, total_cost_with_taxes, markup_percent, external_ref, submitted_at
FROM reservation_submissions
WHERE id = $1
`

func (r *SubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.SubmissionView, error) {
	view, err := scanSubmissionView(r.db.QueryRow(ctx, findSubmissionByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation submission not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation submission", err)
	}
	return view, nil
}

func scanSubmissionView(row pgx.Row) (*queries.SubmissionView, error) {
	var view queries.SubmissionView
	var agentID pgtype.UUID
	var checkIn, checkOut pgtype.Date
	var totalSale, totalCost, markup pgtype.Numeric
	var submittedAt pgtype.Timestamptz

	err := row.Scan(&view.ID, &view.HotelID, &view.Category, &agentID, &checkIn, &checkOut,
		&totalSale, &totalCost, &markup, &view.ExternalRef, &submittedAt)
	if err != nil {
		return nil, err
	}

	view.AgentID = pgconv.UUIDPtrFromPgtype(agentID)
	view.CheckIn = checkIn.Time
	view.CheckOut = checkOut.Time
	if view.TotalSale, err = pgconv.DecimalFromNumeric(totalSale); err != nil {
		return nil, err
	}
	if view.TotalCostWithTaxes, err = pgconv.DecimalFromNumeric(totalCost); err != nil {
		return nil, err
	}
	if view.MarkupPercent, err = pgconv.DecimalPtrFromNumeric(markup); err != nil {
		return nil, err
	}
	view.SubmittedAt = pgconv.TimeFromPgtype(submittedAt)
	return &view, nil
}
