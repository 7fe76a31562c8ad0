package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tarifario/internal/domain/tariff"
	"tarifario/internal/infra"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
)

// TariffDraftInput is the operator-entered rate data for one room category.
type TariffDraftInput struct {
	Category          string
	Cost              decimal.Decimal
	Price             decimal.Decimal
	IncludesBreakfast bool
	BreakfastType     string
	BreakfastPrice    decimal.Decimal
	Comments          string
	ExtraNightPrice   decimal.Decimal
	ExtraPersonPrice  *decimal.Decimal
}

// AgentRef identifies the agent a preferential rate is negotiated for. Name
// and email feed the directory lookup that confirms the agent exists.
type AgentRef struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type TariffCommands interface {
	UpsertGeneral(ctx context.Context, hotelID uuid.UUID, in TariffDraftInput) (*queries.TariffView, error)
	UpsertPreferential(ctx context.Context, hotelID uuid.UUID, agent AgentRef, in TariffDraftInput) (*queries.TariffView, error)
	RemovePreferential(ctx context.Context, hotelID uuid.UUID, category string, agentID uuid.UUID) error
}

type tariffUseCaseImpl struct {
	tariffRepo TariffRepository
	agents     queries.AgentDirectory
	db         *pgxpool.Pool
}

func NewTariffCommands(tariffRepo TariffRepository, agents queries.AgentDirectory, db *pgxpool.Pool) TariffCommands {
	return &tariffUseCaseImpl{
		tariffRepo: tariffRepo,
		agents:     agents,
		db:         db,
	}
}

func (uc *tariffUseCaseImpl) UpsertGeneral(ctx context.Context, hotelID uuid.UUID, in TariffDraftInput) (*queries.TariffView, error) {
	t, err := buildTariff(hotelID, tariff.GeneralScope(), in)
	if err != nil {
		return nil, err
	}
	return uc.persist(ctx, t)
}

func (uc *tariffUseCaseImpl) UpsertPreferential(ctx context.Context, hotelID uuid.UUID, agent AgentRef, in TariffDraftInput) (*queries.TariffView, error) {
	if err := uc.confirmAgent(ctx, agent); err != nil {
		return nil, err
	}

	scope, err := tariff.PreferentialScope(agent.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTariffValidation)
	}

	t, err := buildTariff(hotelID, scope, in)
	if err != nil {
		return nil, err
	}
	return uc.persist(ctx, t)
}

func (uc *tariffUseCaseImpl) RemovePreferential(ctx context.Context, hotelID uuid.UUID, category string, agentID uuid.UUID) error {
	cat, err := tariff.ParseCategory(category)
	if err != nil {
		return errs.Mark(err, errs.ErrTariffValidation)
	}

	if err := uc.tariffRepo.DeletePreferential(ctx, uc.db, hotelID, cat, agentID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// confirmAgent checks the external directory for the referenced agent. The
// lookup itself returning nothing is "no match"; only then does the upsert
// fail, because the agent was explicitly required.
func (uc *tariffUseCaseImpl) confirmAgent(ctx context.Context, agent AgentRef) error {
	if agent.ID == uuid.Nil {
		return errs.ErrUnknownAgent
	}

	matches, err := uc.agents.Search(ctx, agent.Name, agent.Email)
	if err != nil {
		return errs.Mark(err, errs.ErrGatewayUnavailable)
	}
	for _, m := range matches {
		if m.ID == agent.ID {
			return nil
		}
	}
	return errs.ErrUnknownAgent
}

func (uc *tariffUseCaseImpl) persist(ctx context.Context, t *tariff.Tariff) (*queries.TariffView, error) {
	view, err := uc.tariffRepo.Upsert(ctx, uc.db, t)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func buildTariff(hotelID uuid.UUID, scope tariff.Scope, in TariffDraftInput) (*tariff.Tariff, error) {
	category, err := tariff.ParseCategory(in.Category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTariffValidation)
	}

	room, err := tariff.NewRoomDetails(
		category,
		in.IncludesBreakfast,
		in.BreakfastType,
		in.BreakfastPrice,
		in.Comments,
		in.ExtraNightPrice,
		in.ExtraPersonPrice,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTariffValidation)
	}

	draft, err := tariff.NewDraft(in.Cost, in.Price, room)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTariffValidation)
	}

	t, err := tariff.NewTariff(hotelID, category, scope, draft)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTariffValidation)
	}
	return t, nil
}
