package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"tarifario/internal/infra"
	"tarifario/internal/infra/db"
	"tarifario/internal/pkg/pgconv"
	"tarifario/internal/usecase/commands"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

// An expired key is reclaimed in place: the conflict branch resets it to
// processing with the new request hash, so a retry after the window behaves
// like a first submission.
const tryInsertIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, operator_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, operator_id) DO UPDATE SET
    endpoint             = EXCLUDED.endpoint,
    request_hash         = EXCLUDED.request_hash,
    status               = 'processing',
    result_submission_id = NULL,
    expires_at           = EXCLUDED.expires_at
WHERE idempotency_keys.expires_at < now()
`

// TryInsert claims the key for this request. It reports false when a live
// row already holds the key; zero rows affected means the conflict branch
// refused to reclaim a non-expired entry.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, operatorID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, tryInsertIdempotencyKeySQL,
		key, operatorID, endpoint, requestHash, pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

const getIdempotencyKeySQL = `
SELECT key, operator_id, status, request_hash, result_submission_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND operator_id = $2
`

func (r *IdempotencyRepository) Get(ctx context.Context, key, operatorID uuid.UUID) (*commands.IdempotencyRecord, error) {
	row := r.db.QueryRow(ctx, getIdempotencyKeySQL, key, operatorID)

	var rec commands.IdempotencyRecord
	var resultID pgtype.UUID
	var expiresAt pgtype.Timestamptz
	if err := row.Scan(&rec.Key, &rec.OperatorID, &rec.Status, &rec.RequestHash, &resultID, &expiresAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	rec.ResultSubmissionID = pgconv.UUIDPtrFromPgtype(resultID)
	rec.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	return &rec, nil
}

const completeIdempotencyKeySQL = `
UPDATE idempotency_keys
SET status = 'completed', result_submission_id = $3
WHERE key = $1 AND operator_id = $2
`

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, operatorID uuid.UUID, resultSubmissionID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, completeIdempotencyKeySQL, key, operatorID, resultSubmissionID); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

const deleteExpiredIdempotencyKeysSQL = `
DELETE FROM idempotency_keys WHERE expires_at < now()
`

// DeleteExpired removes keys past their replay window; run from the
// housekeeping ticker at startup.
func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredIdempotencyKeysSQL)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
