// Package store is the optional postgres cache of extraction results, keyed
// by image hash + provider + model. Entirely absent when DATABASE_URL is not
// configured; cache errors degrade to a live call, never fail a request.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"academy-ai/internal/ocr"
)

var ErrNotFound = sql.ErrNoRows

type OcrRepo struct{ DB *sql.DB }

func NewOcrRepo(db *sql.DB) *OcrRepo { return &OcrRepo{DB: db} }

type CachedRow struct {
	ID        int64
	CreatedAt time.Time
	ImageHash string
	Provider  string
	Model     string
	Result    ocr.Result
}

// FindByHash fetches the freshest cached result for (image_hash, provider,
// model). maxAge > 0 enforces freshness, otherwise age is ignored.
func (r *OcrRepo) FindByHash(ctx context.Context, imageHash, provider, model string, maxAge time.Duration) (*CachedRow, error) {
	const q = `
select id, created_at, image_hash, provider, model, result_json
from ocr_results
where image_hash = $1 and provider = $2 and model = $3
order by created_at desc
limit 1`
	row := r.DB.QueryRowContext(ctx, q, imageHash, provider, model)

	var (
		id   int64
		ts   time.Time
		hash string
		prov string
		mdl  string
		js   []byte
	)
	if err := row.Scan(&id, &ts, &hash, &prov, &mdl, &js); err != nil {
		return nil, err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return nil, ErrNotFound
	}
	var res ocr.Result
	if err := json.Unmarshal(js, &res); err != nil {
		// broken row counts as a miss
		return nil, ErrNotFound
	}
	return &CachedRow{
		ID:        id,
		CreatedAt: ts,
		ImageHash: hash,
		Provider:  prov,
		Model:     mdl,
		Result:    res,
	}, nil
}

// Upsert stores a fresh result under the caller's (image_hash, provider,
// model) key; an existing row is overwritten. The key provider/model are the
// requested ones and may differ from the result's after substitution.
func (r *OcrRepo) Upsert(ctx context.Context, imageHash, provider, model string, res ocr.Result) error {
	js, _ := json.Marshal(res)
	const q = `
insert into ocr_results (image_hash, provider, model, text, confidence, result_json)
values ($1,$2,$3,$4,$5,$6)
on conflict (image_hash, provider, model) do update
set text = excluded.text,
    confidence = excluded.confidence,
    result_json = excluded.result_json,
    created_at = now()`
	_, err := r.DB.ExecContext(ctx, q,
		imageHash, provider, model, res.Text, res.Confidence, js)
	return err
}
