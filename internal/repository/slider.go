package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/deppfellow/storefront-admin/internal/server"
	"github.com/jackc/pgx/v5"
)

type SliderRepository struct {
	server *server.Server
}

func NewSliderRepository(server *server.Server) *SliderRepository {
	return &SliderRepository{server: server}
}

const sliderColumns = `id, image_url, public_id, created_at, updated_at`

func (r *SliderRepository) Insert(ctx context.Context, imageURL, publicID string) (*model.Slider, error) {
	stmt := `
		INSERT INTO
			sliders (image_url, public_id)
		VALUES
			(@image_url, @public_id)
		RETURNING
		` + sliderColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"image_url": imageURL,
		"public_id": publicID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute insert slider query for public_id=%s: %w", publicID, err)
	}

	slider, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Slider])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:sliders: public_id=%s: %w", publicID, err)
	}

	return &slider, nil
}

func (r *SliderRepository) FindByID(ctx context.Context, id string) (*model.Slider, error) {
	stmt := `
		SELECT
			` + sliderColumns + `
		FROM
			sliders
		WHERE
			id = @id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get slider by id query for id=%s: %w", id, err)
	}

	slider, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Slider])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:sliders: id=%s: %w", id, err)
	}

	return &slider, nil
}

// FindAll lists sliders in insertion order.
func (r *SliderRepository) FindAll(ctx context.Context) ([]model.Slider, error) {
	stmt := `
		SELECT
			` + sliderColumns + `
		FROM
			sliders
		ORDER BY
			created_at ASC,
			id ASC
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list sliders query: %w", err)
	}

	sliders, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Slider])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:sliders: %w", err)
	}

	return sliders, nil
}

// DeleteByID removes the slider record. A missing id is reported as pgx.ErrNoRows
// so the purge job can tell an already-removed record apart from a failure.
func (r *SliderRepository) DeleteByID(ctx context.Context, id string) error {
	stmt := `
		DELETE FROM sliders
		WHERE
			id = @id
	`

	tag, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to execute delete slider query for id=%s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no row in table:sliders: id=%s: %w", id, pgx.ErrNoRows)
	}

	return nil
}
