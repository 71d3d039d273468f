package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/storefront-admin/internal/model"
	"github.com/deppfellow/storefront-admin/internal/server"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	server *server.Server
}

func NewProductRepository(server *server.Server) *ProductRepository {
	return &ProductRepository{server: server}
}

const productColumns = `id, name, price, description, stock, image, category, is_featured, created_at, updated_at`

func (r *ProductRepository) Insert(ctx context.Context, fields model.ProductFields) (*model.Product, error) {
	stmt := `
		INSERT INTO
			products (
				name,
				price,
				description,
				stock,
				image,
				category,
				is_featured
			)
		VALUES
			(
				@name,
				@price,
				@description,
				@stock,
				@image,
				@category,
				@is_featured
			)
		RETURNING
		` + productColumns

	rows, err := r.server.DB.Pool.Query(ctx, stmt, productArgs(fields))
	if err != nil {
		return nil, fmt.Errorf("failed to execute insert product query for name=%s: %w", fields.Name, err)
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:products: name=%s: %w", fields.Name, err)
	}

	return &product, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	stmt := `
		SELECT
			` + productColumns + `
		FROM
			products
		WHERE
			id = @id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get product by id query for id=%s: %w", id, err)
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:products: id=%s: %w", id, err)
	}

	return &product, nil
}

// Find lists products matching filter, oldest first. An empty filter lists everything.
func (r *ProductRepository) Find(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	stmt := `
		SELECT
			` + productColumns + `
		FROM
			products
	`
	args := pgx.NamedArgs{}

	if filter.Category != "" {
		stmt += `
		WHERE
			category = @category
		`
		args["category"] = filter.Category
	}

	stmt += `
		ORDER BY
			created_at ASC,
			id ASC
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list products query for category=%q: %w", filter.Category, err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.Find(ctx, model.ProductFilter{})
}

// UpdateByID overwrites every mutable column of the product.
func (r *ProductRepository) UpdateByID(ctx context.Context, id string, fields model.ProductFields) (*model.Product, error) {
	stmt := `
		UPDATE products
		SET
			name = @name,
			price = @price,
			description = @description,
			stock = @stock,
			image = @image,
			category = @category,
			is_featured = @is_featured,
			updated_at = NOW()
		WHERE
			id = @id
		RETURNING
		` + productColumns

	args := productArgs(fields)
	args["id"] = id

	rows, err := r.server.DB.Pool.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute update product query for id=%s: %w", id, err)
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:products: id=%s: %w", id, err)
	}

	return &product, nil
}

// DeleteByID removes the product if present. Deleting a missing id is not an error.
func (r *ProductRepository) DeleteByID(ctx context.Context, id string) error {
	stmt := `
		DELETE FROM products
		WHERE
			id = @id
	`

	if _, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("failed to execute delete product query for id=%s: %w", id, err)
	}

	return nil
}

func productArgs(fields model.ProductFields) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":        fields.Name,
		"price":       fields.Price,
		"description": fields.Description,
		"stock":       fields.Stock,
		"image":       fields.Image,
		"category":    fields.Category,
		"is_featured": fields.IsFeatured,
	}
}
