package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// This enables efficient full-text lookups over normalized
// content text, e.g. for ad-hoc operator investigation queries that fall
// outside the matcher's own proximity-window scan.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_content_items_normalized_text_gin
		ON content_items USING gin(to_tsvector('english', normalized_text))`)
	if err != nil {
		return fmt.Errorf("failed to create normalized_text GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates partial unique indexes that ent's
// schema DSL cannot express directly: at most one primary, active webhook
// endpoint per tenant (the dispatcher's primary-endpoint resolution
// assumes this).
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_webhook_endpoints_one_primary_per_tenant
		ON webhook_endpoints (tenant_id)
		WHERE is_primary AND is_active`)
	if err != nil {
		return fmt.Errorf("failed to create one-primary-webhook-per-tenant index: %w", err)
	}

	return nil
}
