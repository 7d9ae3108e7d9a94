package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateTrigramIndexes enables pg_trgm and creates GIN trigram indexes on
// the free-text columns the search DSL matches against with ILIKE (see
// pkg/search). This accelerates substring matching on ticket title and
// comment body; it is deliberately not a tsvector/ranked full-text index —
// the tracker's search is a filter-and-substring-match DSL, not a ranked
// full-text search engine.
func CreateTrigramIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`); err != nil {
		return fmt.Errorf("failed to create pg_trgm extension: %w", err)
	}

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tickets_title_trgm
		ON tickets USING gin(title gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create ticket title trigram index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tickets_description_trgm
		ON tickets USING gin(description gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create ticket description trigram index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_ticket_comments_text_trgm
		ON ticket_comments USING gin(text gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create comment text trigram index: %w", err)
	}

	return nil
}
