package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payconfig"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/database"
)

// payConfigRepositoryImpl stores each configuration bundle as one JSONB
// document keyed by name in pay_configs.
type payConfigRepositoryImpl struct {
	db *database.DB
}

func NewPayConfigRepository(db *database.DB) payconfig.PayConfigRepository {
	return &payConfigRepositoryImpl{db: db}
}

// Get implements payconfig.PayConfigRepository.
func (r *payConfigRepositoryImpl) Get(ctx context.Context, name string, out any) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var doc []byte
	err := q.QueryRow(ctx, `SELECT document FROM pay_configs WHERE name = $1`, name).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("get pay config %s: %w", name, err)
	}

	if err := json.Unmarshal(doc, out); err != nil {
		return false, fmt.Errorf("decode pay config %s: %w", name, err)
	}

	return true, nil
}

// Set implements payconfig.PayConfigRepository.
func (r *payConfigRepositoryImpl) Set(ctx context.Context, name string, bundle any) error {
	q := GetQuerier(ctx, r.db)

	doc, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("encode pay config %s: %w", name, err)
	}

	query := `
		INSERT INTO pay_configs (name, document)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE
		SET document = EXCLUDED.document, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, name, doc); err != nil {
		return fmt.Errorf("store pay config %s: %w", name, err)
	}

	return nil
}
