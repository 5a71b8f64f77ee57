package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Milaston7/ARRENDAKI-sub001/models"
)

// MigrateTenantSchema applies (idempotent) schema migrations for a single
// agency schema. It pins search_path to the agency and performs:
// - AutoMigrate (tables/columns)
// - Money column types (NUMERIC(12,2))
// - Indexes (documents, transactions)
// - Basic CHECK constraints (non-negative money columns)
// - Idempotency keys table + unique index
func MigrateTenantSchema(schema string) error {
	if schema == "" {
		return fmt.Errorf("schema name is empty")
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		// Pin the agency schema for this transaction
		if err := tx.Exec(`SET search_path = "` + schema + `", public`).Error; err != nil {
			return fmt.Errorf("set search_path failed: %w", err)
		}

		// --- AutoMigrate tables/columns/index tags (non-destructive) ---
		if err := tx.AutoMigrate(
			&models.Party{},
			&models.Property{},
			&models.Transaction{},
			&models.Document{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("tenant automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE properties   ALTER COLUMN amount    TYPE numeric(12,2)`,
			`ALTER TABLE transactions ALTER COLUMN amount    TYPE numeric(12,2)`,
			`ALTER TABLE documents    ALTER COLUMN subtotal  TYPE numeric(12,2)`,
			`ALTER TABLE documents    ALTER COLUMN tax_total TYPE numeric(12,2)`,
			`ALTER TABLE documents    ALTER COLUMN total     TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_documents_number ON documents (number)`,
			`CREATE INDEX IF NOT EXISTS idx_documents_type_issue_date ON documents (type, issue_date)`,
			`CREATE INDEX IF NOT EXISTS idx_transactions_paid_at ON transactions (paid_at)`,
			`CREATE INDEX IF NOT EXISTS idx_properties_owner ON properties (owner_id)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			// Non-negative property amount
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'properties'::regclass
					  AND conname  = 'chk_properties_amount_nonneg'
				) THEN
					ALTER TABLE properties
					ADD CONSTRAINT chk_properties_amount_nonneg
					CHECK (amount >= 0);
				END IF;
			END $$;`,
			// Transactions.amount >= 0
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'transactions'::regclass
					  AND conname  = 'chk_transactions_amount_nonneg'
				) THEN
					ALTER TABLE transactions
					ADD CONSTRAINT chk_transactions_amount_nonneg
					CHECK (amount >= 0);
				END IF;
			END $$;`,
			// Documents: total must equal subtotal + tax_total
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'documents'::regclass
					  AND conname  = 'chk_documents_total_consistent'
				) THEN
					ALTER TABLE documents
					ADD CONSTRAINT chk_documents_total_consistent
					CHECK (total = subtotal + tax_total);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
