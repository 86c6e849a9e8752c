package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS assets (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		symbol VARCHAR(32) UNIQUE NOT NULL,
		decimals SMALLINT NOT NULL DEFAULT 0 CHECK (decimals >= 0),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS coins (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		asset_id UUID NOT NULL REFERENCES assets(id),
		owner_id UUID NOT NULL REFERENCES accounts(id),
		value BIGINT NOT NULL CHECK (value >= 0),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_coins_owner_id ON coins(owner_id)`,

	// One vault per asset. Vaults are never deleted.
	`CREATE TABLE IF NOT EXISTS vaults (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		asset_id UUID UNIQUE NOT NULL REFERENCES assets(id),
		base_balance BIGINT NOT NULL DEFAULT 0 CHECK (base_balance >= 0),
		share_supply BIGINT NOT NULL DEFAULT 0 CHECK (share_supply >= 0),
		created_by UUID NOT NULL REFERENCES accounts(id),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS share_tokens (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vault_id UUID NOT NULL REFERENCES vaults(id),
		owner_id UUID NOT NULL REFERENCES accounts(id),
		value BIGINT NOT NULL CHECK (value >= 0),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_share_tokens_owner_id ON share_tokens(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_share_tokens_vault_id ON share_tokens(vault_id)`,

	`CREATE TABLE IF NOT EXISTS admin_caps (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vault_id UUID UNIQUE NOT NULL REFERENCES vaults(id),
		holder_id UUID NOT NULL REFERENCES accounts(id),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS vault_events (
		id BIGSERIAL PRIMARY KEY,
		vault_id UUID NOT NULL REFERENCES vaults(id),
		kind VARCHAR(20) NOT NULL,
		actor_id UUID NOT NULL REFERENCES accounts(id),
		amount BIGINT NOT NULL CHECK (amount >= 0),
		base_balance BIGINT NOT NULL,
		share_supply BIGINT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_vault_events_vault_id ON vault_events(vault_id, id DESC)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
