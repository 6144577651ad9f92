package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS properties (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		address VARCHAR(512) NOT NULL DEFAULT '',
		area NUMERIC(10,2) NOT NULL DEFAULT 0,
		monthly_rent NUMERIC(18,2) NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL DEFAULT '空置',
		description TEXT NOT NULL DEFAULT '',
		photos TEXT NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS tenants (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL DEFAULT '',
		id_number VARCHAR(64) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS parking_spaces (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		space_number VARCHAR(64) NOT NULL,
		location VARCHAR(255) NOT NULL DEFAULT '',
		monthly_rent NUMERIC(18,2) NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL DEFAULT '空置',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS leases (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tenant_id UUID NOT NULL REFERENCES tenants(id),
		lease_type VARCHAR(16) NOT NULL,
		property_id UUID REFERENCES properties(id),
		parking_space_id UUID REFERENCES parking_spaces(id),
		lease_start DATE NOT NULL,
		lease_end DATE NOT NULL,
		monthly_rent NUMERIC(18,2) NOT NULL,
		deposit_paid NUMERIC(18,2) NOT NULL DEFAULT 0,
		total_contract_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
		payment_method VARCHAR(16) NOT NULL DEFAULT '月付',
		status VARCHAR(16) NOT NULL DEFAULT '未生效',
		car_number VARCHAR(32),
		car_model VARCHAR(64),
		notes TEXT NOT NULL DEFAULT '',
		contract_photos TEXT NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT chk_lease_occupancy CHECK (
			(lease_type = 'property' AND property_id IS NOT NULL AND parking_space_id IS NULL)
			OR (lease_type = 'parking' AND parking_space_id IS NOT NULL AND property_id IS NULL)
		),
		CONSTRAINT chk_lease_term CHECK (lease_end > lease_start)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_leases_tenant_id ON leases (tenant_id);`,
	`CREATE INDEX IF NOT EXISTS idx_leases_property_id ON leases (property_id) WHERE property_id IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_leases_parking_space_id ON leases (parking_space_id) WHERE parking_space_id IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_leases_status ON leases (status);`,
	`CREATE TABLE IF NOT EXISTS payment_schedules (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		lease_id UUID NOT NULL REFERENCES leases(id) ON DELETE CASCADE,
		period_number INT NOT NULL,
		period_start_date DATE NOT NULL,
		period_end_date DATE NOT NULL,
		due_date DATE NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		paid_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT '未付款',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_schedule_period UNIQUE (lease_id, period_number),
		CONSTRAINT chk_schedule_period CHECK (period_end_date > period_start_date)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_payment_schedules_lease_id ON payment_schedules (lease_id);`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		transaction_type VARCHAR(8) NOT NULL,
		category VARCHAR(32) NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		transaction_date DATE NOT NULL,
		property_id UUID REFERENCES properties(id),
		tenant_id UUID REFERENCES tenants(id),
		lease_id UUID REFERENCES leases(id) ON DELETE SET NULL,
		payment_schedule_id UUID REFERENCES payment_schedules(id) ON DELETE SET NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_lease_id ON transactions (lease_id) WHERE lease_id IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_schedule_id ON transactions (payment_schedule_id) WHERE payment_schedule_id IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (transaction_date);`,
	`CREATE TABLE IF NOT EXISTS maintenance_tickets (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		property_id UUID REFERENCES properties(id),
		parking_space_id UUID REFERENCES parking_spaces(id),
		tenant_id UUID REFERENCES tenants(id),
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority VARCHAR(8) NOT NULL DEFAULT '中',
		status VARCHAR(16) NOT NULL DEFAULT '待处理',
		reported_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		resolved_at TIMESTAMPTZ,
		cost NUMERIC(18,2) NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_tickets_status ON maintenance_tickets (status);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
