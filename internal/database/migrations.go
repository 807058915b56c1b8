package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		customer_id VARCHAR(255),
		subscription_id VARCHAR(255),
		product_id VARCHAR(255),
		subscription_status VARCHAR(50),
		team_ids TEXT[] NOT NULL DEFAULT '{}',
		first_sign_in TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		owner_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	// member_key holds the user id string for ACTIVE rows and the invite
	// code for PENDING rows. No FK cascade: team deletion removes members
	// one at a time on purpose.
	`CREATE TABLE IF NOT EXISTS members (
		team_id UUID NOT NULL REFERENCES teams(id),
		member_key VARCHAR(255) NOT NULL,
		user_id UUID,
		email VARCHAR(255) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
		role VARCHAR(20) NOT NULL DEFAULT 'READ_ONLY',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		PRIMARY KEY (team_id, member_key)
	)`,

	`CREATE TABLE IF NOT EXISTS todos (
		team_id UUID NOT NULL,
		id UUID NOT NULL,
		user_id UUID NOT NULL,
		title VARCHAR(500) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		PRIMARY KEY (team_id, id)
	)`,

	`CREATE TABLE IF NOT EXISTS i9_users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS i9_forms (
		id UUID PRIMARY KEY,
		form_id VARCHAR(64) UNIQUE NOT NULL,
		i9_user_id UUID NOT NULL REFERENCES i9_users(id),
		status VARCHAR(50) NOT NULL,
		employee_data JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS i9_documents (
		id UUID PRIMARY KEY,
		form_id VARCHAR(64) NOT NULL,
		list_type VARCHAR(5) NOT NULL,
		title VARCHAR(255) NOT NULL,
		issuing_authority VARCHAR(255) NOT NULL DEFAULT '',
		document_number VARCHAR(255) NOT NULL DEFAULT '',
		expiration_date TIMESTAMP WITH TIME ZONE,
		storage_key VARCHAR(500),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS i9_section2 (
		id UUID PRIMARY KEY,
		form_id VARCHAR(64) UNIQUE NOT NULL,
		employer_name VARCHAR(255) NOT NULL,
		employer_title VARCHAR(255) NOT NULL DEFAULT '',
		business_name VARCHAR(255) NOT NULL DEFAULT '',
		business_address VARCHAR(500) NOT NULL DEFAULT '',
		examined_documents JSONB,
		signed_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS i9_reverifications (
		id UUID PRIMARY KEY,
		form_id VARCHAR(64) NOT NULL,
		new_name VARCHAR(255),
		rehire_date TIMESTAMP WITH TIME ZONE,
		document_title VARCHAR(255) NOT NULL DEFAULT '',
		document_number VARCHAR(255) NOT NULL DEFAULT '',
		expiration_date TIMESTAMP WITH TIME ZONE,
		signed_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS translators (
		id UUID PRIMARY KEY,
		form_id VARCHAR(64) NOT NULL,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		address VARCHAR(500) NOT NULL DEFAULT '',
		signed_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS audit_trail (
		id VARCHAR(26) PRIMARY KEY,
		form_id VARCHAR(64) NOT NULL,
		actor VARCHAR(255) NOT NULL,
		action VARCHAR(50) NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS initiation_metadata (
		id UUID PRIMARY KEY,
		form_id VARCHAR(64) UNIQUE NOT NULL,
		initiated_by VARCHAR(255) NOT NULL,
		employee_email VARCHAR(255) NOT NULL,
		due_date TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS notification_log (
		id VARCHAR(26) PRIMARY KEY,
		recipient VARCHAR(255) NOT NULL,
		subject VARCHAR(500) NOT NULL,
		template VARCHAR(100) NOT NULL,
		form_id VARCHAR(64),
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_members_user_id ON members(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_todos_team_user ON todos(team_id, user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_i9_documents_form_id ON i9_documents(form_id)`,
	`CREATE INDEX IF NOT EXISTS idx_i9_reverifications_form_id ON i9_reverifications(form_id)`,
	`CREATE INDEX IF NOT EXISTS idx_translators_form_id ON translators(form_id)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_trail_form_id ON audit_trail(form_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notification_log_recipient ON notification_log(recipient)`,
	`CREATE INDEX IF NOT EXISTS idx_users_customer_id ON users(customer_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
