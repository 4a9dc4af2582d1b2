// Package database provides database client helpers for integration tests.
package database

import (
	"testing"

	"github.com/codeready-toolchain/agentloop/pkg/database"
	"github.com/codeready-toolchain/agentloop/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The schema and connections are automatically cleaned up when the test ends.
// Note: cleanup (schema drop and connection close) is handled by SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
