package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join("..", "..", "..", "migrations", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read migration %s: %v", name, err)
	}
	return string(data)
}

func TestMigrations_HaveUpAndDown(t *testing.T) {
	for _, name := range []string{
		"0001_schema.sql",
		"0002_roles_grants_rls.sql",
		"0003_seed.sql",
	} {
		sql := readMigration(t, name)
		if !strings.Contains(sql, "-- +migrate Up") {
			t.Fatalf("%s missing Up marker", name)
		}
		if !strings.Contains(sql, "-- +migrate Down") {
			t.Fatalf("%s missing Down marker", name)
		}
	}
}

func TestSchemaMigration_CreatesAllTables(t *testing.T) {
	sql := readMigration(t, "0001_schema.sql")
	for _, table := range []string{
		"employee",
		"meeting",
		"meeting_transcript",
		"rolling_sentiment",
		"employee_skills",
		"skill_recommendation",
		"task_recommendation",
	} {
		want := "CREATE TABLE IF NOT EXISTS " + table
		if !strings.Contains(sql, want) {
			t.Fatalf("schema migration missing %q", want)
		}
	}
}

func TestSchemaMigration_IsIdempotent(t *testing.T) {
	sql := readMigration(t, "0001_schema.sql")
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(line, "CREATE TABLE") && !strings.HasPrefix(line, "CREATE TABLE IF NOT EXISTS") {
			t.Fatalf("table created without IF NOT EXISTS: %q", line)
		}
		if strings.HasPrefix(line, "CREATE INDEX") && !strings.HasPrefix(line, "CREATE INDEX IF NOT EXISTS") {
			t.Fatalf("index created without IF NOT EXISTS: %q", line)
		}
	}
}

func TestRolesMigration_ForcesRLSOnRestrictedTables(t *testing.T) {
	sql := readMigration(t, "0002_roles_grants_rls.sql")
	for _, table := range []string{"meeting_transcript", "employee_skills", "task_recommendation"} {
		for _, verb := range []string{"ENABLE ROW LEVEL SECURITY", "FORCE ROW LEVEL SECURITY"} {
			want := "ALTER TABLE " + table + " " + verb
			if !strings.Contains(sql, want) {
				t.Fatalf("roles migration missing %q", want)
			}
		}
	}
}

func TestRolesMigration_PoliciesUseSessionVariable(t *testing.T) {
	sql := readMigration(t, "0002_roles_grants_rls.sql")
	if !strings.Contains(sql, "current_setting('app.current_name', true)") {
		t.Fatal("policies must read app.current_name with missing_ok")
	}
	// Each restricted table needs a self-scoped read, a self-scoped write
	// check, and an all-rows read for the wide roles.
	for _, table := range []string{"meeting_transcript", "employee_skills", "task_recommendation"} {
		for _, suffix := range []string{"_self_select", "_self_insert", "_staff_select"} {
			policy := table + suffix
			if !strings.Contains(sql, "CREATE POLICY "+policy+" ON "+table) {
				t.Fatalf("roles migration missing policy %q", policy)
			}
		}
	}
}

func TestRolesMigration_CreatesRolesIdempotently(t *testing.T) {
	sql := readMigration(t, "0002_roles_grants_rls.sql")
	if !strings.Contains(sql, "pg_roles") {
		t.Fatal("role creation must check pg_roles before CREATE ROLE")
	}
	for _, role := range []string{"employee", "manager", "hr", "sudo"} {
		if !strings.Contains(sql, "CREATE ROLE "+role) {
			t.Fatalf("roles migration missing role %q", role)
		}
	}
}

func TestSeedMigration_IsIdempotent(t *testing.T) {
	sql := readMigration(t, "0003_seed.sql")
	if !strings.Contains(sql, "ON CONFLICT") {
		t.Fatal("seed inserts must tolerate reruns")
	}
	if !strings.Contains(sql, "setval") {
		t.Fatal("seed must advance sequences past fixed ids")
	}
	for _, name := range []string{"John Doe", "Jane Manager"} {
		if !strings.Contains(sql, name) {
			t.Fatalf("seed missing employee %q", name)
		}
	}
}
