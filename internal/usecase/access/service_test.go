package access

import (
	stdErrors "errors"
	"sort"
	"testing"

	apperrors "github.com/meetpulse-team/meetpulse/errors"
	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
)

func grantSet(grants []Grant) map[string]struct{} {
	set := make(map[string]struct{}, len(grants))
	for _, g := range grants {
		set[g.key()] = struct{}{}
	}
	return set
}

func TestExpectedGrants_NoDuplicates(t *testing.T) {
	grants := ExpectedGrants()
	set := grantSet(grants)
	if len(set) != len(grants) {
		t.Fatalf("matrix contains duplicates: %d rows, %d unique", len(grants), len(set))
	}
}

func TestExpectedGrants_Sorted(t *testing.T) {
	grants := ExpectedGrants()
	sorted := sort.SliceIsSorted(grants, func(i, j int) bool {
		return grants[i].key() < grants[j].key()
	})
	if !sorted {
		t.Fatal("expected matrix to be sorted by key")
	}
}

func TestExpectedGrants_SudoHoldsEverything(t *testing.T) {
	set := grantSet(ExpectedGrants())
	for _, table := range DomainTables {
		for _, priv := range allPrivileges {
			g := Grant{entities.AccessRoleSudo, table, priv}
			if _, ok := set[g.key()]; !ok {
				t.Fatalf("sudo missing %s on %s", priv, table)
			}
		}
	}
}

func TestExpectedGrants_HRIsReadOnly(t *testing.T) {
	for _, g := range ExpectedGrants() {
		if g.Role == entities.AccessRoleHR && g.Privilege != "SELECT" {
			t.Fatalf("hr holds %s on %s", g.Privilege, g.Table)
		}
	}
}

func TestExpectedGrants_EmployeeNeverMutatesInPlace(t *testing.T) {
	for _, g := range ExpectedGrants() {
		if g.Role != entities.AccessRoleEmployee {
			continue
		}
		if g.Privilege != "SELECT" && g.Privilege != "INSERT" {
			t.Fatalf("employee holds %s on %s", g.Privilege, g.Table)
		}
	}
}

func TestExpectedGrants_ManagerWriteScope(t *testing.T) {
	writable := make(map[string]struct{}, len(managerWriteTables))
	for _, table := range managerWriteTables {
		writable[table] = struct{}{}
	}
	set := grantSet(ExpectedGrants())

	for _, table := range DomainTables {
		_, canWrite := writable[table]
		for _, priv := range []string{"UPDATE", "DELETE"} {
			g := Grant{entities.AccessRoleManager, table, priv}
			_, has := set[g.key()]
			if canWrite && !has {
				t.Fatalf("manager missing %s on %s", priv, table)
			}
			if !canWrite && has {
				t.Fatalf("manager unexpectedly holds %s on %s", priv, table)
			}
		}
	}
}

func TestReport_Err(t *testing.T) {
	clean := &Report{OK: true}
	if err := clean.Err(); err != nil {
		t.Fatalf("expected nil for clean report, got %v", err)
	}

	dirty := &Report{
		Missing: []Grant{
			{entities.AccessRoleManager, "employee_skills", "UPDATE"},
			{entities.AccessRoleManager, "employee_skills", "DELETE"},
		},
		Extra: []Grant{
			{entities.AccessRoleHR, "employee", "INSERT"},
		},
	}
	err := dirty.Err()
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrorCode_GRANT_MISMATCH {
		t.Fatalf("unexpected code %s", appErr.Code)
	}
	if appErr.Details["missing"] != "2" || appErr.Details["extra"] != "1" {
		t.Fatalf("unexpected deviation counts %v", appErr.Details)
	}
}

func TestExpectedGrants_CoversEveryTableAndRole(t *testing.T) {
	tables := make(map[string]map[entities.AccessRole]bool)
	for _, g := range ExpectedGrants() {
		if tables[g.Table] == nil {
			tables[g.Table] = make(map[entities.AccessRole]bool)
		}
		tables[g.Table][g.Role] = true
	}
	if len(tables) != len(DomainTables) {
		t.Fatalf("matrix covers %d tables, want %d", len(tables), len(DomainTables))
	}
	for table, roles := range tables {
		for _, role := range entities.AccessRoles {
			if !roles[role] {
				t.Fatalf("table %s has no grants for role %s", table, role)
			}
		}
	}
}
