package keylifecycle

import (
	"testing"
	"time"

	"cryptoengine/rbac"
)

func newGuardedFixture(t *testing.T) (*GuardedManager, *rbac.Manager) {
	t.Helper()
	access := rbac.NewManager()
	if _, err := access.CreateUser("admin-1", "admin", rbac.RoleAdmin); err != nil {
		t.Fatalf("CreateUser admin: %v", err)
	}
	if _, err := access.CreateUser("auditor-1", "auditor", rbac.RoleAuditor); err != nil {
		t.Fatalf("CreateUser auditor: %v", err)
	}
	guarded := NewGuardedManager(NewManager(time.Hour), access)
	return guarded, access
}

func TestGuardedManagerAllowsAuthorizedGenerate(t *testing.T) {
	guarded, _ := newGuardedFixture(t)
	key, err := guarded.Generate("admin-1", "aes-1", 16)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if key.Cipher == nil {
		t.Fatal("guarded Generate did not produce a usable cipher")
	}
}

func TestGuardedManagerRejectsUnauthorizedGenerate(t *testing.T) {
	guarded, _ := newGuardedFixture(t)
	if _, err := guarded.Generate("auditor-1", "aes-1", 16); err == nil {
		t.Fatal("auditor role should not be able to generate keys")
	}
}

func TestGuardedManagerRejectsUnauthorizedDestroy(t *testing.T) {
	guarded, _ := newGuardedFixture(t)
	if _, err := guarded.Generate("admin-1", "aes-1", 16); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := guarded.Destroy("auditor-1", "aes-1"); err == nil {
		t.Fatal("auditor role should not be able to destroy keys")
	}
}

func TestGuardedManagerAllowsAuthorizedAuditTrail(t *testing.T) {
	guarded, _ := newGuardedFixture(t)
	if _, err := guarded.Generate("admin-1", "aes-1", 16); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	trail, err := guarded.AuditTrail("auditor-1", "aes-1")
	if err != nil {
		t.Fatalf("AuditTrail: %v", err)
	}
	if len(trail) != 1 || trail[0].EventType != "KEY_GENERATED" {
		t.Fatalf("unexpected trail: %+v", trail)
	}
}

func TestGuardedManagerRecordsAuthorizationDecisions(t *testing.T) {
	guarded, access := newGuardedFixture(t)
	if _, err := guarded.Generate("admin-1", "aes-1", 16); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := guarded.Generate("auditor-1", "aes-2", 16); err == nil {
		t.Fatal("expected authorization failure")
	}
	var sawAuthorized, sawDenied bool
	for _, event := range access.AuditLog() {
		if event.Action == "GENERATE_KEY" && event.Result == "AUTHORIZED" {
			sawAuthorized = true
		}
		if event.Permission == rbac.PermGenerateKey && event.Result == "DENIED" {
			sawDenied = true
		}
	}
	if !sawAuthorized || !sawDenied {
		t.Fatalf("rbac audit log missing expected entries: %+v", access.AuditLog())
	}
}
