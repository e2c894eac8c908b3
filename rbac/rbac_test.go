package rbac

import "testing"

func TestCreateUserAndCheckPermission(t *testing.T) {
	m := NewManager()
	if _, err := m.CreateUser("u1", "alice", RoleOperator); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if !m.CheckPermission("u1", PermEncrypt) {
		t.Fatal("operator should have encrypt permission")
	}
	if m.CheckPermission("u1", PermDestroyKey) {
		t.Fatal("operator should not have destroy_key permission")
	}
}

func TestCreateUserRejectsDuplicateID(t *testing.T) {
	m := NewManager()
	if _, err := m.CreateUser("u1", "alice", RoleAdmin); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := m.CreateUser("u1", "bob", RoleAuditor); err == nil {
		t.Fatal("CreateUser accepted a duplicate user ID")
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	m := NewManager()
	if _, err := m.CreateUser("u1", "alice", Role("superuser")); err == nil {
		t.Fatal("CreateUser accepted an unknown role")
	}
}

func TestAuthorizeDeniesUnknownUser(t *testing.T) {
	m := NewManager()
	if err := m.Authorize("ghost", "encrypt file", PermEncrypt); err == nil {
		t.Fatal("Authorize allowed an unregistered user")
	}
}

func TestAuthorizeLogsDecisions(t *testing.T) {
	m := NewManager()
	if _, err := m.CreateUser("u1", "alice", RoleMaintenance); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := m.Authorize("u1", "rotate master key", PermRotateKey); err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if err := m.Authorize("u1", "decrypt payload", PermDecrypt); err == nil {
		t.Fatal("maintenance role should not have decrypt permission")
	}
	log := m.AuditLog()
	if len(log) == 0 {
		t.Fatal("expected audit events to be recorded")
	}
}

func TestUpdateUserRoleChangesPermissions(t *testing.T) {
	m := NewManager()
	if _, err := m.CreateUser("u1", "alice", RoleAuditor); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if m.CheckPermission("u1", PermEncrypt) {
		t.Fatal("auditor should not start with encrypt permission")
	}
	if err := m.UpdateUserRole("u1", RoleOperator); err != nil {
		t.Fatalf("UpdateUserRole: %v", err)
	}
	if !m.CheckPermission("u1", PermEncrypt) {
		t.Fatal("operator role should grant encrypt permission after update")
	}
}
