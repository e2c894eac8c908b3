// Package rbac implements role-based access control gating the engine's
// operational surface: encryption/decryption, key lifecycle management, and
// audit-log access are all permissions a user's role must carry.
package rbac

import (
	"fmt"
	"sync"
	"time"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleOperator    Role = "operator"
	RoleAuditor     Role = "auditor"
	RoleMaintenance Role = "maintenance"
)

type Permission string

const (
	PermEncrypt      Permission = "encrypt"
	PermDecrypt      Permission = "decrypt"
	PermGenerateKey  Permission = "generate_key"
	PermRotateKey    Permission = "rotate_key"
	PermDestroyKey   Permission = "destroy_key"
	PermViewAuditLog Permission = "view_audit_log"
	PermManageUsers  Permission = "manage_users"
)

var defaultRolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermEncrypt, PermDecrypt, PermGenerateKey, PermRotateKey,
		PermDestroyKey, PermViewAuditLog, PermManageUsers,
	},
	RoleOperator:    {PermEncrypt, PermDecrypt},
	RoleAuditor:     {PermViewAuditLog},
	RoleMaintenance: {PermGenerateKey, PermRotateKey, PermDestroyKey},
}

// User is a system principal with a role and the permissions it grants.
type User struct {
	UserID      string
	Username    string
	Role        Role
	CreatedAt   time.Time
	LastAccess  time.Time
	AccessCount int64
	Permissions []Permission
}

// Event records one access-control decision.
type Event struct {
	Timestamp  time.Time
	UserID     string
	Username   string
	Action     string
	Permission Permission
	Result     string
	Details    string
}

// Manager holds the user set, role-permission table, and audit log.
type Manager struct {
	users     map[string]*User
	rolePerms map[Role][]Permission
	auditLog  []Event
	mu        sync.RWMutex
}

// NewManager builds a Manager seeded with the standard four-role permission
// table (admin, operator, auditor, maintenance).
func NewManager() *Manager {
	perms := make(map[Role][]Permission, len(defaultRolePermissions))
	for role, list := range defaultRolePermissions {
		perms[role] = append([]Permission(nil), list...)
	}
	return &Manager{
		users:     make(map[string]*User),
		rolePerms: perms,
	}
}

// CreateUser registers a new user under role, failing if userID is already
// in use or role is not recognized.
func (m *Manager) CreateUser(userID, username string, role Role) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[userID]; exists {
		return nil, fmt.Errorf("rbac: user %q already exists", userID)
	}
	perms, ok := m.rolePerms[role]
	if !ok {
		return nil, fmt.Errorf("rbac: unknown role %q", role)
	}

	user := &User{
		UserID:      userID,
		Username:    username,
		Role:        role,
		CreatedAt:   time.Now(),
		Permissions: perms,
	}
	m.users[userID] = user
	m.logLocked(Event{Timestamp: time.Now(), UserID: "system", Action: "CREATE_USER", Result: "SUCCESS", Details: fmt.Sprintf("created %s with role %s", userID, role)})
	return user, nil
}

// CheckPermission reports whether userID's role grants permission. A denial
// is logged; a grant is not logged here, only counted in the user's
// LastAccess and AccessCount.
func (m *Manager) CheckPermission(userID string, permission Permission) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[userID]
	if !exists {
		m.logLocked(Event{Timestamp: time.Now(), UserID: userID, Action: "PERMISSION_CHECK", Permission: permission, Result: "DENIED", Details: "user not found"})
		return false
	}
	for _, perm := range user.Permissions {
		if perm == permission {
			user.LastAccess = time.Now()
			user.AccessCount++
			return true
		}
	}
	m.logLocked(Event{Timestamp: time.Now(), UserID: userID, Username: user.Username, Action: "PERMISSION_CHECK", Permission: permission, Result: "DENIED", Details: "missing permission"})
	return false
}

// Authorize checks userID's permission for action and logs the outcome,
// returning an error if access is denied.
func (m *Manager) Authorize(userID, action string, permission Permission) error {
	if !m.CheckPermission(userID, permission) {
		return fmt.Errorf("rbac: user %q is not authorized to %s", userID, action)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	username := ""
	if user, ok := m.users[userID]; ok {
		username = user.Username
	}
	m.logLocked(Event{Timestamp: time.Now(), UserID: userID, Username: username, Action: action, Permission: permission, Result: "AUTHORIZED"})
	return nil
}

// GetUser returns the registered user with the given ID.
func (m *Manager) GetUser(userID string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, exists := m.users[userID]
	if !exists {
		return nil, fmt.Errorf("rbac: user %q not found", userID)
	}
	return user, nil
}

// UpdateUserRole changes userID's role and recomputes its permission set.
func (m *Manager) UpdateUserRole(userID string, newRole Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, exists := m.users[userID]
	if !exists {
		return fmt.Errorf("rbac: user %q not found", userID)
	}
	perms, ok := m.rolePerms[newRole]
	if !ok {
		return fmt.Errorf("rbac: unknown role %q", newRole)
	}
	oldRole := user.Role
	user.Role = newRole
	user.Permissions = perms
	m.logLocked(Event{Timestamp: time.Now(), UserID: "system", Action: "ROLE_CHANGE", Result: "SUCCESS", Details: fmt.Sprintf("%s: %s -> %s", userID, oldRole, newRole)})
	return nil
}

func (m *Manager) logLocked(event Event) {
	m.auditLog = append(m.auditLog, event)
}

// AuditLog returns a copy of the access-control audit log.
func (m *Manager) AuditLog() []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Event, len(m.auditLog))
	copy(out, m.auditLog)
	return out
}
