package keylifecycle

import (
	"cryptoengine/rbac"
	"cryptoengine/rsakey"
)

// GuardedManager wraps a Manager with rbac authorization, so that the
// lifecycle operations that mint, rotate, or destroy real key material
// cannot be reached by a caller whose role doesn't grant the matching
// permission.
type GuardedManager struct {
	Manager *Manager
	RBAC    *rbac.Manager
}

// NewGuardedManager pairs manager with an rbac.Manager that authorizes
// every call before it reaches manager.
func NewGuardedManager(manager *Manager, access *rbac.Manager) *GuardedManager {
	return &GuardedManager{Manager: manager, RBAC: access}
}

// Generate authorizes userID for PermGenerateKey before delegating to
// Manager.Generate.
func (g *GuardedManager) Generate(userID, keyID string, keyLen int) (*Key, error) {
	if err := g.RBAC.Authorize(userID, "GENERATE_KEY", rbac.PermGenerateKey); err != nil {
		return nil, err
	}
	return g.Manager.Generate(keyID, keyLen, userID)
}

// ImportRSAKey authorizes userID for PermGenerateKey before delegating to
// Manager.ImportRSAKey; importing a key is treated the same as minting one.
func (g *GuardedManager) ImportRSAKey(userID, keyID string, priv rsakey.PrivateKey) (*Key, error) {
	if err := g.RBAC.Authorize(userID, "IMPORT_RSA_KEY", rbac.PermGenerateKey); err != nil {
		return nil, err
	}
	return g.Manager.ImportRSAKey(keyID, priv, userID)
}

// Rotate authorizes userID for PermRotateKey before delegating to
// Manager.Rotate.
func (g *GuardedManager) Rotate(userID, keyID string) error {
	if err := g.RBAC.Authorize(userID, "ROTATE_KEY", rbac.PermRotateKey); err != nil {
		return err
	}
	return g.Manager.Rotate(keyID, userID)
}

// Destroy authorizes userID for PermDestroyKey before delegating to
// Manager.Destroy.
func (g *GuardedManager) Destroy(userID, keyID string) error {
	if err := g.RBAC.Authorize(userID, "DESTROY_KEY", rbac.PermDestroyKey); err != nil {
		return err
	}
	return g.Manager.Destroy(keyID, userID)
}

// AuditTrail authorizes userID for PermViewAuditLog before delegating to
// Manager.AuditTrail.
func (g *GuardedManager) AuditTrail(userID, keyID string) ([]AuditEntry, error) {
	if err := g.RBAC.Authorize(userID, "VIEW_KEY_AUDIT_TRAIL", rbac.PermViewAuditLog); err != nil {
		return nil, err
	}
	return g.Manager.AuditTrail(keyID)
}
