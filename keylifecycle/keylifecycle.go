// Package keylifecycle tracks the generation, activation, rotation, and
// destruction of key material, mirroring a FIPS-140-2-style key lifecycle
// state machine. Symmetric key bytes are locked into physical memory with
// mlock so they are never swapped to disk, and are zeroized on destruction;
// tracked material is real cryptoengine key material (an *aes.Cipher built
// from the generated bytes, or an imported *rsakey.PrivateKey), not an
// opaque blob.
package keylifecycle

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"cryptoengine/aes"
	"cryptoengine/rsakey"
)

// State is a key's position in its lifecycle.
type State int

const (
	StateGenerated State = iota
	StateActivated
	StateDeactivated
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateGenerated:
		return "generated"
	case StateActivated:
		return "activated"
	case StateDeactivated:
		return "deactivated"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// AuditEntry records one lifecycle event against a key.
type AuditEntry struct {
	Timestamp   time.Time
	EventType   string
	Description string
	OperatorID  string
}

// Key tracks one piece of key material through its lifecycle. Material is
// mlock'd while non-empty; callers must call Manager.Destroy to release it.
// Exactly one of Cipher (a symmetric key generated by this manager) or
// RSAKey (an asymmetric key imported from elsewhere, e.g. parsed from a PEM
// file) is populated, matching how the key was brought under management.
type Key struct {
	ID            string
	Material      []byte
	Cipher        *aes.Cipher
	RSAKey        *rsakey.PrivateKey
	Generated     time.Time
	Activated     time.Time
	Deactivated   time.Time
	Destroyed     time.Time
	State         State
	RotationCount int
	AuditTrail    []AuditEntry

	mu sync.RWMutex
}

func (k *Key) addAudit(eventType, description, operatorID string) {
	k.AuditTrail = append(k.AuditTrail, AuditEntry{
		Timestamp:   time.Now(),
		EventType:   eventType,
		Description: description,
		OperatorID:  operatorID,
	})
}

// Manager owns a set of keys by ID and serializes access to the set.
type Manager struct {
	keys             map[string]*Key
	rotationInterval time.Duration
	mu               sync.RWMutex
}

// NewManager builds a Manager that flags keys as due for rotation after
// rotationInterval has elapsed since activation.
func NewManager(rotationInterval time.Duration) *Manager {
	return &Manager{
		keys:             make(map[string]*Key),
		rotationInterval: rotationInterval,
	}
}

func mlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Mlock(b)
}

func munlockAndZero(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	_ = unix.Munlock(b)
}

// Generate creates keyLen bytes of random key material, mlocks it, and
// tracks it under keyID in the Generated state.
func (m *Manager) Generate(keyID string, keyLen int, operatorID string) (*Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.keys[keyID]; exists {
		return nil, fmt.Errorf("keylifecycle: key %q already exists", keyID)
	}

	material := make([]byte, keyLen)
	if _, err := rand.Read(material); err != nil {
		return nil, fmt.Errorf("keylifecycle: generating key material: %w", err)
	}
	if err := mlock(material); err != nil {
		return nil, fmt.Errorf("keylifecycle: mlock: %w", err)
	}

	cipher, err := aes.New(material)
	if err != nil {
		munlockAndZero(material)
		return nil, fmt.Errorf("keylifecycle: key material is not usable as an AES key: %w", err)
	}

	key := &Key{
		ID:        keyID,
		Material:  material,
		Cipher:    cipher,
		Generated: time.Now(),
		State:     StateGenerated,
	}
	key.addAudit("KEY_GENERATED", fmt.Sprintf("key %s generated (%d bytes)", keyID, keyLen), operatorID)
	m.keys[keyID] = key
	return key, nil
}

// ImportRSAKey brings an already-generated RSA private key under lifecycle
// management, starting it in the Generated state. Unlike Generate, no key
// material is minted here and nothing is mlock'd: biguint.Uint values are
// plain Go slices with no kernel page-locking hook, so an imported RSA key
// relies on the caller (and the garbage collector) rather than mlock for
// its time in memory.
func (m *Manager) ImportRSAKey(keyID string, priv rsakey.PrivateKey, operatorID string) (*Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.keys[keyID]; exists {
		return nil, fmt.Errorf("keylifecycle: key %q already exists", keyID)
	}

	key := &Key{
		ID:        keyID,
		RSAKey:    &priv,
		Generated: time.Now(),
		State:     StateGenerated,
	}
	key.addAudit("KEY_IMPORTED", fmt.Sprintf("RSA key %s imported", keyID), operatorID)
	m.keys[keyID] = key
	return key, nil
}

// Activate transitions a Generated key to Activated.
func (m *Manager) Activate(keyID, operatorID string) error {
	key, err := m.lookup(keyID)
	if err != nil {
		return err
	}
	key.mu.Lock()
	defer key.mu.Unlock()
	if key.State != StateGenerated {
		return fmt.Errorf("keylifecycle: key %q must be generated to activate, is %s", keyID, key.State)
	}
	key.Activated = time.Now()
	key.State = StateActivated
	key.addAudit("KEY_ACTIVATED", fmt.Sprintf("key %s activated", keyID), operatorID)
	return nil
}

// Rotate replaces an Activated key's material with freshly generated bytes
// of the same length, zeroizing the old material.
func (m *Manager) Rotate(keyID, operatorID string) error {
	key, err := m.lookup(keyID)
	if err != nil {
		return err
	}
	key.mu.Lock()
	defer key.mu.Unlock()
	if key.State != StateActivated {
		return fmt.Errorf("keylifecycle: only activated keys can be rotated, %q is %s", keyID, key.State)
	}
	if key.RSAKey != nil {
		return fmt.Errorf("keylifecycle: key %q is an imported RSA key, rotate by importing a replacement instead", keyID)
	}

	fresh := make([]byte, len(key.Material))
	if _, err := rand.Read(fresh); err != nil {
		return fmt.Errorf("keylifecycle: generating rotated material: %w", err)
	}
	if err := mlock(fresh); err != nil {
		return fmt.Errorf("keylifecycle: mlock: %w", err)
	}
	cipher, err := aes.New(fresh)
	if err != nil {
		munlockAndZero(fresh)
		return fmt.Errorf("keylifecycle: rotated material is not usable as an AES key: %w", err)
	}

	munlockAndZero(key.Material)
	key.Material = fresh
	key.Cipher = cipher
	key.RotationCount++
	key.addAudit("KEY_ROTATED", fmt.Sprintf("key %s rotated (count=%d)", keyID, key.RotationCount), operatorID)
	return nil
}

// Deactivate marks a key as no longer in active use, without destroying it.
func (m *Manager) Deactivate(keyID, operatorID string) error {
	key, err := m.lookup(keyID)
	if err != nil {
		return err
	}
	key.mu.Lock()
	defer key.mu.Unlock()
	key.Deactivated = time.Now()
	key.State = StateDeactivated
	key.addAudit("KEY_DEACTIVATED", fmt.Sprintf("key %s deactivated", keyID), operatorID)
	return nil
}

// Destroy zeroizes and munlocks a key's material and marks it Destroyed.
// The key entry itself, and its audit trail, remain queryable.
func (m *Manager) Destroy(keyID, operatorID string) error {
	key, err := m.lookup(keyID)
	if err != nil {
		return err
	}
	key.mu.Lock()
	defer key.mu.Unlock()

	munlockAndZero(key.Material)
	key.Cipher = nil
	key.RSAKey = nil
	key.Destroyed = time.Now()
	key.State = StateDestroyed
	key.addAudit("KEY_DESTROYED", fmt.Sprintf("key %s destroyed", keyID), operatorID)
	return nil
}

func (m *Manager) lookup(keyID string) (*Key, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	key, exists := m.keys[keyID]
	if !exists {
		return nil, fmt.Errorf("keylifecycle: key %q not found", keyID)
	}
	return key, nil
}

// Status returns a snapshot of keyID's lifecycle state.
func (m *Manager) Status(keyID string) (State, error) {
	key, err := m.lookup(keyID)
	if err != nil {
		return 0, err
	}
	key.mu.RLock()
	defer key.mu.RUnlock()
	return key.State, nil
}

// NeedingRotation returns the IDs of all Activated keys whose rotation
// interval has elapsed.
func (m *Manager) NeedingRotation() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var due []string
	now := time.Now()
	for id, key := range m.keys {
		key.mu.RLock()
		if key.State == StateActivated && now.Sub(key.Activated) >= m.rotationInterval {
			due = append(due, id)
		}
		key.mu.RUnlock()
	}
	return due
}

// AuditTrail returns a copy of keyID's audit log.
func (m *Manager) AuditTrail(keyID string) ([]AuditEntry, error) {
	key, err := m.lookup(keyID)
	if err != nil {
		return nil, err
	}
	key.mu.RLock()
	defer key.mu.RUnlock()
	trail := make([]AuditEntry, len(key.AuditTrail))
	copy(trail, key.AuditTrail)
	return trail, nil
}
