// Package preferences remembers each client's last converter selection
// through the injected key/value store.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"unit-converter/internal/kvstore"
	"unit-converter/internal/units"
)

var (
	ErrNotFound         = errors.New("preference not found")
	ErrInvalidClientID  = errors.New("invalid client id")
	ErrInvalidSelection = errors.New("invalid selection")
)

const maxClientIDLen = 128

// Preference is the selection a client last used.
type Preference struct {
	Category  units.Category `msgpack:"c" json:"category"`
	From      string         `msgpack:"f" json:"from"`
	To        string         `msgpack:"t" json:"to"`
	UpdatedAt time.Time      `msgpack:"u" json:"updated_at"`
}

// Validate checks the selection against the unit table.
func (p Preference) Validate() error {
	if !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidSelection, p.Category)
	}
	if _, ok := units.Lookup(p.Category, p.From); !ok {
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidSelection, p.From)
	}
	if _, ok := units.Lookup(p.Category, p.To); !ok {
		return fmt.Errorf("%w: unknown unit %q", ErrInvalidSelection, p.To)
	}
	return nil
}

// Service stores preferences under prefix+"pref:"+clientID.
type Service struct {
	store  kvstore.KeyValueStore
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewService(store kvstore.KeyValueStore, prefix string, ttl time.Duration) *Service {
	return &Service{store: store, prefix: prefix, ttl: ttl, now: time.Now}
}

func (s *Service) key(clientID string) (string, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" || len(clientID) > maxClientIDLen || strings.ContainsAny(clientID, " \t\r\n") {
		return "", ErrInvalidClientID
	}
	return s.prefix + "pref:" + clientID, nil
}

// Get returns the stored preference of clientID.
func (s *Service) Get(ctx context.Context, clientID string) (Preference, error) {
	key, err := s.key(clientID)
	if err != nil {
		return Preference{}, err
	}

	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return Preference{}, ErrNotFound
	}
	if err != nil {
		return Preference{}, fmt.Errorf("load preference: %w", err)
	}

	var p Preference
	if err := msgpack.Unmarshal(raw, &p); err != nil {
		return Preference{}, fmt.Errorf("decode preference: %w", err)
	}
	return p, nil
}

// Save validates p, stamps it and stores it for clientID.
func (s *Service) Save(ctx context.Context, clientID string, p Preference) (Preference, error) {
	key, err := s.key(clientID)
	if err != nil {
		return Preference{}, err
	}
	if err := p.Validate(); err != nil {
		return Preference{}, err
	}

	p.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)

	raw, err := msgpack.Marshal(p)
	if err != nil {
		return Preference{}, fmt.Errorf("encode preference: %w", err)
	}
	if err := s.store.Set(ctx, key, raw, s.ttl); err != nil {
		return Preference{}, fmt.Errorf("store preference: %w", err)
	}
	return p, nil
}

// Delete forgets the preference of clientID. Deleting a missing preference
// is not an error.
func (s *Service) Delete(ctx context.Context, clientID string) error {
	key, err := s.key(clientID)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete preference: %w", err)
	}
	return nil
}
