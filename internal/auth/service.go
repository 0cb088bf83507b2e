// Package auth manages the account directory and the current sessions.
// The directory maps lowercased emails to profile+password-hash entries and
// is committed to the key-value store after every successful mutation; the
// in-memory copy stays authoritative when a commit fails, so a full storage
// never takes the storefront down.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dhanamorganics/storefront/internal/common"
	"github.com/dhanamorganics/storefront/internal/config"
	"github.com/dhanamorganics/storefront/internal/kvstore"
	"github.com/dhanamorganics/storefront/internal/logging"
	"github.com/dhanamorganics/storefront/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	usersKey         = "dhanam_users"
	sessionKeyPrefix = "dhanam_session:"
)

// timeNow is a test seam.
var timeNow = time.Now

type Service struct {
	kv              kvstore.Store
	logger          logging.Logger
	secretKey       []byte
	sessionValidity time.Duration

	mu        sync.Mutex
	directory map[string]models.DirectoryEntry
	sessions  map[string]models.UserProfile

	subMu sync.Mutex
	subs  []func()
}

func NewService(ctx context.Context, kv kvstore.Store, logger logging.Logger, cfg *config.Config) *Service {
	s := &Service{
		kv:              kv,
		logger:          logger.With("store", "auth"),
		secretKey:       []byte(cfg.SecretKey),
		sessionValidity: cfg.SessionValidityDuration,
		sessions:        make(map[string]models.UserProfile),
	}
	s.directory = s.loadDirectory(ctx)
	return s
}

// Subscribe registers fn to be called synchronously after every committed
// mutation.
func (s *Service) Subscribe(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Service) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// loadDirectory restores the account directory from storage. A missing or
// corrupt entry yields an empty directory, never an error.
func (s *Service) loadDirectory(ctx context.Context) map[string]models.DirectoryEntry {
	raw, err := s.kv.Get(ctx, usersKey)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(ctx, "could not read account directory, starting empty", "error", err)
		}
		return make(map[string]models.DirectoryEntry)
	}

	dir := make(map[string]models.DirectoryEntry)
	if err := json.Unmarshal([]byte(raw), &dir); err != nil {
		s.logger.Warn(ctx, "corrupt account directory, starting empty", "error", err)
		return make(map[string]models.DirectoryEntry)
	}
	return dir
}

// commitDirectory persists the directory. Failure is logged and swallowed;
// the in-memory copy remains authoritative.
func (s *Service) commitDirectory(ctx context.Context) {
	b, err := json.Marshal(s.directory)
	if err != nil {
		s.logger.Error(ctx, "could not encode account directory", "error", err)
		return
	}
	if err := s.kv.Set(ctx, usersKey, string(b)); err != nil {
		s.logger.Warn(ctx, "skipping directory persistence", "error", err)
	}
}

func (s *Service) commitSession(ctx context.Context, profile models.UserProfile) {
	b, err := json.Marshal(profile)
	if err != nil {
		s.logger.Error(ctx, "could not encode session", "error", err)
		return
	}
	if err := s.kv.Set(ctx, sessionKeyPrefix+profile.ID, string(b)); err != nil {
		s.logger.Warn(ctx, "skipping session persistence", "error", err)
	}
}

// Signup registers a new account and opens a session for it. It fails with
// common.ErrEmailTaken when the lowercased email is already registered.
func (s *Service) Signup(ctx context.Context, name, email, password string) (models.UserProfile, string, error) {
	if name == "" || email == "" || password == "" {
		return models.UserProfile{}, "", common.ErrValidation
	}

	key := strings.ToLower(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserProfile{}, "", common.ErrInternal
	}

	s.mu.Lock()
	if _, exists := s.directory[key]; exists {
		s.mu.Unlock()
		return models.UserProfile{}, "", common.ErrEmailTaken
	}

	profile := models.UserProfile{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     key,
		CreatedAt: timeNow().UTC(),
	}

	s.directory[key] = models.DirectoryEntry{Profile: profile, Password: string(hash)}
	s.commitDirectory(ctx)

	s.sessions[profile.ID] = profile
	s.commitSession(ctx, profile)
	s.mu.Unlock()

	token, err := GenerateToken(profile.ID, s.secretKey, s.sessionValidity)
	if err != nil {
		return models.UserProfile{}, "", common.ErrInternal
	}

	s.notify()
	return profile, token, nil
}

// Login checks the supplied credentials against the directory. Unknown email
// and wrong password both map to common.ErrInvalidCredentials; no further
// detail is surfaced.
func (s *Service) Login(ctx context.Context, email, password string) (models.UserProfile, string, error) {
	key := strings.ToLower(email)

	s.mu.Lock()
	entry, ok := s.directory[key]
	if !ok {
		s.mu.Unlock()
		return models.UserProfile{}, "", common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entry.Password), []byte(password)); err != nil {
		s.mu.Unlock()
		return models.UserProfile{}, "", common.ErrInvalidCredentials
	}

	s.sessions[entry.Profile.ID] = entry.Profile
	s.commitSession(ctx, entry.Profile)
	s.mu.Unlock()

	token, err := GenerateToken(entry.Profile.ID, s.secretKey, s.sessionValidity)
	if err != nil {
		return models.UserProfile{}, "", common.ErrInternal
	}

	s.notify()
	return entry.Profile, token, nil
}

// Logout clears the user's session. The account directory is untouched.
func (s *Service) Logout(ctx context.Context, userID string) {
	s.mu.Lock()
	delete(s.sessions, userID)
	if err := s.kv.Remove(ctx, sessionKeyPrefix+userID); err != nil {
		s.logger.Warn(ctx, "could not remove persisted session", "error", err)
	}
	s.mu.Unlock()

	s.notify()
}

// CurrentUser validates a session token and restores the session, falling
// back to the persisted copy after a restart. A corrupt persisted session
// reads as logged out.
func (s *Service) CurrentUser(ctx context.Context, token string) (models.UserProfile, error) {
	userID, err := UserIDFromToken(token, s.secretKey)
	if err != nil {
		return models.UserProfile{}, common.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if profile, ok := s.sessions[userID]; ok {
		return profile, nil
	}

	raw, err := s.kv.Get(ctx, sessionKeyPrefix+userID)
	if err != nil {
		return models.UserProfile{}, common.ErrUnauthorized
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		s.logger.Warn(ctx, "corrupt persisted session, treating as logged out", "error", err)
		return models.UserProfile{}, common.ErrUnauthorized
	}

	s.sessions[userID] = profile
	return profile, nil
}

// UpdateProfile merges the set fields of upd into the user's session profile,
// commits the session, and mirrors the change into the directory entry.
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (models.UserProfile, error) {
	s.mu.Lock()

	profile, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return models.UserProfile{}, common.ErrUnauthorized
	}

	if upd.Name != nil {
		profile.Name = *upd.Name
	}
	if upd.Phone != nil {
		profile.Phone = *upd.Phone
	}
	if upd.Avatar != nil {
		profile.Avatar = *upd.Avatar
	}
	if upd.Address != nil {
		profile.Address = *upd.Address
	}

	s.sessions[userID] = profile
	s.commitSession(ctx, profile)

	if entry, ok := s.directory[profile.Email]; ok {
		entry.Profile = profile
		s.directory[profile.Email] = entry
		s.commitDirectory(ctx)
	}
	s.mu.Unlock()

	s.notify()
	return profile, nil
}
