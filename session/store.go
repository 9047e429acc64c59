// Package session owns the process-wide authenticated-user state of the
// console client. The Store is the single writer; every other component
// (guard, permission evaluator, menu consumers) reads immutable snapshots.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/rentora/console-client/api"
	"github.com/rentora/console-client/claims"
	"github.com/rentora/console-client/routes"
)

// State is the session lifecycle state.
type State int

const (
	// StateAnonymous is the empty session: no token, no claims.
	StateAnonymous State = iota

	// StateAuthenticating is the window between submitting credentials and
	// the login flow completing.
	StateAuthenticating

	// StateAuthenticated means a token is held. The profile may still be in
	// flight; Snapshot.Tier reads normal until it lands.
	StateAuthenticated
)

// API is the slice of the wire client the store depends on.
type API interface {
	Login(ctx context.Context, creds api.Credentials) (string, error)
	Register(ctx context.Context, reg api.Registration) error
	Me(ctx context.Context, token string) (api.Me, error)
}

// Snapshot is a read-only copy of the session handed to the guard and the
// permission evaluator. Claims is nil when there is no token or the
// persisted token failed to decode.
type Snapshot struct {
	State  State
	Token  string
	Claims *claims.Claims
	User   *api.Profile
	Tier   Tier
}

// Authenticated reports whether a token is held.
func (s Snapshot) Authenticated() bool {
	return s.Token != ""
}

// Role returns the session's role, RoleUnknown when claims are absent.
func (s Snapshot) Role() claims.Role {
	if s.Claims == nil {
		return claims.RoleUnknown
	}
	return s.Claims.Role
}

// Store holds the session and performs its lifecycle transitions. Construct
// one per process and inject it; there is no package-level instance.
type Store struct {
	mu     sync.RWMutex
	state  State
	token  string
	claims *claims.Claims
	user   *api.Profile
	tier   Tier

	api     API
	storage TokenStorage
	nav     Navigator
	logger  *zap.Logger
}

// New creates a Store. All dependencies are required.
func New(apiClient API, storage TokenStorage, nav Navigator, logger *zap.Logger) (*Store, error) {
	if apiClient == nil {
		return nil, errNilDependency("api client")
	}
	if storage == nil {
		return nil, errNilDependency("token storage")
	}
	if nav == nil {
		return nil, errNilDependency("navigator")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		state:   StateAnonymous,
		tier:    TierNormal,
		api:     apiClient,
		storage: storage,
		nav:     nav,
		logger:  logger,
	}, nil
}

// Snapshot returns a read-only copy of the current session.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		State: s.state,
		Token: s.token,
		Tier:  s.tier,
	}
	if s.claims != nil {
		c := *s.claims
		snap.Claims = &c
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Hydrate restores the session from persisted storage at process start. The
// token is decoded synchronously so the first render already knows the role;
// the profile fetch runs in the background and is deliberately not awaited,
// so the tier reads normal until it resolves. Hydrate never fails the boot:
// an unreadable store or undecodable token leaves the session usable.
func (s *Store) Hydrate(ctx context.Context) {
	token, err := s.storage.Load()
	if err != nil {
		s.logger.Warn("failed to load persisted token", zap.Error(err))
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	s.token = token
	s.state = StateAuthenticated
	if decoded, err := claims.Decode(token); err != nil {
		// Tokened but roleless: keep the token, let the server decide
		// whether it is still good.
		s.logger.Warn("failed to decode persisted token", zap.Error(err))
		s.claims = nil
	} else {
		s.claims = &decoded
	}
	s.mu.Unlock()

	s.logger.Debug("session hydrated", zap.String("role", s.Snapshot().Role().String()))

	go s.FetchProfile(ctx)
}

// Login authenticates with the backend. On success the token is persisted,
// claims are decoded, the profile fetch is awaited so the landing decision
// sees fresh role and tier, and the navigator is pointed at the role's
// landing page. On failure the server's message is returned and the session
// is left unchanged.
func (s *Store) Login(ctx context.Context, creds api.Credentials) error {
	s.mu.Lock()
	previous := s.state
	s.state = StateAuthenticating
	s.mu.Unlock()

	token, err := s.api.Login(ctx, creds)
	if err != nil {
		s.mu.Lock()
		s.state = previous
		s.mu.Unlock()
		s.logger.Warn("login failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.token = token
	if decoded, decodeErr := claims.Decode(token); decodeErr != nil {
		s.logger.Warn("failed to decode token", zap.Error(decodeErr))
		s.claims = nil
	} else {
		s.claims = &decoded
	}
	s.state = StateAuthenticated
	s.mu.Unlock()

	if err := s.storage.Save(token); err != nil {
		s.logger.Warn("failed to persist token", zap.Error(err))
	}

	// Awaited: the landing redirect must see up-to-date role and tier.
	s.FetchProfile(ctx)

	role := s.Snapshot().Role()
	s.logger.Info("login succeeded", zap.String("role", role.String()))
	s.nav.NavigateTo(routes.Landing(role.IsSuperAdmin()))
	return nil
}

// Register creates an account and sends the user to the login page. It does
// not authenticate.
func (s *Store) Register(ctx context.Context, reg api.Registration) error {
	if err := s.api.Register(ctx, reg); err != nil {
		s.logger.Warn("registration failed", zap.Error(err))
		return err
	}
	s.nav.NavigateTo(routes.Login)
	return nil
}

// FetchProfile refreshes the user record and subscription tier from /me. It
// is idempotent and never surfaces an error: with no token it is a no-op, a
// 401 forces a logout, and any other failure is logged with the session left
// unchanged.
func (s *Store) FetchProfile(ctx context.Context) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return
	}

	me, err := s.api.Me(ctx, token)
	if err != nil {
		if api.IsUnauthorized(err) {
			s.logger.Info("token rejected by server, logging out")
			s.Logout()
			return
		}
		s.logger.Warn("failed to fetch profile", zap.Error(err))
		return
	}

	s.mu.Lock()
	user := me.User
	s.user = &user
	s.tier = ParseTier(me.Tenant.SubscriptionTier)
	s.mu.Unlock()

	s.logger.Debug("profile refreshed",
		zap.String("user_id", me.User.ID),
		zap.String("tier", me.Tenant.SubscriptionTier))
}

// Logout resets the session to its empty defaults, clears persisted storage,
// and navigates to the login page. Safe to call repeatedly.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.claims = nil
	s.user = nil
	s.tier = TierNormal
	s.state = StateAnonymous
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("failed to clear persisted token", zap.Error(err))
	}

	s.nav.NavigateTo(routes.Login)
}
