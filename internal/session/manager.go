package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/2beens/fitsync/internal/events"
	"github.com/2beens/fitsync/internal/telemetry/metrics"
	"github.com/2beens/fitsync/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

var ErrNotAuthenticated = errors.New("not signed in")

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

type Identity struct {
	Email string `json:"email"`
	Login string `json:"login"`
}

type publisher interface {
	Publish(e events.Event)
}

// Manager owns the credentials of the current user. Reads are local only,
// the network is touched by Login and Register.
type Manager struct {
	mu    sync.RWMutex
	creds *Credentials

	store          Store
	api            authAPI
	bus            publisher
	metricsManager *metrics.Manager

	// Now is replaceable in tests.
	Now func() time.Time
}

func NewManager(store Store, api authAPI, bus publisher, metricsManager *metrics.Manager) (*Manager, error) {
	creds, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	m := &Manager{
		creds:          creds,
		store:          store,
		api:            api,
		bus:            bus,
		metricsManager: metricsManager,
		Now:            time.Now,
	}

	if creds != nil {
		log.Debugf("session: restored session for [%s]", creds.Email)
	}

	return m, nil
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.creds != nil && m.creds.Token != ""
}

func (m *Manager) State() State {
	if m.IsAuthenticated() {
		return Authenticated
	}
	return Anonymous
}

// Token implements fitapi.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.creds == nil {
		return ""
	}
	return m.creds.Token
}

func (m *Manager) Identity() (Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.creds == nil {
		return Identity{}, false
	}

	login := m.creds.Login
	if login == "" {
		login = LoginFromEmail(m.creds.Email)
	}
	return Identity{Email: m.creds.Email, Login: login}, true
}

func (m *Manager) TokenInfo() TokenInfo {
	m.mu.RLock()
	creds := m.creds
	m.mu.RUnlock()

	if creds == nil {
		return TokenInfo{Status: TokenMalformed}
	}
	return InspectToken(creds.Token, creds.IssuedAt, m.Now())
}

func (m *Manager) Login(ctx context.Context, email, password string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.login")
	defer tracing.EndSpanWithErrCheck(span, &err)

	email = strings.TrimSpace(email)
	if err := validateLogin(email, password); err != nil {
		return err
	}

	token, err := m.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	creds := &Credentials{
		Token:    token,
		Email:    email,
		Login:    LoginFromEmail(email),
		IssuedAt: m.Now(),
	}
	if err := m.store.Save(creds); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	m.mu.Lock()
	m.creds = creds
	m.mu.Unlock()

	log.Infof("session: signed in as [%s]", email)
	m.publish(events.AuthChanged(true))

	return nil
}

// Register creates the account and signs in with it.
func (m *Manager) Register(ctx context.Context, email, password, confirm string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.register")
	defer tracing.EndSpanWithErrCheck(span, &err)

	email = strings.TrimSpace(email)
	if err := validateRegistration(email, password, confirm); err != nil {
		return err
	}

	if err := m.api.Register(ctx, email, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	log.Infof("session: registered [%s]", email)

	return m.Login(ctx, email, password)
}

func (m *Manager) Logout() error {
	m.mu.Lock()
	m.creds = nil
	err := m.store.Clear()
	m.mu.Unlock()

	m.publish(events.AuthChanged(false))

	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Invalidate drops a session the API no longer accepts. It reports whether
// there was a session to drop; only then is the change broadcast.
func (m *Manager) Invalidate(reason string) bool {
	m.mu.Lock()
	if m.creds == nil {
		m.mu.Unlock()
		return false
	}
	email := m.creds.Email
	m.creds = nil
	if err := m.store.Clear(); err != nil {
		log.Errorf("session: clear invalidated session: %s", err)
	}
	m.mu.Unlock()

	log.Warnf("session: dropped session of [%s]: %s", email, reason)
	if m.metricsManager != nil {
		m.metricsManager.CounterSessionInvalidated.Inc()
	}
	m.publish(events.AuthChanged(false))

	return true
}

// CheckExpiry inspects the current token, warns when it is about to expire and
// invalidates it once it has.
func (m *Manager) CheckExpiry() TokenInfo {
	if !m.IsAuthenticated() {
		return TokenInfo{Status: TokenMalformed}
	}

	info := m.TokenInfo()
	switch {
	case info.Status == TokenExpired:
		m.Invalidate("token expired")
	case info.Status == TokenMalformed:
		m.Invalidate("token malformed")
	case info.ExpiringSoon:
		log.Warnf("session: token expires at %s, sign in again soon", info.ExpiresAt.Format(time.RFC3339))
	}

	return info
}

// MonitorExpiry runs CheckExpiry right away and then on every interval, until ctx is done.
func (m *Manager) MonitorExpiry(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.CheckExpiry()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.CheckExpiry()
		}
	}
}

func (m *Manager) publish(e events.Event) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}
