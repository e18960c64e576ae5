package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/dmitrijs2005/userserver/internal/dbx"
	"github.com/dmitrijs2005/userserver/internal/logging"
	"github.com/dmitrijs2005/userserver/internal/server/auth"
	"github.com/dmitrijs2005/userserver/internal/server/config"
	"github.com/dmitrijs2005/userserver/internal/server/models"
	"github.com/dmitrijs2005/userserver/internal/server/pagination"
	"github.com/dmitrijs2005/userserver/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/userserver/internal/server/repositories/profiles"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// fakeAccounts keeps accounts in memory, keyed by email.
type fakeAccounts struct {
	mu       sync.Mutex
	byEmail  map[string]*models.Account
	nextID   uint64
	err      error
	listIn   accounts.ListFilter
	listOpt  pagination.ListOption
	listOut  pagination.Page[models.AccountView]
	findOut  *models.AccountView
	updated  int
	noUpdate bool
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: map[string]*models.Account{}}
}

func (f *fakeAccounts) Create(_ context.Context, email, hash string) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.byEmail[email]; ok {
		return 0, common.ErrorAlreadyExists
	}
	f.nextID++
	f.byEmail[email] = &models.Account{ID: f.nextID, Email: email, Hash: hash}
	return f.nextID, nil
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	acc, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *acc
	return &cp, nil
}

func (f *fakeAccounts) UpdateHash(_ context.Context, email, hash string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.noUpdate {
		return 0, nil
	}
	acc, ok := f.byEmail[email]
	if !ok {
		return 0, nil
	}
	acc.Hash = hash
	f.updated++
	return 1, nil
}

func (f *fakeAccounts) Find(_ context.Context, id uint64) (*models.AccountView, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.findOut == nil || f.findOut.ID != id {
		return nil, common.ErrorNotFound
	}
	return f.findOut, nil
}

func (f *fakeAccounts) List(_ context.Context, filter accounts.ListFilter, opt pagination.ListOption) (pagination.Page[models.AccountView], error) {
	f.listIn, f.listOpt = filter, opt
	if f.err != nil {
		return pagination.Page[models.AccountView]{}, f.err
	}
	return f.listOut, nil
}

type fakeProfiles struct {
	created   []*models.Profile
	stored    *models.Profile
	createErr error
	getErr    error
	updateErr error
}

func (f *fakeProfiles) Create(_ context.Context, p *models.Profile) (*models.Profile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = uint64(len(f.created) + 1)
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeProfiles) GetForUpdate(_ context.Context, id uint64) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil || f.stored.ID != id {
		return nil, common.ErrorNotFound
	}
	cp := *f.stored
	return &cp, nil
}

func (f *fakeProfiles) Update(_ context.Context, p *models.Profile) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *p
	f.stored = &cp
	return nil
}

type fakeRepoManager struct {
	a *fakeAccounts
	p *fakeProfiles
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository       { return m.a }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository       { return m.p }

type fixture struct {
	svc   *AccountService
	mock  sqlmock.Sqlmock
	rm    *fakeRepoManager
	clock *time.Time
	tok   *auth.TokenIssuer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := &fixture{
		mock:  mock,
		rm:    &fakeRepoManager{a: newFakeAccounts(), p: &fakeProfiles{}},
		clock: &now,
	}
	f.tok = auth.NewTokenIssuer("jwt-secret", auth.WithClock(func() time.Time { return *f.clock }))

	// cheap argon2 parameters keep the suite fast
	hasher := auth.NewPasswordHasherWithParams("pw-secret", auth.Argon2Params{Time: 1, Memory: 64, Threads: 1, KeyLen: 32})

	cfg := &config.Config{AccessTokenTTL: time.Hour, RefreshTokenTTL: 7 * 24 * time.Hour}
	f.svc = NewAccountService(db, f.rm, hasher, f.tok, cfg, logging.Nop{})
	return f
}
