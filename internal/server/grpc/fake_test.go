package grpc

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/dmitrijs2005/userserver/internal/server/models"
	"github.com/dmitrijs2005/userserver/internal/server/pagination"
	"github.com/dmitrijs2005/userserver/internal/server/services"
)

// fakeAccounts is a programmable AccountService. A non-nil err is returned
// from every method.
type fakeAccounts struct {
	mu sync.Mutex

	err error

	indexIn  services.IndexParams
	indexOut pagination.Page[models.AccountView]
	showOut  *models.AccountView
	pair     *services.TokenPair
	profile  *models.Profile
	updateIn services.ProfileUpdate

	passwordCalls int
}

func (f *fakeAccounts) Index(_ context.Context, p services.IndexParams) (pagination.Page[models.AccountView], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexIn = p
	return f.indexOut, f.err
}

func (f *fakeAccounts) Show(_ context.Context, id uint64) (*models.AccountView, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.showOut == nil || f.showOut.ID != id {
		return nil, common.ErrorNotFound
	}
	return f.showOut, nil
}

func (f *fakeAccounts) Store(_ context.Context, email, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return email, nil
}

func (f *fakeAccounts) Login(context.Context, string, string) (*services.TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pair, nil
}

func (f *fakeAccounts) RefreshToken(_ context.Context, refresh string) (*services.TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.TokenPair{AccessToken: "new-access", RefreshToken: refresh}, nil
}

func (f *fakeAccounts) UpdateProfile(_ context.Context, u services.ProfileUpdate) (*models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateIn = u
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeAccounts) UpdatePassword(context.Context, string, string, string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passwordCalls++
	if f.err != nil {
		return false, f.err
	}
	return true, nil
}

func sampleView() *models.AccountView {
	return &models.AccountView{
		ID:       5,
		Email:    sql.NullString{String: "a@b.com", Valid: true},
		Nickname: sql.NullString{String: "neo", Valid: true},
		Gender:   sql.NullInt32{Int32: 1, Valid: true},
		Birthday: sql.NullTime{Time: time.Date(1990, 5, 17, 8, 30, 0, 0, time.UTC), Valid: true},
	}
}

func wrapUnauthorized(cause string) error {
	return fmt.Errorf("%w: %s", common.ErrorUnauthorized, cause)
}
