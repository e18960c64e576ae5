// Package services contains server-side business logic. AccountService
// handles registration, login, token refresh, profile edits and password
// changes on top of the account and profile repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/dmitrijs2005/userserver/internal/dbx"
	"github.com/dmitrijs2005/userserver/internal/logging"
	"github.com/dmitrijs2005/userserver/internal/server/auth"
	"github.com/dmitrijs2005/userserver/internal/server/config"
	"github.com/dmitrijs2005/userserver/internal/server/models"
	"github.com/dmitrijs2005/userserver/internal/server/pagination"
	"github.com/dmitrijs2005/userserver/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/userserver/internal/server/repositories/repomanager"
)

// nicknamePrefix starts every generated nickname.
const nicknamePrefix = "user_"

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// IndexParams is a list request. IDs is a comma separated list of account
// ids; empty strings disable a filter.
type IndexParams struct {
	IDs      string
	Email    string
	Nickname string
	Page     int64
	Limit    int64
}

// ProfileUpdate is a partial profile edit. Empty Nickname, zero Gender and
// empty Birthday leave the stored values unchanged. Birthday uses
// models.BirthdayLayout.
type ProfileUpdate struct {
	ID       uint64
	Nickname string
	Gender   models.Gender
	Birthday string
}

type AccountService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	hasher          *auth.PasswordHasher
	tokens          *auth.TokenIssuer
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	logger          logging.Logger
}

func NewAccountService(
	db *sql.DB,
	m repomanager.RepositoryManager,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenIssuer,
	cfg *config.Config,
	l logging.Logger,
) *AccountService {
	return &AccountService{
		db:              db,
		repomanager:     m,
		hasher:          hasher,
		tokens:          tokens,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
		logger:          l.With("module", "account_service"),
	}
}

// Index lists accounts with their profiles. Unset page and limit fall back
// to pagination defaults.
func (s *AccountService) Index(ctx context.Context, p IndexParams) (pagination.Page[models.AccountView], error) {
	ids, err := parseIDs(p.IDs)
	if err != nil {
		return pagination.Page[models.AccountView]{}, err
	}

	opt := pagination.ListOption{Page: p.Page, Limit: p.Limit}.ApplyDefaults()
	filter := accounts.ListFilter{IDs: ids, Email: p.Email, Nickname: p.Nickname}

	page, err := s.repomanager.Accounts(s.db).List(ctx, filter, opt)
	if err != nil {
		return pagination.Page[models.AccountView]{}, fmt.Errorf("error listing accounts: %w", err)
	}
	return page, nil
}

func (s *AccountService) Show(ctx context.Context, id uint64) (*models.AccountView, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: id is required", common.ErrArgumentInvalid)
	}
	return s.repomanager.Accounts(s.db).Find(ctx, id)
}

// Store registers an account and its default profile in one transaction
// and returns the stored email.
func (s *AccountService) Store(ctx context.Context, email, password string) (string, error) {
	if err := (credentialsInput{Email: email, Password: password}).Validate(); err != nil {
		return "", invalid(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	nickname, err := generateNickname()
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		id, err := s.repomanager.Accounts(tx).Create(ctx, email, hash)
		if err != nil {
			return err
		}
		_, err = s.repomanager.Profiles(tx).Create(ctx, &models.Profile{
			AccountID: id,
			Nickname:  nickname,
			Gender:    models.GenderUnknown,
		})
		return err
	})
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "account created", "email", email)
	return email, nil
}

// Login checks the password and issues an access/refresh pair. An unknown
// email and a wrong password both return common.ErrorUnauthorized; only the
// wrapped cause tells them apart.
func (s *AccountService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	acc, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: account not found", common.ErrorUnauthorized)
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(acc.Hash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrPasswordMismatch)
	}

	access, err := s.tokens.Issue(auth.GrantNormal, s.accessTokenTTL, acc.ID, acc.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.Issue(auth.GrantRefresh, s.refreshTokenTTL, acc.ID, acc.Email)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshToken exchanges a refresh-grant token for a new access token. The
// refresh token itself is returned unchanged.
func (s *AccountService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.GrantType != auth.GrantRefresh {
		return nil, fmt.Errorf("%w: grant type %q cannot refresh", common.ErrInvalidToken, claims.GrantType)
	}

	access, err := s.tokens.Issue(auth.GrantNormal, s.accessTokenTTL, claims.Subject, claims.Email)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refreshToken}, nil
}

// UpdateProfile applies u to the stored profile under a row lock and
// returns the resulting profile.
func (s *AccountService) UpdateProfile(ctx context.Context, u ProfileUpdate) (*models.Profile, error) {
	if err := u.Validate(); err != nil {
		return nil, invalid(err)
	}

	var birthday sql.NullTime
	if u.Birthday != "" {
		t, err := time.Parse(models.BirthdayLayout, u.Birthday)
		if err != nil {
			return nil, fmt.Errorf("%w: birthday: %v", common.ErrArgumentInvalid, err)
		}
		birthday = sql.NullTime{Time: t, Valid: true}
	}

	var profile *models.Profile
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Profiles(tx)

		p, err := repo.GetForUpdate(ctx, u.ID)
		if err != nil {
			return err
		}

		if u.Nickname != "" {
			p.Nickname = u.Nickname
		}
		if u.Gender != models.GenderUnknown {
			p.Gender = u.Gender
		}
		if birthday.Valid {
			p.Birthday = birthday
		}

		if err := repo.Update(ctx, p); err != nil {
			return err
		}
		profile = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdatePassword replaces the credential of email after checking
// oldPassword. Failures mirror Login.
func (s *AccountService) UpdatePassword(ctx context.Context, email, oldPassword, newPassword string) (bool, error) {
	in := passwordChangeInput{Email: email, OldPassword: oldPassword, NewPassword: newPassword}
	if err := in.Validate(); err != nil {
		return false, invalid(err)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		acc, err := repo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("%w: account not found", common.ErrorUnauthorized)
			}
			return err
		}

		ok, err := s.hasher.Verify(acc.Hash, oldPassword)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrPasswordMismatch)
		}

		hash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return err
		}

		n, err := repo.UpdateHash(ctx, email, hash)
		if err != nil {
			return err
		}
		if n == 0 {
			return common.ErrorNotFound
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	s.logger.Info(ctx, "password updated", "email", email)
	return true, nil
}

func parseIDs(raw string) ([]uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("%w: id %q", common.ErrArgumentInvalid, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func generateNickname() (string, error) {
	suffix, err := common.MakeRandHexString(8)
	if err != nil {
		return "", err
	}
	return nicknamePrefix + suffix, nil
}
