package commands

import (
	"context"
	"log/slog"

	"fieldbook/internal/domain/admin"
	reqdto "fieldbook/internal/handler/dto/request"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/pkg/jwt"
	"fieldbook/internal/pkg/password"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAdminInactive        = errs.New("admin account inactive")
	ErrAdminNotFound        = errs.New("admin user not found")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrDuplicateUsername    = errs.New("username already taken")
	ErrWeakPassword         = errs.New("password too weak")
	ErrInvalidAdminRole     = errs.New("invalid admin role")
)

type LoginResult struct {
	AdminID   uuid.UUID
	Role      admin.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	ChangePassword(ctx context.Context, adminID uuid.UUID, req reqdto.ChangePasswordRequest) error
	CreateAdmin(ctx context.Context, req reqdto.CreateAdminRequest) (*queries.AdminView, error)
	SetAdminActive(ctx context.Context, adminID uuid.UUID, active bool) error
}

type authCommandsImpl struct {
	uow          shared.UnitOfWork
	adminQueries queries.AdminQueries
	jwtService   *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, adminQueries queries.AdminQueries, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:          uow,
		adminQueries: adminQueries,
		jwtService:   jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		// Malformed credentials get the same answer as wrong ones
		return nil, ErrInvalidCredentials
	}

	snap, err := a.validateAdmin(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := admin.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Admins().UpdateLastLogin(ctx, tx.DB(), snap.ID)
	})
	if err != nil {
		// Login already succeeded, only the bookkeeping write failed
		slog.Warn("failed to update last login", "admin_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		AdminID: snap.ID,
		Role:    role,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := admin.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate the account still exists and is active
	snap, err := a.uow.CommandReads().AdminByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrAdminNotFound
	}
	if !snap.IsActive {
		return nil, ErrAdminInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	newRefreshToken, err := a.jwtService.GenerateRefreshToken(claims.UserID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (a *authCommandsImpl) ChangePassword(ctx context.Context, adminID uuid.UUID, req reqdto.ChangePasswordRequest) error {
	newPassword, err := admin.NewPassword(req.NewPassword)
	if err != nil {
		return errs.Mark(err, ErrWeakPassword)
	}

	snap, err := a.uow.CommandReads().AdminByID(ctx, adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAdminNotFound
		}
		return errs.Mark(err, ErrDatabaseOperation)
	}

	if err := password.Compare(snap.PasswordHash, req.CurrentPassword); err != nil {
		return ErrInvalidCredentials
	}

	newHash, err := password.Hash(newPassword.Value())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperation)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Admins().UpdatePasswordHash(ctx, tx.DB(), adminID, newHash); err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}

func (a *authCommandsImpl) CreateAdmin(ctx context.Context, req reqdto.CreateAdminRequest) (*queries.AdminView, error) {
	username, err := admin.NewUsername(req.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	pass, err := admin.NewPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrWeakPassword)
	}
	role, err := admin.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAdminRole)
	}

	hash, err := password.Hash(pass.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}

	entity := admin.NewAdminUser(username, hash, role)

	var adminID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		adminID, err = tx.Admins().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateUsername
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.adminQueries.GetByID(ctx, adminID)
}

func (a *authCommandsImpl) SetAdminActive(ctx context.Context, adminID uuid.UUID, active bool) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Admins().SetActive(ctx, tx.DB(), adminID, active); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAdminNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}

func (a *authCommandsImpl) validateAdmin(ctx context.Context, credentials reqdto.Credentials) (*shared.AdminSnapshot, error) {
	snap, err := a.uow.CommandReads().AdminByUsername(ctx, credentials.Username.Value())
	if err != nil {
		// Same error as a password mismatch to prevent username probing
		return nil, ErrInvalidCredentials
	}

	if err := password.Compare(snap.PasswordHash, credentials.Password.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	// A deactivated account answers like a bad credential so probing a
	// username with wrong passwords reveals nothing about its state
	if !snap.IsActive {
		return nil, ErrInvalidCredentials
	}

	return snap, nil
}
