package commands

import (
	"context"

	"acara-api/internal/domain/user"
	reqdto "acara-api/internal/handler/dto/request"
	"acara-api/internal/infra"
	"acara-api/internal/pkg/errs"
	"acara-api/internal/pkg/jwt"
	"acara-api/internal/pkg/password"
	"acara-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrDuplicateUser        = errs.New("username or email already taken")
	ErrInvalidActivation    = errs.New("invalid or already used activation code")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

const activationCodeLength = 32

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type RegisterResult struct {
	UserID uuid.UUID
	// ActivationCode is returned to the caller because outbound mail is out
	// of scope; the delivery channel owns getting it to the user.
	ActivationCode string
}

type JWTService interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role user.Role) (string, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type CodeGenerator interface {
	Generate(length int) (string, error)
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error)
	Activate(ctx context.Context, code string) error
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService JWTService
	codes      CodeGenerator
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService JWTService, codes CodeGenerator) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		codes:      codes,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*RegisterResult, error) {
	data, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(data.Password.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	activationCode, err := a.codes.Generate(activationCodeLength)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate activation code")
	}

	newUser := user.NewUser(data.FullName, data.Username, data.Email, hash, activationCode)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Users().Create(ctx, tx.DB(), newUser)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateUser)
		}
		return nil, err
	}

	return &RegisterResult{
		UserID:         newUser.ID(),
		ActivationCode: activationCode,
	}, nil
}

func (a *authCommandsImpl) Activate(ctx context.Context, code string) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Users().Activate(ctx, tx.DB(), code)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidActivation
		}
		return nil
	})
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	snapshot, err := a.uow.CommandReads().UserByIdentifier(ctx, req.TrimmedIdentifier())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	if err := password.ComparePassword(snapshot.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}

	pair, err := a.issueTokens(snapshot.ID, snapshot.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{UserID: snapshot.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Validate user still exists and is active
	snapshot, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}
	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(snapshot.ID, snapshot.Role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
