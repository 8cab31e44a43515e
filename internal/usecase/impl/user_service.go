// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "foodlog/internal/delivery/context"
	"foodlog/internal/domain/entity"
	domainerrors "foodlog/internal/domain/errors"
	"foodlog/internal/domain/repository"
	"foodlog/internal/domain/service"
	"foodlog/internal/usecase"
	"foodlog/internal/validation"
)

// placeholderPassword seeds the credential verified when a login has nothing real to check against.
const placeholderPassword = "foodlog-placeholder-credential"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	codec     service.CredentialCodec
	validator *validation.Validator
	logger    *slog.Logger

	placeholderOnce       sync.Once
	placeholderCredential string
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Codec    service.CredentialCodec
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:  params.UserRepo,
		codec:     params.Codec,
		validator: validation.New(),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account. Username and email are trimmed and the email lower-cased
// before validation; both must be unused, ignoring case.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.PublicUser, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	exists, err := srv.userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing user")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	credential, err := srv.codec.Encode(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to encode password", slog.Any("error", err))

		return nil, domainerrors.ErrCredentialProcessing
	}

	user := &entity.User{
		Username:           input.Username,
		Email:              input.Email,
		PasswordCredential: credential,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Another request registered the same name between the check and the insert.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return user.Public(), nil
}

// Login checks a username/password pair. Every way of failing after validation
// yields the same ErrInvalidCredentials so callers cannot tell which part was wrong.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*entity.PublicUser, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.verifyPlaceholder(ctx, input.Password)

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.HasCredential() {
		srv.log(ctx).Warn("User has no stored credential", slog.Int64("userID", user.ID))
		srv.verifyPlaceholder(ctx, input.Password)

		return nil, domainerrors.ErrInvalidCredentials
	}

	ok, err := srv.codec.Verify(input.Password, user.PasswordCredential)
	if err != nil {
		srv.log(ctx).Warn("Stored credential could not be verified", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if srv.codec.NeedsRehash(user.PasswordCredential) {
		srv.log(ctx).Info("Credential uses outdated parameters", slog.Int64("userID", user.ID))
	}

	return user.Public(), nil
}

// verifyPlaceholder spends one verification on a fixed credential so a login without a stored
// credential takes as long as one with a wrong password. The result is ignored.
func (srv *userService) verifyPlaceholder(ctx context.Context, password string) {
	srv.placeholderOnce.Do(func() {
		credential, err := srv.codec.Encode(placeholderPassword)
		if err != nil {
			srv.log(ctx).Warn("Failed to encode placeholder credential", slog.Any("error", err))

			return
		}
		srv.placeholderCredential = credential
	})

	if srv.placeholderCredential != "" {
		_, _ = srv.codec.Verify(password, srv.placeholderCredential)
	}
}

func (srv *userService) GetUser(ctx context.Context, id int64) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user.Public(), nil
}

func (srv *userService) ListUsers(ctx context.Context) ([]*entity.PublicUser, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	public := make([]*entity.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	return public, nil
}
