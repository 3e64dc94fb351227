package service

import (
	"context"
	"time"

	"fin-jurist-be/internal/config"
	"fin-jurist-be/internal/dto"
	"fin-jurist-be/internal/entity"
	"fin-jurist-be/internal/pkg/logger"
	"fin-jurist-be/internal/pkg/serverutils"
	"fin-jurist-be/internal/repository/specification"
	"fin-jurist-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// UserExists backs the authorization gate: a token whose subject no
	// longer resolves to a row is rejected.
	UserExists(ctx context.Context, userId uint) (bool, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        config.AuthConfig
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, cfg config.AuthConfig, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		cfg:        cfg,
		log:        log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, serverutils.Internal("Failed to check existing user", err)
	}
	if existing != nil {
		return nil, serverutils.Conflict("Email already registered")
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, serverutils.Internal("Failed to hash password", err)
	}

	// 3. Create User Entity
	user := &entity.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, serverutils.Internal("Failed to create user", err)
	}

	s.log.Info("auth", "User registered", map[string]interface{}{
		"user_id": user.Id,
	})

	// 4. Issue token
	token, err := s.issueToken(user)
	if err != nil {
		return nil, serverutils.Internal("Failed to sign token", err)
	}

	return s.authResponse(token, user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, serverutils.Internal("Failed to look up user", err)
	}
	if user == nil {
		return nil, serverutils.Unauthorized("Incorrect email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.Unauthorized("Incorrect email or password")
	}

	if !user.IsActive {
		return nil, serverutils.BadRequest("Inactive user")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, serverutils.Internal("Failed to sign token", err)
	}

	return s.authResponse(token, user), nil
}

func (s *authService) UserExists(ctx context.Context, userId uint) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUserID{ID: userId})
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func (s *authService) issueToken(user *entity.User) (string, error) {
	expiry := time.Duration(s.cfg.TokenExpiryMinutes) * time.Minute

	claims := jwt.MapClaims{
		"user_id": user.Id,
		"exp":     time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JwtSecret))
}

func (s *authService) authResponse(token string, user *entity.User) *dto.AuthResponse {
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: dto.UserDTO{
			Id:        user.Id,
			Email:     user.Email,
			FullName:  user.FullName,
			CreatedAt: user.CreatedAt,
		},
	}
}
