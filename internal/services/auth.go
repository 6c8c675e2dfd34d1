package services

import (
	"context"
	"errors"
	"time"

	"homehealhub/internal/config"
	"homehealhub/internal/logger"
	"homehealhub/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService — вход единственного администратора. Учётных записей нет:
// пароль сверяется с bcrypt-хэшем из конфига, в ответ выдаётся access-токен.
type AuthService struct {
	passwordHash string
	jwtSecret    string
	accessTTL    time.Duration
}

func NewAuthService(cfg *config.Config) *AuthService {
	ttl, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil || ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &AuthService{
		passwordHash: cfg.AdminPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		accessTTL:    ttl,
	}
}

func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	log := logger.WithCtx(ctx)

	if s.passwordHash == "" {
		log.Warn("Auth: вход выключен, ADMIN_PASSWORD_HASH не задан")
		return "", errors.New("вход администратора выключен")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		log.Warn("Auth: неверный пароль администратора")
		return "", errors.New("неверный пароль")
	}

	token, err := utils.GenerateToken(s.jwtSecret, "admin", s.accessTTL)
	if err != nil {
		log.Error("Auth: ошибка генерации токена", zap.Error(err))
		return "", err
	}

	log.Info("Auth: администратор вошёл")
	return token, nil
}
