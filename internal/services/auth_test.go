package services

import (
	"context"
	"testing"

	"homehealhub/internal/config"

	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, password string) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("не удалось захешировать пароль: %v", err)
	}
	return &config.Config{
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		AccessTokenTTL:    "15m",
	}
}

func TestLogin_Success(t *testing.T) {
	svc := NewAuthService(authConfig(t, "secret"))

	token, err := svc.Login(context.Background(), "secret")
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if token == "" {
		t.Fatal("токен не сгенерирован")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService(authConfig(t, "secret"))

	if _, err := svc.Login(context.Background(), "wrong"); err == nil {
		t.Fatal("ожидалась ошибка при неверном пароле")
	}
}

func TestLogin_DisabledWithoutHash(t *testing.T) {
	svc := NewAuthService(&config.Config{JWTSecret: "s", AccessTokenTTL: "15m"})

	if _, err := svc.Login(context.Background(), "anything"); err == nil {
		t.Fatal("без ADMIN_PASSWORD_HASH вход должен быть выключен")
	}
}
