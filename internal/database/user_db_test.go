package database_test

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func TestRegisterAndAuthenticateUser(t *testing.T) {
	pool := testPool(t)

	password := gofakeit.Password(true, true, true, false, false, 12)
	user := &models.User{
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		Password: password,
	}
	if err := database.RegisterUser(pool, user); err != nil {
		t.Fatalf("ошибка регистрации пользователя: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("после регистрации у пользователя должен быть ID")
	}

	authenticated, err := database.AuthenticateUser(pool, user.Email, password)
	if err != nil {
		t.Fatalf("ошибка аутентификации: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Errorf("аутентифицирован не тот пользователь: %d вместо %d", authenticated.ID, user.ID)
	}
	if authenticated.Password != "" {
		t.Error("хеш пароля не должен возвращаться из AuthenticateUser")
	}

	if _, err := database.AuthenticateUser(pool, user.Email, "неверный пароль"); err == nil {
		t.Error("аутентификация с неверным паролем должна отклоняться")
	}
}

func TestRegisterUserDuplicateRejected(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)

	duplicate := &models.User{
		Username: user.Username,
		Email:    user.Email,
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
	err := database.RegisterUser(pool, duplicate)
	if err == nil {
		t.Fatal("повторная регистрация с занятыми именем и email должна отклоняться")
	}
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("дубликат должен давать ошибку валидации, получили: %v", err)
	}
}

func TestUserExists(t *testing.T) {
	pool := testPool(t)
	user := testUser(t, pool)

	exists, err := database.UserExists(pool, user.Username, "")
	if err != nil {
		t.Fatalf("ошибка проверки имени пользователя: %v", err)
	}
	if !exists {
		t.Error("существующее имя пользователя должно находиться")
	}

	exists, err = database.UserExists(pool, "", user.Email)
	if err != nil {
		t.Fatalf("ошибка проверки email: %v", err)
	}
	if !exists {
		t.Error("существующий email должен находиться")
	}

	exists, err = database.UserExists(pool, "несуществующий", "нет@такого.адреса")
	if err != nil {
		t.Fatalf("ошибка проверки пользователя: %v", err)
	}
	if exists {
		t.Error("несуществующий пользователь не должен находиться")
	}

	// Оба параметра пустые — совпадений нет
	exists, err = database.UserExists(pool, "", "")
	if err != nil {
		t.Fatalf("ошибка проверки пользователя: %v", err)
	}
	if exists {
		t.Error("пустой запрос не должен давать совпадение")
	}
}
