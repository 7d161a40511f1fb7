package service

import (
	"errors"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/model"
	"github.com/AJEETKSINGH1001/Ecommerce-APIs/internal/store"
)

const tokenTTL = 24 * time.Hour

type AuthService interface {
	Register(email, fullName, password string) (model.User, error)
	Login(email, password string) (string, error) // returns JWT
	ParseToken(token string) (uint, error)        // returns userID
}

type authService struct {
	stores *store.Stores
	secret []byte
}

func NewAuthService(stores *store.Stores, secret string) AuthService {
	return &authService{stores: stores, secret: []byte(secret)}
}

func (a *authService) Register(email, fullName, password string) (model.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return model.User{}, errValidation("invalid email address")
	}
	if len(password) < 6 {
		return model.User{}, errValidation("password must be at least 6 characters")
	}

	if _, err := a.stores.Users.GetByEmail(email); err == nil {
		return model.User{}, errConflict("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{Email: email, FullName: fullName, PasswordHash: string(hash)}
	if err := a.stores.Users.Create(&u); err != nil {
		// races between the existence check and the insert land on the
		// unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.User{}, errConflict("email already registered")
		}
		return model.User{}, err
	}
	return u, nil
}

func (a *authService) Login(email, password string) (string, error) {
	u, err := a.stores.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errAuthFailure("incorrect email or password")
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", errAuthFailure("incorrect email or password")
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID,
		"typ": "session",
		"exp": time.Now().Add(tokenTTL).Unix(),
	})
	return t.SignedString(a.secret)
}

func (a *authService) ParseToken(token string) (uint, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return 0, errAuthFailure("invalid or expired token")
	}
	if claims["typ"] != "session" {
		return 0, errAuthFailure("invalid token type")
	}
	idFloat, ok := claims["sub"].(float64)
	if !ok {
		return 0, errAuthFailure("invalid subject")
	}
	return uint(idFloat), nil
}
