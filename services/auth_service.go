package services

import (
	"context"
	"errors"
	"log"

	"pos-client/models"
)

const (
	registerSuccessNotice = "Registro exitoso! Ahora inicia sesión."
	sessionExpiredNotice  = "La sesión ha expirado. Inicia sesión de nuevo."
	unreachableMessage    = "No se pudo conectar con el servidor."
	missingTokenMessage   = "El servidor no devolvió un token de sesión."
)

type AuthService struct {
	api PosAPI
}

func NewAuthService(api PosAPI) *AuthService {
	return &AuthService{api: api}
}

// Submit sends the credentials to the login or register endpoint, depending
// on the form's mode. A successful login returns the session token; every
// other outcome is recorded on the form (inline error or success notice).
func (s *AuthService) Submit(ctx context.Context, form *models.AuthForm, req models.AuthFormRequest) (string, error) {
	form.Error = ""
	form.Notice = ""
	form.Username = req.Username
	form.Password = req.Password

	creds := models.Credentials{Username: req.Username, Password: req.Password}

	if form.IsLogin() {
		token, err := s.api.Login(ctx, creds)
		if err != nil {
			form.Error = authFailureMessage(err)
			return "", err
		}
		if token == "" {
			form.Error = missingTokenMessage
			return "", ErrUnauthenticated
		}
		return token, nil
	}

	if _, err := s.api.Register(ctx, creds); err != nil {
		form.Error = authFailureMessage(err)
		return "", err
	}

	form.Mode = models.AuthModeLogin
	form.Username = ""
	form.Password = ""
	form.Notice = registerSuccessNotice
	return "", nil
}

// ToggleMode switches between login and register, discarding whatever was typed.
func ToggleMode(form *models.AuthForm) {
	if form.IsLogin() {
		form.Mode = models.AuthModeRegister
	} else {
		form.Mode = models.AuthModeLogin
	}
	form.Error = ""
	form.Notice = ""
	form.Username = ""
	form.Password = ""
}

func authFailureMessage(err error) string {
	if msg, ok := ErrorMessage(err); ok {
		return msg
	}
	log.Printf("Authentication request failed: %v", err)
	if errors.Is(err, ErrUnreachable) {
		return unreachableMessage
	}
	return unreadableBodyMessage
}
