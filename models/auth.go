package models

type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

// AuthForm is the state behind the login/register screen.
type AuthForm struct {
	Mode     AuthMode `json:"mode"`
	Username string   `json:"username"`
	Password string   `json:"-"`
	Error    string   `json:"error,omitempty"`
	Notice   string   `json:"notice,omitempty"`
}

func NewAuthForm() AuthForm {
	return AuthForm{Mode: AuthModeLogin}
}

func (f AuthForm) IsLogin() bool {
	return f.Mode != AuthModeRegister
}
