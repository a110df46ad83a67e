package validation

import "strings"

// MinPasswordLength tamanho mínimo da senha
const MinPasswordLength = 6

// RegisterInput corpo de POST /api/auth/register
type RegisterInput struct {
	Name     string `json:"nome" example:"Usuário Demo"`
	Email    string `json:"email" example:"demo@email.com"`
	Password string `json:"senha" example:"123456"`
}

// Registration dados de cadastro validados
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Register valida o cadastro de usuário.
func Register(in RegisterInput) (Registration, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return Registration{}, newError("", KindRequired, "Todos os campos são obrigatórios")
	}
	if len(in.Password) < MinPasswordLength {
		return Registration{}, newError("senha", KindOutOfRange, "A senha deve ter pelo menos 6 caracteres")
	}
	if !emailPattern.MatchString(email) {
		return Registration{}, newError("email", KindInvalid, "Email inválido")
	}
	return Registration{Name: name, Email: email, Password: in.Password}, nil
}

// LoginInput corpo de POST /api/auth/login
type LoginInput struct {
	Email    string `json:"email" example:"demo@email.com"`
	Password string `json:"senha" example:"123456"`
}

// Login valida as credenciais informadas.
func Login(in LoginInput) (LoginInput, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return LoginInput{}, newError("", KindRequired, "Email e senha são obrigatórios")
	}
	return in, nil
}
