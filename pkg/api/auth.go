package api

// LoginRequest представляет запрос на вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде (только поверх TLS)
}

// TokenResponse представляет ответ с токеном доступа и ролью
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	Role        string `json:"role"`         // роль пользователя: admin или user
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Storage string `json:"storage,omitempty"`
}
