package domain

// Credential é a cópia em memória dos tokens OAuth durante uma execução
type Credential struct {
	AccessToken  string
	RefreshToken string
}
