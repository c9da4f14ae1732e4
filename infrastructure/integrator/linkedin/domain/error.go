package linkedindomain

// ErrorResponse representa a estrutura de erro da API do LinkedIn
type ErrorResponse struct {
	Status           int    `json:"status"`
	ServiceErrorCode int    `json:"serviceErrorCode"`
	Code             string `json:"code"`
	Message          string `json:"message"`
}

// IsTokenExpired verifica se o erro é de token expirado ou revogado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 65600: token inválido, 65601: revogado, 65602: expirado
	return e.Status == 401 ||
		e.ServiceErrorCode == 65600 || e.ServiceErrorCode == 65601 || e.ServiceErrorCode == 65602 ||
		e.Code == "EXPIRED_ACCESS_TOKEN" || e.Code == "REVOKED_ACCESS_TOKEN"
}
