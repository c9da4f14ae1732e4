package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusCanceled AdAccountStatus = "CANCELED"
	AdAccountStatusDraft    AdAccountStatus = "DRAFT"
)

// AdAccount é uma conta de anúncios acessível pelo token configurado
type AdAccount struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Status   AdAccountStatus `json:"status"`
	Type     string          `json:"type"`
	Currency string          `json:"currency"`
}

func (a AdAccount) IsActive() bool {
	return a.Status == AdAccountStatusActive
}
