package linkedindomain

type AdAccount struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Type      string `json:"type"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
}

type AdAccountSearchResponse struct {
	Elements []AdAccount `json:"elements"`
	Paging   Paging      `json:"paging"`
}
