package linkedindomain

type Campaign struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	CampaignGroup string `json:"campaignGroup"`
}

type CampaignGroup struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Paging struct {
	Start int    `json:"start"`
	Count int    `json:"count"`
	Total int    `json:"total"`
	Links []Link `json:"links"`
}

type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
	Type string `json:"type"`
}

// Next retorna o href da próxima página, se houver
func (p Paging) Next() string {
	for _, l := range p.Links {
		if l.Rel == "next" {
			return l.Href
		}
	}
	return ""
}
