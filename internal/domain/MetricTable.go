package domain

// Colunas fixas presentes em todas as tabelas de destino
const (
	ColumnDate              = "date"
	ColumnAccountName       = "account_name"
	ColumnAccountID         = "account_id"
	ColumnCampaignGroupName = "campaign_group_name"
	ColumnCampaignGroupID   = "campaign_group_id"
	ColumnCampaignName      = "campaign_name"
	ColumnCampaignID        = "campaign_id"
	ColumnCampaignType      = "campaign_type"
	ColumnCampaignStatus    = "campaign_status"
)

// IdentityColumns lista as colunas de identificação na ordem em que são gravadas
var IdentityColumns = []string{
	ColumnDate,
	ColumnAccountName,
	ColumnAccountID,
	ColumnCampaignGroupName,
	ColumnCampaignGroupID,
	ColumnCampaignName,
	ColumnCampaignID,
	ColumnCampaignType,
	ColumnCampaignStatus,
}

// MetricTable representa uma tabela de destino e as métricas que ela recebe
type MetricTable struct {
	Name    string   `mapstructure:"name" json:"name"`
	Metrics []string `mapstructure:"metrics" json:"metrics"`
}

// FindTable procura uma tabela pelo nome
func FindTable(tables []MetricTable, name string) (MetricTable, bool) {
	for _, t := range tables {
		if t.Name == name {
			return t, true
		}
	}
	return MetricTable{}, false
}
