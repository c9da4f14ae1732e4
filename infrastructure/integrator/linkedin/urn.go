package linkedin

import "strings"

type EntityKind string

const (
	KindUnknown       EntityKind = ""
	KindCampaign      EntityKind = "campaign"
	KindCampaignGroup EntityKind = "campaign_group"
)

// ClassifyURN identifica o tipo de entidade de um URN de pivot e extrai o id
// (último segmento após ":"). CampaignGroup é verificado antes de Campaign
// porque o primeiro contém o segundo.
func ClassifyURN(urn string) (EntityKind, string) {
	var kind EntityKind
	switch {
	case strings.Contains(urn, "CampaignGroup"):
		kind = KindCampaignGroup
	case strings.Contains(urn, "Campaign"):
		kind = KindCampaign
	default:
		return KindUnknown, ""
	}

	id := urn[strings.LastIndex(urn, ":")+1:]
	if id == "" {
		return KindUnknown, ""
	}

	return kind, id
}
