package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/vfg2006/linkedin-ads-ingestor/internal/domain"
)

// DefaultTables são as tabelas de destino e as métricas de cada uma.
// As métricas precisam existir tanto na API do LinkedIn quanto no schema da tabela.
func DefaultTables() []domain.MetricTable {
	return []domain.MetricTable{
		{
			Name: "ad_analytics",
			Metrics: []string{
				"costInUsd", "impressions", "cardImpressions", "clicks", "cardClicks",
				"oneClickLeads", "oneClickLeadFormOpens", "validWorkEmailLeads", "sends",
				"opens", "shares", "comments", "reactions", "totalEngagements",
			},
		},
		{
			Name: "ad_click_metrics",
			Metrics: []string{
				"clicks", "actionClicks", "adUnitClicks", "cardClicks", "companyPageClicks",
				"headlineClicks", "landingPageClicks", "subscriptionClicks", "textUrlClicks",
				"viralClicks", "viralCardClicks", "viralCompanyPageClicks",
				"viralLandingPageClicks", "viralSubscriptionClicks",
			},
		},
		{
			Name: "ad_conversion_metrics",
			Metrics: []string{
				"externalWebsiteConversions", "externalWebsitePostClickConversions",
				"externalWebsitePostViewConversions", "qualifiedLeads", "validWorkEmailLeads",
				"costPerQualifiedLead", "conversionValueInLocalCurrency",
				"viralExternalWebsiteConversions", "viralExternalWebsitePostClickConversions",
				"viralExternalWebsitePostViewConversions",
			},
		},
		{
			Name: "ad_cost_metrics",
			Metrics: []string{
				"costInLocalCurrency", "costInUsd", "costPerQualifiedLead",
				"conversionValueInLocalCurrency", "averageDwellTime",
			},
		},
		{
			Name: "ad_delivery_metrics",
			Metrics: []string{
				"impressions", "cardImpressions", "headlineImpressions", "approximateMemberReach",
				"audiencePenetration", "viralImpressions", "viralCardImpressions",
			},
		},
		{
			Name: "ad_engagement_metrics",
			Metrics: []string{
				"likes", "reactions", "commentLikes", "comments", "shares", "otherEngagements",
				"totalEngagements", "viralLikes", "viralReactions", "viralCommentLikes",
				"viralComments", "viralShares", "viralOtherEngagements", "viralTotalEngagements",
			},
		},
		{
			Name: "ad_job_metrics",
			Metrics: []string{
				"jobApplications", "jobApplyClicks", "postClickJobApplications",
				"postClickJobApplyClicks", "postClickRegistrations", "postViewJobApplications",
				"postViewJobApplyClicks", "postViewRegistrations", "viralJobApplications",
				"viralJobApplyClicks", "viralPostClickJobApplications",
				"viralPostClickJobApplyClicks", "viralPostClickRegistrations",
				"viralPostViewJobApplications", "viralPostViewJobApplyClicks",
				"viralPostViewRegistrations", "registrations", "talentLeads",
			},
		},
		{
			Name: "ad_lead_form_metrics",
			Metrics: []string{
				"oneClickLeads", "oneClickLeadFormOpens", "leadGenerationMailInterestedClicks",
				"leadGenerationMailContactInfoShares", "follows", "sends", "opens",
				"viralOneClickLeads", "viralOneClickLeadFormOpens", "viralFollows",
			},
		},
		{
			Name: "ad_other_viral_metrics",
			Metrics: []string{
				"viralDocumentCompletions", "viralDocumentFirstQuartileCompletions",
				"viralDocumentMidpointCompletions", "viralDocumentThirdQuartileCompletions",
				"viralDownloadClicks", "viralFullScreenPlays", "viralRegistrations",
			},
		},
		{
			Name: "ad_video_doc_metrics",
			Metrics: []string{
				"videoStarts", "videoViews", "videoCompletions", "videoFirstQuartileCompletions",
				"videoMidpointCompletions", "videoThirdQuartileCompletions", "fullScreenPlays",
				"documentCompletions", "documentFirstQuartileCompletions",
				"documentMidpointCompletions", "documentThirdQuartileCompletions",
				"downloadClicks", "viralVideoStarts", "viralVideoViews", "viralVideoCompletions",
				"viralVideoFirstQuartileCompletions", "viralVideoMidpointCompletions",
				"viralVideoThirdQuartileCompletions",
			},
		},
	}
}

// LoadTables lê a configuração de tabelas de um arquivo YAML/JSON. Sem arquivo,
// retorna DefaultTables.
//
//	tables:
//	  - name: ad_analytics
//	    metrics: [clicks, impressions]
func LoadTables(path string) ([]domain.MetricTable, error) {
	if path == "" {
		return DefaultTables(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo de tabelas %s: %w", path, err)
	}

	var tables []domain.MetricTable
	if err := v.UnmarshalKey("tables", &tables); err != nil {
		return nil, fmt.Errorf("erro ao decodificar arquivo de tabelas %s: %w", path, err)
	}

	if err := ValidateTables(tables); err != nil {
		return nil, err
	}

	return tables, nil
}

// ValidateTables garante nomes únicos e ao menos uma métrica por tabela
func ValidateTables(tables []domain.MetricTable) error {
	if len(tables) == 0 {
		return fmt.Errorf("nenhuma tabela configurada")
	}

	seen := make(map[string]struct{}, len(tables))
	for _, t := range tables {
		if t.Name == "" {
			return fmt.Errorf("tabela sem nome na configuração")
		}
		if _, ok := seen[t.Name]; ok {
			return fmt.Errorf("tabela duplicada na configuração: %s", t.Name)
		}
		if len(t.Metrics) == 0 {
			return fmt.Errorf("tabela %s sem métricas configuradas", t.Name)
		}
		seen[t.Name] = struct{}{}
	}

	return nil
}
