package domain

import "time"

// Objective is the campaign goal inferred from the prompt.
type Objective string

const (
	ObjectiveAwareness    Objective = "awareness"
	ObjectiveAcquisition  Objective = "acquisition"
	ObjectiveRetention    Objective = "retention"
	ObjectiveReactivation Objective = "reactivation"
)

// Channel identifies a delivery channel.
type Channel string

const (
	ChannelEmail     Channel = "email"
	ChannelSMS       Channel = "sms"
	ChannelWhatsApp  Channel = "whatsapp"
	ChannelPush      Channel = "push"
	ChannelVoice     Channel = "voice"
	ChannelMessenger Channel = "messenger"
	ChannelAds       Channel = "ads"
)

// PlanningInputs is the immutable per-request input to the pipeline.
type PlanningInputs struct {
	Prompt           string   `json:"prompt"`
	SelectedSources  []string `json:"selectedSources"`
	SelectedChannels []string `json:"selectedChannels"`
	Timezone         string   `json:"timezone"`
}

// Audience represents a named, sized customer segment with its selection rule.
type Audience struct {
	Name         string                 `json:"name" validate:"required"`
	Source       []string               `json:"source" validate:"required"`
	Criteria     map[string]interface{} `json:"criteria" validate:"required"`
	SizeEstimate int                    `json:"sizeEstimate" validate:"gte=0"`
	Exclusions   []string               `json:"exclusions"`
}

// Schedule is a daily send window in a given timezone.
type Schedule struct {
	Start    string `json:"start" validate:"required,datetime=15:04"`
	End      string `json:"end" validate:"required,datetime=15:04"`
	Timezone string `json:"timezone" validate:"required"`
}

// MessageVariant is one A/B variant of an email message.
type MessageVariant struct {
	Name     string `json:"name"`
	Subject  string `json:"subject,omitempty"`
	BodyHTML string `json:"bodyHtml,omitempty"`
	BodyText string `json:"bodyText,omitempty"`
	Audience string `json:"audience"`
}

// Tracking carries attribution parameters for an execution.
type Tracking struct {
	UTMSource   string   `json:"utmSource"`
	UTMCampaign string   `json:"utmCampaign"`
	PixelEvents []string `json:"pixelEvents"`
}

// Compliance records regulatory requirements for an execution.
type Compliance struct {
	RequiresOptIn     bool `json:"requiresOptIn"`
	IncludeOptOutText bool `json:"includeOptOutText"`
}

// AdNetwork describes one ad network placement and budget.
type AdNetwork struct {
	Name        string   `json:"name"`
	Placements  []string `json:"placements"`
	BudgetDaily float64  `json:"budgetDaily" validate:"gt=0"`
	BidStrategy string   `json:"bidStrategy"`
}

// CreativeBrief describes one ad creative.
type CreativeBrief struct {
	Headline    string   `json:"headline"`
	PrimaryText string   `json:"primaryText"`
	AssetRefs   []string `json:"assetRefs"`
}

// ChannelExecution is the complete delivery plan for one channel.
type ChannelExecution struct {
	Channel                    Channel          `json:"channel" validate:"required,oneof=email sms whatsapp push voice messenger ads"`
	Provider                   string           `json:"provider" validate:"required"`
	Schedule                   Schedule         `json:"schedule"`
	FrequencyCapPerUserPerWeek int              `json:"frequencyCapPerUserPerWeek" validate:"gte=0,lte=20"`
	Audience                   string           `json:"audience" validate:"required"`
	Variants                   []MessageVariant `json:"variants,omitempty"`
	Message                    string           `json:"message,omitempty"`
	Tracking                   *Tracking        `json:"tracking,omitempty"`
	Compliance                 *Compliance      `json:"compliance,omitempty"`
	TemplateID                 string           `json:"templateId,omitempty"`
	Locale                     string           `json:"locale,omitempty"`
	Parameters                 []string         `json:"parameters,omitempty"`
	Networks                   []AdNetwork      `json:"networks,omitempty" validate:"omitempty,dive"`
	CreativeBriefs             []CreativeBrief  `json:"creativeBriefs,omitempty"`
	AudienceMapping            map[string]map[string]string `json:"audienceMapping,omitempty"`
}

// KPIs holds the partial set of targets for the inferred objective.
type KPIs struct {
	ROASTarget float64 `json:"roasTarget,omitempty" validate:"omitempty,gt=0"`
	CPAMax     float64 `json:"cpaMax,omitempty" validate:"omitempty,gt=0"`
	CTRMin     float64 `json:"ctrMin,omitempty" validate:"omitempty,gt=0,lte=1"`
}

// GlobalPacing bounds the campaign window and per-user daily impressions.
type GlobalPacing struct {
	Start                      time.Time `json:"start" validate:"required"`
	End                        time.Time `json:"end" validate:"required"`
	DailyMaxImpressionsPerUser int       `json:"dailyMaxImpressionsPerUser" validate:"gt=0"`
}

// Guardrails is the global brand-safety configuration attached to a plan.
type Guardrails struct {
	BrandSafety      []string `json:"brandSafety"`
	BlocklistDomains []string `json:"blocklistDomains"`
}

// Explanation is a decision/reason-code pair justifying a planning choice.
type Explanation struct {
	Decision  string   `json:"decision"`
	BecauseOf []string `json:"becauseOf"`
}

// CampaignPlan is the root aggregate produced by the pipeline. It is
// immutable once emitted as final and is never persisted server-side.
type CampaignPlan struct {
	CampaignID     string             `json:"campaignId" validate:"required"`
	Objective      Objective          `json:"objective" validate:"required,oneof=awareness acquisition retention reactivation"`
	KPIs           KPIs               `json:"kpis"`
	Timezone       string             `json:"timezone" validate:"required"`
	Audiences      []Audience         `json:"audiences" validate:"min=1,dive"`
	Channels       []ChannelExecution `json:"channels" validate:"min=1,dive"`
	GlobalPacing   GlobalPacing       `json:"globalPacing"`
	Guardrails     Guardrails         `json:"guardrails"`
	Explainability []Explanation      `json:"explainability,omitempty"`
}

// PlanFragment is the subset of plan fields carried by a partial stream event.
type PlanFragment struct {
	Audiences    []Audience         `json:"audiences,omitempty"`
	Channels     []ChannelExecution `json:"channels,omitempty"`
	GlobalPacing *GlobalPacing      `json:"globalPacing,omitempty"`
}
