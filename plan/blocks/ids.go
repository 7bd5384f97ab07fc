package blocks

// ID identifies one fixed content template. The set is closed: every ID a
// selector rule can emit is declared here and registered in the template
// registry, so a typo is a test failure rather than a silently skipped page.
type ID string

const (
	WorkplaceOptions   ID = "workplace-options"
	WorkplaceCosts     ID = "workplace-costs"
	WorkplaceChecklist ID = "workplace-checklist"

	ChannelsOverview ID = "channels-overview"
	ChannelSocial    ID = "channel-social"
	ChannelAvito     ID = "channel-avito"
	ChannelReferral  ID = "channel-referral"
	ChannelPartners  ID = "channel-partners"

	ScriptBasics     ID = "script-basics"
	ScriptPriceTalk  ID = "script-price-talk"
	ScriptObjections ID = "script-objections"

	TargetClientsMath ID = "target-clients-math"
	ExitIncomeCompare ID = "exit-income-compare"
	ExitReadiness     ID = "exit-readiness"

	ReviewsCollect ID = "reviews-collect"
	ReviewsUsage   ID = "reviews-usage"

	LoyaltyBasics        ID = "loyalty-basics"
	LoyaltyPersonalBrand ID = "loyalty-personal-brand"

	PercentNegotiationNow  ID = "percent-negotiation-now"
	PercentNegotiationPrep ID = "percent-negotiation-prep"
	PercentArguments       ID = "percent-arguments"

	ClientBaseBuild    ID = "client-base-build"
	ClientBaseContacts ID = "client-base-contacts"

	RetentionBasics  ID = "retention-basics"
	RetentionFixLow  ID = "retention-fix-low"
	RetentionPush55  ID = "retention-push-55"
	RemindersSystem  ID = "reminders-system"

	PriceRaiseMarket   ID = "price-raise-market"
	PriceRaiseAbove    ID = "price-raise-above"
	PriceCommunication ID = "price-communication"
	PriceValueFraming  ID = "price-value-framing"

	Plan30Days ID = "plan-30-days"

	SourcesDiversify ID = "sources-diversify"
	SourceMatrix     ID = "source-matrix"

	CRMSetup ID = "crm-setup"
	CRMTools ID = "crm-tools"

	TeachStart   ID = "teach-start"
	TeachFormats ID = "teach-formats"

	SpaceTeam      ID = "space-team"
	SpaceOpenOwn   ID = "space-open-own"
	SpaceEconomics ID = "space-economics"

	AddPrivateClients ID = "add-private-clients"
	HybridBalance     ID = "hybrid-balance"

	MoneyTracking  ID = "money-tracking"
	ServiceQuality ID = "service-quality"
	PhotoPortfolio ID = "photo-portfolio"
)

// pageCounts declares how many rendered pages each block occupies. Blocks not
// listed occupy one page.
var pageCounts = map[ID]int{
	WorkplaceOptions:       2,
	ChannelsOverview:       2,
	ScriptBasics:           2,
	ExitReadiness:          2,
	LoyaltyBasics:          2,
	PercentNegotiationNow:  2,
	PercentNegotiationPrep: 2,
	ClientBaseBuild:        2,
	RetentionBasics:        2,
	RetentionFixLow:        2,
	PriceRaiseMarket:       2,
	PriceRaiseAbove:        2,
	Plan30Days:             3,
	SourcesDiversify:       2,
	CRMSetup:               2,
	TeachStart:             2,
	SpaceTeam:              2,
	SpaceOpenOwn:           3,
}

// PageCount returns the declared page count for a block, defaulting to 1.
func PageCount(id ID) int {
	if n, ok := pageCounts[id]; ok {
		return n
	}
	return 1
}
