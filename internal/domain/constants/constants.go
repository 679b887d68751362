// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Domain event types published to the event bus.
const (
	EventCampaignPublished          = "campaign.published"
	EventCampaignInfluencerSelected = "campaign.influencer_selected"
)
