// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/keywatch/keywatch/ent/contentitem"
	"github.com/keywatch/keywatch/ent/keywordrule"
	"github.com/keywatch/keywatch/ent/match"
	"github.com/keywatch/keywatch/ent/monitoredcommunity"
	"github.com/keywatch/keywatch/ent/schema"
	"github.com/keywatch/keywatch/ent/tenant"
	"github.com/keywatch/keywatch/ent/webhookendpoint"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contentitemFields := schema.ContentItem{}.Fields()
	_ = contentitemFields
	// contentitemDescFetchedAt is the schema descriptor for fetched_at field.
	contentitemDescFetchedAt := contentitemFields[10].Descriptor()
	// contentitem.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	contentitem.DefaultFetchedAt = contentitemDescFetchedAt.Default.(func() time.Time)
	// contentitemDescIsDeleted is the schema descriptor for is_deleted field.
	contentitemDescIsDeleted := contentitemFields[11].Descriptor()
	// contentitem.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	contentitem.DefaultIsDeleted = contentitemDescIsDeleted.Default.(bool)
	keywordruleFields := schema.KeywordRule{}.Fields()
	_ = keywordruleFields
	// keywordruleDescProximityWindow is the schema descriptor for proximity_window field.
	keywordruleDescProximityWindow := keywordruleFields[4].Descriptor()
	// keywordrule.DefaultProximityWindow holds the default value on creation for the proximity_window field.
	keywordrule.DefaultProximityWindow = keywordruleDescProximityWindow.Default.(int)
	// keywordruleDescRequireOrder is the schema descriptor for require_order field.
	keywordruleDescRequireOrder := keywordruleFields[5].Descriptor()
	// keywordrule.DefaultRequireOrder holds the default value on creation for the require_order field.
	keywordrule.DefaultRequireOrder = keywordruleDescRequireOrder.Default.(bool)
	// keywordruleDescUseStemming is the schema descriptor for use_stemming field.
	keywordruleDescUseStemming := keywordruleFields[6].Descriptor()
	// keywordrule.DefaultUseStemming holds the default value on creation for the use_stemming field.
	keywordrule.DefaultUseStemming = keywordruleDescUseStemming.Default.(bool)
	// keywordruleDescIsActive is the schema descriptor for is_active field.
	keywordruleDescIsActive := keywordruleFields[8].Descriptor()
	// keywordrule.DefaultIsActive holds the default value on creation for the is_active field.
	keywordrule.DefaultIsActive = keywordruleDescIsActive.Default.(bool)
	// keywordruleDescCreatedAt is the schema descriptor for created_at field.
	keywordruleDescCreatedAt := keywordruleFields[10].Descriptor()
	// keywordrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	keywordrule.DefaultCreatedAt = keywordruleDescCreatedAt.Default.(func() time.Time)
	// keywordruleDescUpdatedAt is the schema descriptor for updated_at field.
	keywordruleDescUpdatedAt := keywordruleFields[11].Descriptor()
	// keywordrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	keywordrule.DefaultUpdatedAt = keywordruleDescUpdatedAt.Default.(func() time.Time)
	// keywordrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	keywordrule.UpdateDefaultUpdatedAt = keywordruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	matchFields := schema.Match{}.Fields()
	_ = matchFields
	// matchDescIsDeleted is the schema descriptor for is_deleted field.
	matchDescIsDeleted := matchFields[13].Descriptor()
	// match.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	match.DefaultIsDeleted = matchDescIsDeleted.Default.(bool)
	// matchDescDetectedAt is the schema descriptor for detected_at field.
	matchDescDetectedAt := matchFields[14].Descriptor()
	// match.DefaultDetectedAt holds the default value on creation for the detected_at field.
	match.DefaultDetectedAt = matchDescDetectedAt.Default.(func() time.Time)
	monitoredcommunityFields := schema.MonitoredCommunity{}.Fields()
	_ = monitoredcommunityFields
	// monitoredcommunityDescIncludeMediaPosts is the schema descriptor for include_media_posts field.
	monitoredcommunityDescIncludeMediaPosts := monitoredcommunityFields[3].Descriptor()
	// monitoredcommunity.DefaultIncludeMediaPosts holds the default value on creation for the include_media_posts field.
	monitoredcommunity.DefaultIncludeMediaPosts = monitoredcommunityDescIncludeMediaPosts.Default.(bool)
	// monitoredcommunityDescDedupeCrossposts is the schema descriptor for dedupe_crossposts field.
	monitoredcommunityDescDedupeCrossposts := monitoredcommunityFields[4].Descriptor()
	// monitoredcommunity.DefaultDedupeCrossposts holds the default value on creation for the dedupe_crossposts field.
	monitoredcommunity.DefaultDedupeCrossposts = monitoredcommunityDescDedupeCrossposts.Default.(bool)
	// monitoredcommunityDescFilterBots is the schema descriptor for filter_bots field.
	monitoredcommunityDescFilterBots := monitoredcommunityFields[5].Descriptor()
	// monitoredcommunity.DefaultFilterBots holds the default value on creation for the filter_bots field.
	monitoredcommunity.DefaultFilterBots = monitoredcommunityDescFilterBots.Default.(bool)
	// monitoredcommunityDescCreatedAt is the schema descriptor for created_at field.
	monitoredcommunityDescCreatedAt := monitoredcommunityFields[7].Descriptor()
	// monitoredcommunity.DefaultCreatedAt holds the default value on creation for the created_at field.
	monitoredcommunity.DefaultCreatedAt = monitoredcommunityDescCreatedAt.Default.(func() time.Time)
	// monitoredcommunityDescUpdatedAt is the schema descriptor for updated_at field.
	monitoredcommunityDescUpdatedAt := monitoredcommunityFields[8].Descriptor()
	// monitoredcommunity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	monitoredcommunity.DefaultUpdatedAt = monitoredcommunityDescUpdatedAt.Default.(func() time.Time)
	// monitoredcommunity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	monitoredcommunity.UpdateDefaultUpdatedAt = monitoredcommunityDescUpdatedAt.UpdateDefault.(func() time.Time)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescPollIntervalMinutes is the schema descriptor for poll_interval_minutes field.
	tenantDescPollIntervalMinutes := tenantFields[2].Descriptor()
	// tenant.DefaultPollIntervalMinutes holds the default value on creation for the poll_interval_minutes field.
	tenant.DefaultPollIntervalMinutes = tenantDescPollIntervalMinutes.Default.(int)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[3].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantFields[4].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookendpointFields := schema.WebhookEndpoint{}.Fields()
	_ = webhookendpointFields
	// webhookendpointDescIsPrimary is the schema descriptor for is_primary field.
	webhookendpointDescIsPrimary := webhookendpointFields[4].Descriptor()
	// webhookendpoint.DefaultIsPrimary holds the default value on creation for the is_primary field.
	webhookendpoint.DefaultIsPrimary = webhookendpointDescIsPrimary.Default.(bool)
	// webhookendpointDescIsActive is the schema descriptor for is_active field.
	webhookendpointDescIsActive := webhookendpointFields[5].Descriptor()
	// webhookendpoint.DefaultIsActive holds the default value on creation for the is_active field.
	webhookendpoint.DefaultIsActive = webhookendpointDescIsActive.Default.(bool)
	// webhookendpointDescCreatedAt is the schema descriptor for created_at field.
	webhookendpointDescCreatedAt := webhookendpointFields[7].Descriptor()
	// webhookendpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookendpoint.DefaultCreatedAt = webhookendpointDescCreatedAt.Default.(func() time.Time)
	// webhookendpointDescUpdatedAt is the schema descriptor for updated_at field.
	webhookendpointDescUpdatedAt := webhookendpointFields[8].Descriptor()
	// webhookendpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookendpoint.DefaultUpdatedAt = webhookendpointDescUpdatedAt.Default.(func() time.Time)
	// webhookendpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookendpoint.UpdateDefaultUpdatedAt = webhookendpointDescUpdatedAt.UpdateDefault.(func() time.Time)
}
