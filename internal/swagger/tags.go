package swagger

// @Tag.name Meta
// @Tag.description Operational checks and metadata about the service.

// @Tag.name Content Webhooks
// @Tag.description Content repository push notifications.

// @Tag.name Admin Auth
// @Tag.description Authentication for site admins.

// @Tag.name Admin Episodes
// @Tag.description Schedule episodes ahead of their content.

// @Tag.name Admin Topics
// @Tag.description Manage the topics episodes are grouped by.

// @Tag.name Admin Sync
// @Tag.description Live reports of content syncs.

// @Tag.name Site
// @Tag.description Cached public pages.
