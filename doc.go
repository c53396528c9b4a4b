// Package podcastsite provides top-level metadata for the Podcast Site API.
//
// @title Podcast Site API
// @version 1.0.0
// @description Content sync webhook, admin scheduling API and cached public pages of the bilingual podcast site.
// @BasePath /
// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization
// @description Provide the admin bearer token as `Bearer <token>`.
package podcastsite
