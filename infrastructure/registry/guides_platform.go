package registry

import "github.com/jordienr/docsite/domain/nav"

// platformTree is the full "Platform" guide tree.
func platformTree() nav.Item {
	return nav.NewHeader("Platform", nav.WithItems(
		nav.NewItem("Overview", "/guides/platform"),
		nav.NewItem("Compute Add-ons", "/guides/platform/compute-add-ons"),
		nav.NewItem("Custom Domains", "/guides/platform/custom-domains"),
		nav.NewItem("Database Usage", "/guides/platform/database-usage"),
		nav.NewItem("Logging", "/guides/platform/logs"),
		nav.NewItem("Metrics", "/guides/platform/metrics"),
		nav.NewItem("Network Restrictions", "/guides/platform/network-restrictions"),
		nav.NewItem("Performance Tuning", "/guides/platform/performance"),
		nav.NewItem("Permissions", "/guides/platform/permissions"),
		nav.NewItem("Production Readiness", "/guides/platform/going-into-prod"),
		nav.NewItem("SSL Enforcement", "/guides/platform/ssl-enforcement"),
		nav.NewItem("Access Control", "/guides/platform/access-control"),

		nav.NewHeader("Projects and organizations", nav.WithItems(
			nav.NewItem("Migrating and Upgrading Projects", "/guides/platform/migrating-and-upgrading-projects"),
			nav.NewItem("Pausing and resuming projects", "/guides/platform/pause-resume"),
			nav.NewItem("Transferring projects", "/guides/platform/project-transfer"),
			nav.NewItem("Single Sign-On", "/guides/platform/sso"),
		)),

		nav.NewHeader("Billing", nav.WithItems(
			nav.NewItem("Spend caps", "/guides/platform/spend-cap"),
			nav.NewItem("How billing works", "/guides/platform/org-based-billing"),
		)),

		nav.NewHeader("Integrations", nav.WithItems(
			nav.NewItem("Overview", "/guides/platform/integrations"),
			nav.NewItem("Build Your Own Integration", "/guides/platform/oauth-apps/build-a-supabase-integration"),
			nav.NewItem("OAuth Scopes", "/guides/platform/oauth-apps/oauth-scopes"),
		)),
	))
}

// resourcesTree is the full "Resources" guide tree.
func resourcesTree() nav.Item {
	return nav.NewHeader("Resources", nav.WithItems(
		nav.NewItem("Examples", "/guides/resources/examples"),
		nav.NewItem("Glossary", "/guides/resources/glossary"),

		nav.NewHeader("Migrate to the platform", nav.WithItems(
			nav.NewItem("Amazon RDS", "/guides/resources/migrating-to-supabase/amazon-rds"),
			nav.NewItem("Firebase Auth", "/guides/resources/migrating-to-supabase/firebase-auth"),
			nav.NewItem("Firestore Data", "/guides/resources/migrating-to-supabase/firestore-data"),
			nav.NewItem("Firebase Storage", "/guides/resources/migrating-to-supabase/firebase-storage"),
			nav.NewItem("Heroku", "/guides/resources/migrating-to-supabase/heroku"),
			nav.NewItem("MySQL", "/guides/resources/migrating-to-supabase/mysql"),
			nav.NewItem("Render", "/guides/resources/migrating-to-supabase/render"),
		)),

		nav.NewHeader("Postgres resources", nav.WithItems(
			nav.NewItem("Managing Indexes", "/guides/database/indexes"),
			nav.NewItem("Cascade Deletes", "/guides/database/postgres/cascade-deletes"),
			nav.NewItem("Drop all tables in schema", "/guides/database/postgres/dropping-all-tables-in-schema"),
			nav.NewItem("Select first row per group", "/guides/database/postgres/first-row-in-group"),
			nav.NewItem("Print PostgreSQL version", "/guides/database/postgres/which-version-of-postgres"),
		)),
	))
}

// selfHostingTree is the full "Self-Hosting" guide tree.
func selfHostingTree() nav.Item {
	return nav.NewHeader("Self-Hosting", nav.WithItems(
		nav.NewItem("Overview", "/guides/self-hosting"),
		nav.NewItem("Self-Hosting with Docker", "/guides/self-hosting/docker"),

		nav.NewHeader("Auth Server", nav.WithItems(
			nav.NewItem("Reference", "/reference/self-hosting-auth/introduction", nav.WithLevel(LevelRefAuthServer)),
			nav.NewItem("Configuration", "/guides/self-hosting/auth/config"),
		)),
		nav.NewHeader("Storage Server", nav.WithItems(
			nav.NewItem("Reference", "/reference/self-hosting-storage/introduction", nav.WithLevel(LevelRefStorageServer)),
			nav.NewItem("Configuration", "/guides/self-hosting/storage/config"),
		)),
		nav.NewHeader("Realtime Server", nav.WithItems(
			nav.NewItem("Reference", "/reference/self-hosting-realtime/introduction", nav.WithLevel(LevelRefRealtimeServer)),
			nav.NewItem("Configuration", "/guides/self-hosting/realtime/config"),
		)),
	))
}
