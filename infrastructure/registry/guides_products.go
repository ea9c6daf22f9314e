package registry

import "github.com/jordienr/docsite/domain/nav"

// storageTree is the full "Storage" guide tree.
func storageTree() nav.Item {
	return nav.NewHeader("Storage", nav.WithItems(
		nav.NewItem("Overview", "/guides/storage"),
		nav.NewItem("Quickstart", "/guides/storage/quickstart"),
		nav.NewItem("Uploads", "/guides/storage/uploads"),
		nav.NewItem("Access Control", "/guides/storage/access-control"),
		nav.NewItem("CDN", "/guides/storage/cdn"),
		nav.NewItem("Image Transformations", "/guides/storage/image-transformations"),

		nav.NewHeader("Debugging", nav.WithItems(
			nav.NewItem("Logs", "/guides/storage/logs"),
			nav.NewItem("Error Codes", "/guides/storage/error-codes"),
		)),
	))
}

// functionsTree is the full "Edge Functions" guide tree.
func functionsTree() nav.Item {
	return nav.NewHeader("Edge Functions", nav.WithItems(
		nav.NewItem("Overview", "/guides/functions"),
		nav.NewItem("Quickstart", "/guides/functions/quickstart"),

		nav.NewHeader("Guides", nav.WithItems(
			nav.NewItem("Local Development", "/guides/functions/local-development"),
			nav.NewItem("Deploy to Production", "/guides/functions/deploy"),
			nav.NewItem("Managing Secrets", "/guides/functions/secrets"),
			nav.NewItem("Integrating with Auth", "/guides/functions/auth"),
			nav.NewItem("Connecting to the Database", "/guides/functions/connect-to-postgres"),
			nav.NewItem("Scheduling Functions", "/guides/functions/schedule-functions"),
			nav.NewItem("Debugging Functions", "/guides/functions/debugging"),
			nav.NewItem("CI/CD Workflows", "/guides/functions/cicd-workflow"),
			nav.NewItem("CORS", "/guides/functions/cors"),
			nav.NewItem("Import Maps", "/guides/functions/import-maps"),
		)),

		nav.NewHeader("Examples", nav.WithItems(
			nav.NewItem("Auth Send Email Hook", "/guides/functions/examples/auth-send-email-hook-react-email-resend"),
			nav.NewItem("CORS support for invoking from the browser", "/guides/functions/cors"),
			nav.NewItem("Scheduling Functions", "/guides/functions/schedule-functions"),
			nav.NewItem("Sending Push Notifications", "/guides/functions/examples/push-notifications"),
			nav.NewItem("OpenAI API", "/guides/functions/examples/openai-api"),
			nav.NewItem("Sending emails with Resend", "/guides/functions/examples/send-emails"),
			nav.NewItem("Upstash Redis", "/guides/functions/examples/upstash-redis"),
			nav.NewItem("Connecting directly to Postgres", "/guides/functions/connect-to-postgres"),
			nav.NewItem("Stripe Webhooks", "/guides/functions/examples/stripe-webhooks"),
			nav.NewItem("Discord Bot", "/guides/functions/examples/discord-bot"),
			nav.NewItem("Telegram Bot", "/guides/functions/examples/telegram-bot"),
			nav.NewItem("GitHub Actions", "/guides/functions/examples/github-actions"),
		)),
	))
}

// realtimeTree is the full "Realtime" guide tree.
func realtimeTree() nav.Item {
	return nav.NewHeader("Realtime", nav.WithItems(
		nav.NewItem("Overview", "/guides/realtime"),
		nav.NewItem("Concepts", "/guides/realtime/concepts"),

		nav.NewHeader("Usage", nav.WithItems(
			nav.NewItem("Broadcast", "/guides/realtime/broadcast"),
			nav.NewItem("Presence", "/guides/realtime/presence"),
			nav.NewItem("Postgres Changes", "/guides/realtime/postgres-changes"),
		)),

		nav.NewHeader("Security", nav.WithItems(
			nav.NewItem("Postgres RLS", "/guides/realtime/postgres-rls"),
			nav.NewItem("Rate Limits", "/guides/realtime/rate-limits"),
		)),

		nav.NewHeader("Guides", nav.WithItems(
			nav.NewItem("Subscribing to Database Changes", "/guides/realtime/subscribing-to-database-changes"),
			nav.NewItem("Using Realtime with Next.js", "/guides/realtime/realtime-with-nextjs"),
			nav.NewItem("Using Realtime Presence with Flutter", "/guides/realtime/realtime-user-presence"),
			nav.NewItem("Listening to Postgres Changes with Flutter", "/guides/realtime/realtime-listening-flutter"),
		)),

		nav.NewHeader("Deep dive", nav.WithItems(
			nav.NewItem("Quotas", "/guides/realtime/quotas"),
			nav.NewItem("Architecture", "/guides/realtime/architecture"),
			nav.NewItem("Message Protocol", "/guides/realtime/protocol"),
		)),
	))
}
