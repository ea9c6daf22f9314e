package registry

import "github.com/jordienr/docsite/domain/nav"

// authTree is the full "Auth" guide tree. The root carries an "Overview"
// child linking to /guides/auth and a "Row Level Security" page under the
// "Authorization" header.
func authTree() nav.Item {
	return nav.NewHeader("Auth", nav.WithItems(
		nav.NewItem("Overview", "/guides/auth"),
		nav.NewItem("Users", "/guides/auth/users"),
		nav.NewItem("Identities", "/guides/auth/identities"),
		nav.NewItem("Sessions", "/guides/auth/sessions"),
		nav.NewItem("Redirect URLs", "/guides/auth/redirect-urls"),

		nav.NewHeader("Flows (How-tos)", nav.WithItems(
			nav.NewItem("Server-Side Rendering", "/guides/auth/server-side-rendering"),
			nav.NewItem("Passwordless Login", "/guides/auth/passwordless-login"),
			nav.NewItem("Phone Login", "/guides/auth/phone-login"),
			nav.NewItem("Password Reset", "/guides/auth/auth-password-reset"),
			nav.NewItem("Email Templates", "/guides/auth/auth-email-templates"),
			nav.NewItem("Signout", "/guides/auth/signout"),
		)),

		nav.NewHeader("Social Login", nav.WithItems(
			nav.NewItem("Overview", "/guides/auth/social-login"),
			nav.NewItem("Login with Apple", "/guides/auth/social-login/auth-apple"),
			nav.NewItem("Login with Azure", "/guides/auth/social-login/auth-azure"),
			nav.NewItem("Login with Bitbucket", "/guides/auth/social-login/auth-bitbucket"),
			nav.NewItem("Login with Discord", "/guides/auth/social-login/auth-discord"),
			nav.NewItem("Login with Facebook", "/guides/auth/social-login/auth-facebook"),
			nav.NewItem("Login with Figma", "/guides/auth/social-login/auth-figma"),
			nav.NewItem("Login with GitHub", "/guides/auth/social-login/auth-github"),
			nav.NewItem("Login with GitLab", "/guides/auth/social-login/auth-gitlab"),
			nav.NewItem("Login with Google", "/guides/auth/social-login/auth-google"),
			nav.NewItem("Login with Kakao", "/guides/auth/social-login/auth-kakao"),
			nav.NewItem("Login with Keycloak", "/guides/auth/social-login/auth-keycloak"),
			nav.NewItem("Login with LinkedIn", "/guides/auth/social-login/auth-linkedin"),
			nav.NewItem("Login with Notion", "/guides/auth/social-login/auth-notion"),
			nav.NewItem("Login with Slack", "/guides/auth/social-login/auth-slack"),
			nav.NewItem("Login with Spotify", "/guides/auth/social-login/auth-spotify"),
			nav.NewItem("Login with Twitch", "/guides/auth/social-login/auth-twitch"),
			nav.NewItem("Login with Twitter", "/guides/auth/social-login/auth-twitter"),
			nav.NewItem("Login with WorkOS", "/guides/auth/social-login/auth-workos"),
			nav.NewItem("Login with Zoom", "/guides/auth/social-login/auth-zoom"),
		)),

		nav.NewHeader("Phone Login", nav.WithItems(
			nav.NewItem("Overview", "/guides/auth/phone-login"),
			nav.NewItem("Use Messagebird", "/guides/auth/phone-login/messagebird"),
			nav.NewItem("Use Twilio", "/guides/auth/phone-login/twilio"),
			nav.NewItem("Use Vonage", "/guides/auth/phone-login/vonage"),
		)),

		nav.NewHeader("Enterprise SSO", nav.WithItems(
			nav.NewItem("Overview", "/guides/auth/enterprise-sso"),
			nav.NewItem("SAML 2.0", "/guides/auth/enterprise-sso/auth-sso-saml"),
		)),

		nav.NewHeader("Authorization", nav.WithItems(
			nav.NewItem("Row Level Security", "/guides/auth/row-level-security"),
			nav.NewItem("Column Level Security", "/guides/auth/column-level-security"),
			nav.NewItem("Managing User Data", "/guides/auth/managing-user-data"),
			nav.NewItem("Multi-Factor Authentication", "/guides/auth/auth-mfa"),
			nav.NewItem("Custom Claims & RBAC", "/guides/auth/custom-claims-and-role-based-access-control-rbac"),
			nav.NewItem("CAPTCHA protection", "/guides/auth/auth-captcha"),
			nav.NewItem("Rate limits", "/guides/auth/rate-limits"),
		)),

		nav.NewHeader("Auth Helpers", nav.WithItems(
			nav.NewItem("Overview", "/guides/auth/auth-helpers"),
			nav.NewItem("Auth UI", "/guides/auth/auth-helpers/auth-ui"),
			nav.NewItem("Next.js", "/guides/auth/auth-helpers/nextjs"),
			nav.NewItem("SvelteKit", "/guides/auth/auth-helpers/sveltekit"),
			nav.NewItem("Remix", "/guides/auth/auth-helpers/remix"),
			nav.NewItem("Flutter Auth UI", "/guides/auth/auth-helpers/flutter-auth-ui"),
		)),

		nav.NewHeader("Deep Dive", nav.WithItems(
			nav.NewItem("Part One: JWTs", "/learn/auth-deep-dive/auth-deep-dive-jwts"),
			nav.NewItem("Part Two: Row Level Security", "/learn/auth-deep-dive/auth-row-level-security"),
			nav.NewItem("Part Three: Policies", "/learn/auth-deep-dive/auth-policies"),
			nav.NewItem("Part Four: GoTrue", "/learn/auth-deep-dive/auth-gotrue"),
			nav.NewItem("Part Five: Google OAuth", "/learn/auth-deep-dive/auth-google-oauth"),
		)),
	))
}
