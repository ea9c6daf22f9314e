package registry

import (
	"github.com/jordienr/docsite/domain/nav"
	"github.com/jordienr/docsite/domain/reference"
)

// referenceGroups returns the client libraries and tools that have reference
// documentation, in the fixed group order.
func referenceGroups() []reference.Group {
	return []reference.Group{
		reference.NewGroup(reference.GroupClientLibraries, []reference.Entry{
			reference.NewEntry("JavaScript", "supabase-js", []string{"v2", "v1"}, "reference-javascript"),
			reference.NewEntry("Flutter", "supabase-flutter", []string{"v1", "v0"}, "reference-dart"),
			reference.NewEntry("Python", "supabase-py", []string{"v2"}, "reference-python"),
			reference.NewEntry("C#", "supabase-csharp", []string{"v0"}, "reference-csharp"),
			reference.NewEntry("Swift", "supabase-swift", []string{"v1"}, "reference-swift"),
			reference.NewEntry("Kotlin", "supabase-kt", []string{"v1"}, "reference-kotlin"),
		}),
		reference.NewGroup(reference.GroupPlatformTools, []reference.Entry{
			reference.NewEntry("CLI", "", []string{"v1"}, "reference-cli"),
			reference.NewEntry("Management API", "", []string{"v1"}, "reference-api"),
		}),
		reference.NewGroup(reference.GroupSelfHosting, []reference.Entry{
			reference.NewEntry("Auth Server", "gotrue", []string{"v1"}, "reference-auth"),
			reference.NewEntry("Storage Server", "storage-api", []string{"v0"}, "reference-storage"),
			reference.NewEntry("Realtime Server", "realtime", []string{"v2"}, "reference-realtime"),
		}),
	}
}

// subtree pairs a level tag with its sidebar root.
type subtree struct {
	level string
	root  nav.Item
}

// referenceTrees returns the sidebar subtree for every reference level,
// in registration order.
func referenceTrees() []subtree {
	return []subtree{
		{LevelRefJavaScript, clientLibraryTree("JavaScript", "/reference/javascript")},
		{LevelRefDart, clientLibraryTree("Flutter", "/reference/dart")},
		{LevelRefPython, clientLibraryTree("Python", "/reference/python")},
		{LevelRefCSharp, clientLibraryTree("C#", "/reference/csharp")},
		{LevelRefSwift, clientLibraryTree("Swift", "/reference/swift")},
		{LevelRefKotlin, clientLibraryTree("Kotlin", "/reference/kotlin")},
		{LevelRefCLI, cliReferenceTree()},
		{LevelRefAPI, apiReferenceTree()},
		{LevelRefAuthServer, serverReferenceTree("Auth Server", "/reference/self-hosting-auth",
			"Sign up a user", "Sign in a user", "Verify an OTP", "Refresh a session", "Invite a user")},
		{LevelRefStorageServer, serverReferenceTree("Storage Server", "/reference/self-hosting-storage",
			"Create a bucket", "List buckets", "Upload an object", "Download an object", "Delete an object")},
		{LevelRefRealtimeServer, serverReferenceTree("Realtime Server", "/reference/self-hosting-realtime",
			"Connect to a channel", "Track presence", "Broadcast a message", "Listen to database changes")},
	}
}

// clientLibraryTree builds the reference sidebar common to every client
// library. All client libraries implement the same API surface, so the
// tree shape is shared and only the base path differs.
func clientLibraryTree(name, base string) nav.Item {
	return nav.NewHeader(name, nav.WithItems(
		nav.NewItem("Introduction", base+"/introduction"),
		nav.NewItem("Installing", base+"/installing"),
		nav.NewItem("Initializing", base+"/initializing"),
		nav.NewItem("Release Notes", base+"/release-notes"),

		nav.NewHeader("Database", nav.WithItems(
			nav.NewItem("Fetch data", base+"/select"),
			nav.NewItem("Insert data", base+"/insert"),
			nav.NewItem("Update data", base+"/update"),
			nav.NewItem("Upsert data", base+"/upsert"),
			nav.NewItem("Delete data", base+"/delete"),
			nav.NewItem("Call a Postgres function", base+"/rpc"),
			nav.NewItem("Using filters", base+"/using-filters"),
			nav.NewItem("Using modifiers", base+"/using-modifiers"),
		)),

		nav.NewHeader("Auth", nav.WithItems(
			nav.NewItem("Overview", base+"/auth-api"),
			nav.NewItem("Sign up a user", base+"/auth-signup"),
			nav.NewItem("Sign in a user", base+"/auth-signinwithpassword"),
			nav.NewItem("Sign in with OAuth", base+"/auth-signinwithoauth"),
			nav.NewItem("Sign in with OTP", base+"/auth-signinwithotp"),
			nav.NewItem("Sign out a user", base+"/auth-signout"),
			nav.NewItem("Get session", base+"/auth-getsession"),
			nav.NewItem("Get user", base+"/auth-getuser"),
			nav.NewItem("Update a user", base+"/auth-updateuser"),
			nav.NewItem("Reset password for email", base+"/auth-resetpasswordforemail"),
			nav.NewItem("Listen to auth events", base+"/auth-onauthstatechange"),
		)),

		nav.NewHeader("Edge Functions", nav.WithItems(
			nav.NewItem("Invoke a function", base+"/functions-invoke"),
		)),

		nav.NewHeader("Realtime", nav.WithItems(
			nav.NewItem("Subscribe to channel", base+"/subscribe"),
			nav.NewItem("Unsubscribe from a channel", base+"/removechannel"),
			nav.NewItem("Retrieve all channels", base+"/getchannels"),
			nav.NewItem("Broadcast a message", base+"/broadcastmessage"),
		)),

		nav.NewHeader("Storage", nav.WithItems(
			nav.NewItem("Create a bucket", base+"/storage-createbucket"),
			nav.NewItem("Retrieve a bucket", base+"/storage-getbucket"),
			nav.NewItem("List all buckets", base+"/storage-listbuckets"),
			nav.NewItem("Update a bucket", base+"/storage-updatebucket"),
			nav.NewItem("Delete a bucket", base+"/storage-deletebucket"),
			nav.NewItem("Empty a bucket", base+"/storage-emptybucket"),
			nav.NewItem("Upload a file", base+"/storage-from-upload"),
			nav.NewItem("Download a file", base+"/storage-from-download"),
			nav.NewItem("List all files in a bucket", base+"/storage-from-list"),
			nav.NewItem("Move an existing file", base+"/storage-from-move"),
			nav.NewItem("Delete files in a bucket", base+"/storage-from-remove"),
			nav.NewItem("Create a signed URL", base+"/storage-from-createsignedurl"),
			nav.NewItem("Retrieve public URL", base+"/storage-from-getpublicurl"),
		)),
	))
}

// cliReferenceTree is the CLI reference sidebar.
func cliReferenceTree() nav.Item {
	base := "/reference/cli"
	return nav.NewHeader("CLI", nav.WithItems(
		nav.NewItem("Introduction", base+"/introduction"),
		nav.NewItem("Global flags", base+"/global-flags"),
		nav.NewItem("Config reference", base+"/config"),

		nav.NewHeader("Commands", nav.WithItems(
			nav.NewItem("login", base+"/login"),
			nav.NewItem("init", base+"/init"),
			nav.NewItem("start", base+"/start"),
			nav.NewItem("stop", base+"/stop"),
			nav.NewItem("status", base+"/status"),
			nav.NewItem("link", base+"/link"),
			nav.NewItem("db push", base+"/db-push"),
			nav.NewItem("db reset", base+"/db-reset"),
			nav.NewItem("db diff", base+"/db-diff"),
			nav.NewItem("db lint", base+"/db-lint"),
			nav.NewItem("migration new", base+"/migration-new"),
			nav.NewItem("migration list", base+"/migration-list"),
			nav.NewItem("migration repair", base+"/migration-repair"),
			nav.NewItem("functions new", base+"/functions-new"),
			nav.NewItem("functions serve", base+"/functions-serve"),
			nav.NewItem("functions deploy", base+"/functions-deploy"),
			nav.NewItem("secrets set", base+"/secrets-set"),
			nav.NewItem("secrets list", base+"/secrets-list"),
			nav.NewItem("gen types", base+"/gen-types"),
		)),
	))
}

// apiReferenceTree is the Management API reference sidebar.
func apiReferenceTree() nav.Item {
	base := "/reference/api"
	return nav.NewHeader("Management API", nav.WithItems(
		nav.NewItem("Introduction", base+"/introduction"),
		nav.NewItem("Authentication", base+"/authentication"),
		nav.NewItem("Rate limits", base+"/rate-limits"),

		nav.NewHeader("Endpoints", nav.WithItems(
			nav.NewItem("List all projects", base+"/list-all-projects"),
			nav.NewItem("Create a project", base+"/create-a-project"),
			nav.NewItem("List all organizations", base+"/list-all-organizations"),
			nav.NewItem("Create an organization", base+"/create-an-organization"),
			nav.NewItem("List all functions", base+"/list-all-functions"),
			nav.NewItem("Deploy a function", base+"/create-a-function"),
			nav.NewItem("List all secrets", base+"/list-all-secrets"),
			nav.NewItem("Create secrets", base+"/bulk-create-secrets"),
			nav.NewItem("Run a query", base+"/run-a-query"),
		)),
	))
}

// serverReferenceTree builds the sidebar for a self-hosted server reference.
func serverReferenceTree(name, base string, operations ...string) nav.Item {
	ops := make([]nav.Item, len(operations))
	for i, op := range operations {
		ops[i] = nav.NewItem(op, base+"/"+slugify(op))
	}
	return nav.NewHeader(name, nav.WithItems(
		nav.NewItem("Introduction", base+"/introduction"),
		nav.NewItem("Configuration", base+"/config"),
		nav.NewHeader("Operations", nav.WithItems(ops...)),
	))
}

func slugify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-':
			out = append(out, '-')
		}
	}
	return string(out)
}
