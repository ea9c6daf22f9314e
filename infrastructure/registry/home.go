package registry

import "github.com/jordienr/docsite/domain/nav"

// homeSections returns the top-level navigation groups rendered on the
// documentation homepage, in declared order.
func homeSections() []nav.Item {
	return []nav.Item{
		nav.NewItem("Home", "/", nav.WithLevel(LevelHome), nav.WithIcon("home")),
		nav.NewItem("Getting Started", "/guides/getting-started", nav.WithLevel(LevelGettingStarted), nav.WithIcon("getting-started")),

		nav.NewHeader("Product", nav.WithItems(
			nav.NewItem("Database", "/guides/database", nav.WithLevel(LevelDatabase), nav.WithIcon("database")),
			nav.NewItem("Auth", "/guides/auth", nav.WithLevel(LevelAuth), nav.WithIcon("auth")),
			nav.NewItem("Edge Functions", "/guides/functions", nav.WithLevel(LevelFunctions), nav.WithIcon("functions")),
			nav.NewItem("Realtime", "/guides/realtime", nav.WithLevel(LevelRealtime), nav.WithIcon("realtime")),
			nav.NewItem("Storage", "/guides/storage", nav.WithLevel(LevelStorage), nav.WithIcon("storage")),
		)),

		nav.NewHeader("Client Library Reference", nav.WithItems(
			nav.NewItem("JavaScript", "/reference/javascript/introduction",
				nav.WithLevel(LevelRefJavaScript), nav.WithIcon("reference-javascript"), nav.WithLightIcon()),
			nav.NewItem("Flutter", "/reference/dart/introduction",
				nav.WithLevel(LevelRefDart), nav.WithIcon("reference-dart"), nav.WithLightIcon()),
			nav.NewItem("Python", "/reference/python/introduction",
				nav.WithLevel(LevelRefPython), nav.WithIcon("reference-python"), nav.WithLightIcon(), nav.AsCommunity()),
			nav.NewItem("C#", "/reference/csharp/introduction",
				nav.WithLevel(LevelRefCSharp), nav.WithIcon("reference-csharp"), nav.WithLightIcon(), nav.AsCommunity()),
			nav.NewItem("Swift", "/reference/swift/introduction",
				nav.WithLevel(LevelRefSwift), nav.WithIcon("reference-swift"), nav.WithLightIcon(), nav.AsCommunity()),
			nav.NewItem("Kotlin", "/reference/kotlin/introduction",
				nav.WithLevel(LevelRefKotlin), nav.WithIcon("reference-kotlin"), nav.WithLightIcon(), nav.AsCommunity()),
		)),

		nav.NewHeader("Platform Tools Reference", nav.WithItems(
			nav.NewItem("CLI", "/reference/cli/introduction",
				nav.WithLevel(LevelRefCLI), nav.WithIcon("reference-cli"), nav.WithLightIcon()),
			nav.NewItem("Management API", "/reference/api/introduction",
				nav.WithLevel(LevelRefAPI), nav.WithIcon("reference-api"), nav.WithLightIcon()),
		)),

		nav.NewHeader("Platform", nav.WithItems(
			nav.NewItem("Platform Guides", "/guides/platform", nav.WithLevel(LevelPlatform), nav.WithIcon("platform")),
			nav.NewItem("Resources", "/guides/resources", nav.WithLevel(LevelResources), nav.WithIcon("resources")),
			nav.NewItem("Self-Hosting", "/guides/self-hosting", nav.WithLevel(LevelSelfHosting), nav.WithIcon("self-hosting")),
		)),

		nav.NewHeader("Self-Hosting Reference", nav.WithItems(
			nav.NewItem("Auth Server", "/reference/self-hosting-auth/introduction",
				nav.WithLevel(LevelRefAuthServer), nav.WithIcon("reference-auth"), nav.WithDarkMode()),
			nav.NewItem("Storage Server", "/reference/self-hosting-storage/introduction",
				nav.WithLevel(LevelRefStorageServer), nav.WithIcon("reference-storage"), nav.WithDarkMode()),
			nav.NewItem("Realtime Server", "/reference/self-hosting-realtime/introduction",
				nav.WithLevel(LevelRefRealtimeServer), nav.WithIcon("reference-realtime"), nav.WithDarkMode()),
		)),
	}
}

// homeTree is the sidebar shown on the documentation homepage itself.
func homeTree() nav.Item {
	return nav.NewHeader("Home", nav.WithItems(
		nav.NewItem("Introduction", "/"),
		nav.NewItem("Features", "/features"),
		nav.NewItem("Architecture", "/architecture"),
		nav.NewHeader("Frameworks", nav.WithItems(
			nav.NewItem("Next.js", "/guides/getting-started/quickstarts/nextjs"),
			nav.NewItem("React", "/guides/getting-started/quickstarts/reactjs"),
			nav.NewItem("Nuxt 3", "/guides/getting-started/quickstarts/nuxtjs"),
			nav.NewItem("Flutter", "/guides/getting-started/quickstarts/flutter"),
			nav.NewItem("SvelteKit", "/guides/getting-started/quickstarts/sveltekit"),
			nav.NewItem("SolidJS", "/guides/getting-started/quickstarts/solidjs"),
			nav.NewItem("Vue", "/guides/getting-started/quickstarts/vue"),
		)),
	))
}

// gettingStartedTree is the "Getting Started" guide tree.
func gettingStartedTree() nav.Item {
	return nav.NewHeader("Getting Started", nav.WithItems(
		nav.NewItem("Features", "/guides/getting-started/features"),
		nav.NewItem("Architecture", "/guides/getting-started/architecture"),
		nav.NewHeader("Quickstarts", nav.WithItems(
			nav.NewItem("Next.js", "/guides/getting-started/quickstarts/nextjs"),
			nav.NewItem("React", "/guides/getting-started/quickstarts/reactjs"),
			nav.NewItem("Nuxt 3", "/guides/getting-started/quickstarts/nuxtjs"),
			nav.NewItem("Flutter", "/guides/getting-started/quickstarts/flutter"),
			nav.NewItem("Android Kotlin", "/guides/getting-started/quickstarts/kotlin"),
			nav.NewItem("SvelteKit", "/guides/getting-started/quickstarts/sveltekit"),
			nav.NewItem("SolidJS", "/guides/getting-started/quickstarts/solidjs"),
			nav.NewItem("Vue", "/guides/getting-started/quickstarts/vue"),
		)),
		nav.NewHeader("Tutorials", nav.WithItems(
			nav.NewItem("Build a User Management App with Next.js", "/guides/getting-started/tutorials/with-nextjs"),
			nav.NewItem("Build a User Management App with React", "/guides/getting-started/tutorials/with-react"),
			nav.NewItem("Build a User Management App with Vue 3", "/guides/getting-started/tutorials/with-vue-3"),
			nav.NewItem("Build a User Management App with Nuxt 3", "/guides/getting-started/tutorials/with-nuxt-3"),
			nav.NewItem("Build a User Management App with Angular", "/guides/getting-started/tutorials/with-angular"),
			nav.NewItem("Build a User Management App with Svelte", "/guides/getting-started/tutorials/with-svelte"),
			nav.NewItem("Build a User Management App with SvelteKit", "/guides/getting-started/tutorials/with-sveltekit"),
			nav.NewItem("Build a User Management App with Flutter", "/guides/getting-started/tutorials/with-flutter"),
			nav.NewItem("Build a User Management App with Expo", "/guides/getting-started/tutorials/with-expo"),
			nav.NewItem("Build a User Management App with Ionic React", "/guides/getting-started/tutorials/with-ionic-react"),
			nav.NewItem("Build a User Management App with Ionic Vue", "/guides/getting-started/tutorials/with-ionic-vue"),
			nav.NewItem("Build a User Management App with Ionic Angular", "/guides/getting-started/tutorials/with-ionic-angular"),
		)),
	))
}
