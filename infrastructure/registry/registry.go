// Package registry holds the canonical, statically authored navigation data
// for the documentation site: the homepage sections, the per-product guide
// trees, and the client-library reference registry.
//
// The data is literal and immutable. It is assembled once at process start;
// any referential breakage is an authoring bug and aborts startup.
package registry

import (
	"fmt"
	"sync"

	"github.com/jordienr/docsite/domain/nav"
	"github.com/jordienr/docsite/domain/reference"
)

// Levels of the built-in menu. Every level referenced by a homepage section
// must appear here with a registered subtree.
const (
	LevelHome           = "home"
	LevelGettingStarted = "getting_started"
	LevelDatabase       = "database"
	LevelAuth           = "auth"
	LevelStorage        = "storage"
	LevelFunctions      = "functions"
	LevelRealtime       = "realtime"
	LevelPlatform       = "platform"
	LevelResources      = "resources"
	LevelSelfHosting    = "self_hosting"

	LevelRefJavaScript     = "reference_javascript"
	LevelRefDart           = "reference_dart"
	LevelRefPython         = "reference_python"
	LevelRefCSharp         = "reference_csharp"
	LevelRefSwift          = "reference_swift"
	LevelRefKotlin         = "reference_kotlin"
	LevelRefCLI            = "reference_cli"
	LevelRefAPI            = "reference_api"
	LevelRefAuthServer     = "reference_self_hosting_auth"
	LevelRefStorageServer  = "reference_self_hosting_storage"
	LevelRefRealtimeServer = "reference_self_hosting_realtime"
)

// Menu assembles the built-in navigation menu.
func Menu() nav.Menu {
	m := nav.NewMenu(homeSections()).
		WithSubtree(LevelHome, homeTree()).
		WithSubtree(LevelGettingStarted, gettingStartedTree()).
		WithSubtree(LevelDatabase, databaseTree()).
		WithSubtree(LevelAuth, authTree()).
		WithSubtree(LevelStorage, storageTree()).
		WithSubtree(LevelFunctions, functionsTree()).
		WithSubtree(LevelRealtime, realtimeTree()).
		WithSubtree(LevelPlatform, platformTree()).
		WithSubtree(LevelResources, resourcesTree()).
		WithSubtree(LevelSelfHosting, selfHostingTree())

	for _, st := range referenceTrees() {
		m = m.WithSubtree(st.level, st.root)
	}
	return m
}

// References assembles the built-in reference registry.
func References() reference.List {
	return reference.NewList(referenceGroups())
}

var (
	defaultOnce sync.Once
	defaultMenu nav.Menu
	defaultRefs reference.List
)

// Default returns the validated built-in menu and reference registry.
// It panics on a validation failure: the data is authored in this package,
// so a dangling level or empty header is a bug that must not ship.
func Default() (nav.Menu, reference.List) {
	defaultOnce.Do(func() {
		defaultMenu = Menu()
		defaultRefs = References()
		if err := defaultMenu.Validate(); err != nil {
			panic(fmt.Sprintf("registry: built-in menu is invalid: %v", err))
		}
		if err := defaultRefs.Validate(); err != nil {
			panic(fmt.Sprintf("registry: built-in references are invalid: %v", err))
		}
	})
	return defaultMenu, defaultRefs
}
