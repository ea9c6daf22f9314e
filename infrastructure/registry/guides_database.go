package registry

import "github.com/jordienr/docsite/domain/nav"

// databaseTree is the full "Database" guide tree.
func databaseTree() nav.Item {
	return nav.NewHeader("Database", nav.WithItems(
		nav.NewItem("Overview", "/guides/database"),
		nav.NewItem("Connecting to your database", "/guides/database/connecting-to-postgres"),
		nav.NewItem("Importing data into your database", "/guides/database/import-data"),
		nav.NewItem("Securing your data", "/guides/database/secure-data"),

		nav.NewHeader("Database basics", nav.WithItems(
			nav.NewItem("Tables and Data", "/guides/database/tables"),
			nav.NewItem("Working with Arrays", "/guides/database/arrays"),
			nav.NewItem("Working with JSON", "/guides/database/json"),
			nav.NewItem("Managing Indexes", "/guides/database/indexes"),
			nav.NewItem("Full Text Search", "/guides/database/full-text-search"),
			nav.NewItem("Partitioning your tables", "/guides/database/partitions"),
			nav.NewItem("Managing Connections", "/guides/database/connection-management"),
		)),

		nav.NewHeader("Access and security", nav.WithItems(
			nav.NewItem("Row Level Security", "/guides/database/postgres/row-level-security"),
			nav.NewItem("Column Level Security", "/guides/database/postgres/column-level-security"),
			nav.NewItem("Hardening the Data API", "/guides/database/hardening-data-api"),
			nav.NewItem("Custom Claims & RBAC", "/guides/database/postgres/custom-claims-and-role-based-access-control-rbac"),
			nav.NewItem("Managing Postgres Roles", "/guides/database/postgres/roles"),
			nav.NewItem("Managing secrets with Vault", "/guides/database/vault"),
			nav.NewItem("Superuser Access and Unsupported Operations", "/guides/database/postgres/roles-superuser"),
		)),

		nav.NewHeader("Configuration, optimization, and testing", nav.WithItems(
			nav.NewItem("Database Configuration", "/guides/database/postgres/configuration"),
			nav.NewItem("Query Optimization", "/guides/database/query-optimization"),
			nav.NewItem("Database Advisors", "/guides/database/database-advisors"),
			nav.NewItem("Testing Your Database", "/guides/database/testing"),
			nav.NewItem("Customizing Postgres Config", "/guides/database/custom-postgres-config"),
		)),

		nav.NewHeader("Debugging", nav.WithItems(
			nav.NewItem("Timeouts", "/guides/database/postgres/timeouts"),
			nav.NewItem("Debugging and monitoring", "/guides/database/inspect"),
			nav.NewItem("Debugging performance issues", "/guides/database/debugging-performance"),
			nav.NewItem("Supavisor", "/guides/database/supavisor"),
		)),

		nav.NewHeader("ORM Quickstarts", nav.WithItems(
			nav.NewItem("Prisma", "/guides/database/prisma"),
			nav.NewItem("Drizzle", "/guides/database/drizzle"),
			nav.NewItem("Postgres.js", "/guides/database/postgres-js"),
		)),

		nav.NewHeader("GUI quickstarts", nav.WithItems(
			nav.NewItem("pgAdmin", "/guides/database/pgadmin"),
			nav.NewItem("PSQL", "/guides/database/psql"),
			nav.NewItem("DBeaver", "/guides/database/dbeaver"),
			nav.NewItem("Metabase", "/guides/database/metabase"),
			nav.NewItem("Beekeeper Studio", "/guides/database/beekeeper-studio"),
		)),

		nav.NewHeader("Database replication", nav.WithItems(
			nav.NewItem("Overview", "/guides/database/replication"),
			nav.NewItem("Setting up replication", "/guides/database/replication/setting-up-replication"),
			nav.NewItem("Monitoring replication", "/guides/database/replication/monitoring-replication"),
		)),

		nav.NewHeader("Extensions", nav.WithItems(
			nav.NewItem("Overview", "/guides/database/extensions"),
			nav.NewItem("HypoPG: Hypothetical indexes", "/guides/database/extensions/hypopg"),
			nav.NewItem("plv8: Javascript Language", "/guides/database/extensions/plv8"),
			nav.NewItem("http: RESTful Client", "/guides/database/extensions/http"),
			nav.NewItem("index_advisor: Query optimization", "/guides/database/extensions/index_advisor"),
			nav.NewItem("PGAudit: Postgres Auditing", "/guides/database/extensions/pgaudit"),
			nav.NewItem("pgjwt: JSON Web Tokens", "/guides/database/extensions/pgjwt"),
			nav.NewItem("PGroonga: Multilingual Full Text Search", "/guides/database/extensions/pgroonga"),
			nav.NewItem("pgRouting: Geospatial Routing", "/guides/database/extensions/pgrouting"),
			nav.NewItem("pg_cron: Schedule Recurring Jobs", "/guides/database/extensions/pg_cron"),
			nav.NewItem("pg_graphql: GraphQL Support", "/guides/database/extensions/pg_graphql"),
			nav.NewItem("pg_hashids: Short UIDs", "/guides/database/extensions/pg_hashids"),
			nav.NewItem("pg_jsonschema: JSON Schema Validation", "/guides/database/extensions/pg_jsonschema"),
			nav.NewItem("pg_net: Async Networking", "/guides/database/extensions/pg_net"),
			nav.NewItem("pg_plan_filter: Restrict Total Cost", "/guides/database/extensions/pg_plan_filter"),
			nav.NewItem("pgvector: Embeddings and vector similarity", "/guides/database/extensions/pgvector"),
			nav.NewItem("pg_stat_statements: SQL Planning and Execution Statistics", "/guides/database/extensions/pg_stat_statements"),
			nav.NewItem("PostGIS: Geo queries", "/guides/database/extensions/postgis"),
			nav.NewItem("pgmq: Queues", "/guides/database/extensions/pgmq"),
			nav.NewItem("pg_repack: Storage Optimization", "/guides/database/extensions/pg_repack"),
			nav.NewItem("pgsodium: Encryption Features", "/guides/database/extensions/pgsodium"),
			nav.NewItem("pgTAP: Unit Testing", "/guides/database/extensions/pgtap"),
			nav.NewItem("plpgsql_check: PL/pgSQL Linter", "/guides/database/extensions/plpgsql_check"),
			nav.NewItem("timescaledb: Time-Series Data", "/guides/database/extensions/timescaledb"),
			nav.NewItem("uuid-ossp: Unique Identifiers", "/guides/database/extensions/uuid-ossp"),
			nav.NewItem("RUM: Improved Inverted Indexes", "/guides/database/extensions/rum"),
		)),

		nav.NewHeader("Functions and webhooks", nav.WithItems(
			nav.NewItem("Database Functions", "/guides/database/functions"),
			nav.NewItem("Database Webhooks", "/guides/database/webhooks"),
		)),

		nav.NewHeader("Examples", nav.WithItems(
			nav.NewItem("Drop All Tables in a Schema", "/guides/database/postgres/dropping-all-tables-in-schema"),
			nav.NewItem("Select First Row per Group", "/guides/database/postgres/first-row-in-group"),
			nav.NewItem("Print PostgreSQL Version", "/guides/database/postgres/which-version-of-postgres"),
		)),
	))
}
