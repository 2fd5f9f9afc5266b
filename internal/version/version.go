package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/fieldworks/farmgate/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/fieldworks/farmgate/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/fieldworks/farmgate/internal/version.Date={{.Date}}
)
