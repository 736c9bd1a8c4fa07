package version

var (
	// Version is the full version string.
	Version = "1.0.0"
	// GitCommit is set with --ldflags "-X github.com/unionlabs/bech32/version.GitCommit=$(git rev-parse HEAD)"
	GitCommit string
)

func init() {
	if GitCommit != "" {
		Version += "-" + GitCommit[:8]
	}
}
