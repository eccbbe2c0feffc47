package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "microapp",
	Short: "Host small single-page micro-apps",
	Long: `microapp serves every micro-app found in an apps directory,
each on its own port, behind an optional basic authentication gate.

It also prepares the material a micro-app's config.json holds:
bcrypt password hashes and values encrypted for the authenticated user.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("microapp version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
