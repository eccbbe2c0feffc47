package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/microapp"
	"github.com/xy-planning-network/microapp/page"
	"github.com/xy-planning-network/microapp/ranger"

	// Registers the example micro-apps with ranger.
	_ "github.com/xy-planning-network/microapp/example/greeter"
)

const (
	appsDirEnvVar       = "MICROAPP_DIR"
	defaultAppsDir      = "apps"
	launchPageDirEnvVar = "LAUNCH_PAGE_DIR"
)

var (
	serveAppsDir   string
	serveEnv       string
	serveLaunchDir string
	serveRateLimit float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve every micro-app in the apps directory",
	Long: `Serve every micro-app found in the apps directory until interrupted.

Each subdirectory holding a config.json and a page.html.template is a micro-app.
Directories named after a registered micro-app run its Go code;
all others serve their page with the replacements in their config.json.

Example:
  microapp serve --dir ./apps
  microapp serve --dir ./apps --launch-dir ./framework --rate-limit 5`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAppsDir, "dir", microapp.EnvVarOrString(appsDirEnvVar, defaultAppsDir), "Directory holding one directory per micro-app")
	serveCmd.Flags().StringVar(&serveLaunchDir, "launch-dir", os.Getenv(launchPageDirEnvVar), "Directory whose page_open.html replaces the built-in launch page")
	serveCmd.Flags().StringVar(&serveEnv, "env", "", "Environment to run in (DEVELOPMENT, PRODUCTION, STAGING, TESTING)")
	serveCmd.Flags().Float64Var(&serveRateLimit, "rate-limit", 0, "Requests per second allowed from one client address; 0 keeps the RATE_LIMIT default")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := []ranger.RangerOption{ranger.WithLaunchFS(page.NewOverlayFS(serveLaunchDir))}
	if serveEnv != "" {
		opts = append(opts, ranger.WithEnv(microapp.Environment(strings.ToUpper(serveEnv))))
	}

	if serveRateLimit > 0 {
		opts = append(opts, ranger.WithRateLimit(serveRateLimit, 0))
	}

	f := ranger.NewFleet(nil, opts...)
	n, err := f.Discover(ctx, serveAppsDir)
	if err != nil {
		return err
	}

	if n == 0 {
		return fmt.Errorf("%w: no micro-apps in %s", microapp.ErrNotExist, serveAppsDir)
	}

	f.Settle()
	if len(f.Rangers()) == 0 {
		return fmt.Errorf("%w: none of the %d micro-apps in %s", ranger.ErrNotStarted, n, serveAppsDir)
	}

	return f.Guide(ctx)
}
