package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lpixmove",
	Short: "Move all images from one lpix gallery to another.",
	Long: `Move all images from one lpix gallery to another, and optionally delete the old gallery.

lpixmove reuses the session of your logged in browser, so log in to lpix.org first.
Cookies can also be read from a "Copy as cURL" file or a raw cookie header, see the config file.

Provide a configuration file using one of the following methods:
1. Use the --config <path> or -c <path> flag.
2. Place a config.yaml file in the default user configuration directory (e.g., ~/.config/lpixmove/).
3. Place a config.yaml file a folder inside your home directory (e.g., ~/.lpixmove/).
4. Place a config.yaml file in the current working directory.

Example:
  lpixmove move --old-gallery-url https://lpix.org/gallery/User+Name/12345 --new-gallery-url https://lpix.org/gallery/User+Name/98765`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	initRootFlags()
	initMoveFlags()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(moveCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("ERROR:", err)
		os.Exit(1)
	}
}
