package cmd

var (
	configPath string

	oldGalleryURL    string
	newGalleryURL    string
	skipConfirmation bool
	deleteGallery    bool
	dryRun           bool

	cookieSource string
	cookieFile   string
)

func initRootFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"specifies the path to your config directory",
	)
}

func initMoveFlags() {
	moveCmd.Flags().StringVar(
		&oldGalleryURL,
		"old-gallery-url",
		"",
		"the gallery url to move images FROM, example https://lpix.org/gallery/User+Name/12345",
	)
	moveCmd.Flags().StringVar(
		&newGalleryURL,
		"new-gallery-url",
		"",
		"the gallery url to move images TO, example https://lpix.org/gallery/User+Name/98765",
	)
	moveCmd.Flags().BoolVar(
		&skipConfirmation,
		"skip-confirmation",
		false,
		"skip the confirmation prompt, only recommended for use in scripts",
	)
	moveCmd.Flags().BoolVar(
		&deleteGallery,
		"delete-gallery",
		false,
		"together with --skip-confirmation, delete the old gallery once all images were moved out of it",
	)
	moveCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"list the images that would be moved without moving them",
	)

	moveCmd.Flags().StringVar(
		&cookieSource,
		"cookie-source",
		"",
		"overrides the cookieSource from the config: browser, curl or header",
	)
	moveCmd.Flags().StringVar(
		&cookieFile,
		"cookie-file",
		"",
		"overrides the cookieFile from the config, implies --cookie-source curl",
	)

	moveCmd.MarkFlagsMutuallyExclusive("dry-run", "delete-gallery")

	_ = moveCmd.MarkFlagRequired("old-gallery-url")
	_ = moveCmd.MarkFlagRequired("new-gallery-url")
}
