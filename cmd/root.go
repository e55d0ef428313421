package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pdfdusk/converter"
	"pdfdusk/converter/colors"
)

var (
	outputFile   string
	presetName   string
	strategyName string
	schemeName   string
	bgHex        string
	textHex      string
	noWatermark  bool
	texture      bool
	keepImages   bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "pdfdusk <input.pdf>",
	Short: "Convert PDFs to dark mode",
	Long: `A CLI tool that converts PDF documents to a dark mode variant
for comfortable on-screen reading.

Pages are darkened with layered translucent fills; the original content
is never removed, only drawn over. Presets:
  - reading:      dark neutral background, watermark on (default)
  - printing:     lighter background, no watermark
  - presentation: blue-tinted background, watermark and texture on`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		data, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}

		// Pre-check before processing: the engine itself does not
		// re-enforce the page ceiling.
		v := converter.ValidatePDF(data)
		if !v.Valid {
			return fmt.Errorf("invalid input: %w", v.Err)
		}

		// Set default output file if not specified
		if outputFile == "" {
			outputFile = strings.TrimSuffix(inputFile, ".pdf") + "_dark.pdf"
		}

		// If preset not specified, ask user interactively
		if presetName == "" {
			presetName = selectPresetInteractively()
		}

		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		fmt.Printf("Converting %s (%d pages) using the %s preset...\n", inputFile, v.PageCount, presetName)

		res := converter.NewEngine(opts, logger).Process(data)
		if !res.Success {
			return fmt.Errorf("conversion failed: %s", strings.Join(res.Errors, "; "))
		}

		if err := os.WriteFile(outputFile, res.Output, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Printf("Successfully created: %s\n", outputFile)
		fmt.Printf("  Pages:     %d\n", res.PageCount)
		fmt.Printf("  Size:      %d -> %d bytes\n", res.OriginalSize, res.ProcessedSize)
		fmt.Printf("  Time:      %s\n", res.ProcessingTime)
		if len(res.Errors) > 0 {
			fmt.Printf("  Warnings:  %d page(s) incomplete\n", len(res.Errors))
			for _, e := range res.Errors {
				fmt.Printf("    - %s\n", e)
			}
		}
		return nil
	},
}

// buildOptions resolves the preset and applies command line overrides.
func buildOptions(cmd *cobra.Command) (converter.Options, error) {
	opts := converter.GetPresetOptions(presetName)

	if strategyName != "" {
		s, err := converter.ParseStrategy(strategyName)
		if err != nil {
			return opts, err
		}
		opts.Strategy = s
	}

	if schemeName != "" {
		scheme, err := colors.GetScheme(schemeName)
		if err != nil {
			return opts, fmt.Errorf("%w (available: %s)", err, strings.Join(colors.ListSchemes(), ", "))
		}
		opts.Background = scheme.Background
		opts.Text = scheme.Text
	}
	if bgHex != "" || textHex != "" {
		if bgHex == "" || textHex == "" {
			return opts, fmt.Errorf("--bg and --text must be given together")
		}
		scheme, err := colors.NewCustomScheme(bgHex, textHex)
		if err != nil {
			return opts, err
		}
		opts.Background = scheme.Background
		opts.Text = scheme.Text
	}

	if cmd.Flags().Changed("no-watermark") {
		opts.AddWatermark = !noWatermark
	}
	if cmd.Flags().Changed("texture") {
		opts.GridPattern = texture
	}
	if cmd.Flags().Changed("preserve-images") {
		opts.PreserveImages = keepImages
	}

	return opts, nil
}

func selectPresetInteractively() string {
	fmt.Println("\nSelect processing preset:")
	fmt.Println("  [1] reading      - dark neutral background, optimized for screens")
	fmt.Println("  [2] printing     - lighter background, no watermark")
	fmt.Println("  [3] presentation - tinted background with texture overlay")
	fmt.Print("\nEnter choice (1-3): ")

	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)

	switch input {
	case "1", "reading":
		return "reading"
	case "2", "printing":
		return "printing"
	case "3", "presentation":
		return "presentation"
	default:
		fmt.Println("Invalid choice, defaulting to 'reading' preset")
		return "reading"
	}
}

func init() {
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output PDF file (default: <input>_dark.pdf)")
	rootCmd.Flags().StringVarP(&presetName, "preset", "p", "",
		"Processing preset: "+strings.Join(converter.PresetNames(), ", "))
	rootCmd.Flags().StringVarP(&strategyName, "strategy", "s", "", "Darkening strategy: true-inversion, overlay, advanced or preserve-images")
	rootCmd.Flags().StringVar(&schemeName, "scheme", "", "Named color scheme overriding the preset colors")
	rootCmd.Flags().StringVar(&bgHex, "bg", "", "Custom background color as hex (with --text)")
	rootCmd.Flags().StringVar(&textHex, "text", "", "Custom text color as hex (with --bg)")
	rootCmd.Flags().BoolVar(&noWatermark, "no-watermark", false, "Disable the watermark decorations")
	rootCmd.Flags().BoolVar(&texture, "texture", false, "Enable the diagonal texture (advanced strategy)")
	rootCmd.Flags().BoolVar(&keepImages, "preserve-images", true, "Keep heuristic image regions brighter (preserve-images strategy)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose diagnostics")
}

// SetVersionInfo wires the build-time version variables into the command.
func SetVersionInfo(version, buildTime, gitCommit string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", version, buildTime, gitCommit)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
