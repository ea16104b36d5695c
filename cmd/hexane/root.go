package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/hexane-dev/hexane/pkg/bytesize"
	"github.com/hexane-dev/hexane/pkg/dump"
	"github.com/hexane-dev/hexane/pkg/input"
	"github.com/hexane-dev/hexane/pkg/theme"
)

var (
	flagLength        string
	flagBytes         string
	flagCount         string
	flagSkip          string
	flagBlockSize     string
	flagDisplayOffset string
	flagPanels        string
	flagGroupSize     int
	flagEndianness    string
	flagLittleEndian  bool
	flagBase          string
	flagBorder        string
	flagCharTable     string
	flagTheme         string
	flagColor         string
	flagPlain         bool
	flagNoChars       bool
	flagChars         bool
	flagNoPosition    bool
	flagNoSqueezing   bool
	flagTermWidth     int
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hexane [FILE]",
		Short: "A command-line hex viewer",
		Long: `Hexane renders files and streams as hex dump lines: byte offsets on the
left, grouped byte values in a configurable base in the middle, and a
character panel on the right. Repeated lines are squeezed to a single
asterisk. If no FILE argument is given, input is read from STDIN.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.SetNormalizeFunc(normalizeFlagName)
	f.StringVarP(&flagLength, "length", "n", "",
		"Only read N bytes from the input. The N argument can also include a unit with a decimal prefix (kB, MB, ..) or binary prefix (KiB, MiB, ..), or can be specified using a hex number. Examples: --length=64, --length=4KiB, --length=0xff")
	f.StringVarP(&flagBytes, "bytes", "c", "",
		"An alias for -n/--length")
	f.StringVarP(&flagCount, "count", "l", "",
		"Yet another alias for -n/--length")
	f.StringVarP(&flagSkip, "skip", "s", "",
		"Skip the first N bytes of the input. The N argument can also include a unit (see --length for details). A negative value is valid and will seek from the end of the file.")
	f.StringVar(&flagBlockSize, "block-size", "",
		fmt.Sprintf("Sets the size of the block unit to SIZE (default is %d). Examples: --block-size=1024, --block-size=4kB", bytesize.DefaultBlockSize))
	f.StringVarP(&flagDisplayOffset, "display-offset", "o", "",
		"Add N bytes to the displayed file position. The N argument can also include a unit (see --length for details). A negative value subtracts from the displayed position.")
	f.StringVar(&flagPanels, "panels", "auto",
		"Panel layout: auto, 1 (hex only) or 2 (hex and characters). The auto mode drops the character panel when the terminal is too narrow for both.")
	f.IntVarP(&flagGroupSize, "group-size", "g", 1,
		"Number of bytes that should be grouped together. Possible group sizes are 1, 2, 4, 8. Use --endianness to control the ordering of the bytes within a group. '--groupsize' can be used as an alias (xxd-compatibility).")
	f.StringVar(&flagEndianness, "endianness", "little",
		"Whether to print out groups in little-endian or big-endian format. This option only has an effect if the --group-size is larger than 1. '-e' can be used as an alias for '--endianness=little'.")
	f.BoolVarP(&flagLittleEndian, "little-endian", "e", false,
		"An alias for '--endianness=little'.")
	f.StringVarP(&flagBase, "base", "b", "hexadecimal",
		"Sets the base used for the bytes. The possible options are binary, octal, decimal, and hexadecimal.")
	f.StringVar(&flagBorder, "border", "unicode",
		"Whether to draw a border with Unicode characters, ASCII characters, or none at all")
	f.StringVar(&flagCharTable, "character-table", "default",
		`Defines how bytes are mapped to characters: "default" shows printable ASCII characters as-is, '⋄' for NULL bytes, ' ' for space, '_' for other ASCII whitespace, '•' for other ASCII characters, and '×' for non-ASCII bytes; "ascii" shows printable ASCII as-is, ' ' for space, '.' for everything else; "codepage-437" uses code page 437.`)
	f.StringVar(&flagTheme, "theme", theme.Default,
		"Color theme: a built-in name or a path to a YAML theme file. The HEXANE_COLOR_* environment variables override individual colors.")
	f.StringVar(&flagColor, "color", "always",
		"When to use colors: always, auto, never, force. The 'auto' mode only displays colors if the output goes to an interactive terminal. 'force' can be used to override the NO_COLOR environment variable.")
	f.BoolVarP(&flagPlain, "plain", "p", false,
		"Display output with --no-characters, --no-position, --border=none, and --color=never.")
	f.BoolVar(&flagNoChars, "no-characters", false,
		"Do not show the character panel on the right.")
	f.BoolVarP(&flagChars, "characters", "C", false,
		"Show the character panel on the right. This is the default, unless --no-characters has been specified.")
	f.BoolVarP(&flagNoPosition, "no-position", "P", false,
		"Do not display the position panel on the left.")
	f.BoolVarP(&flagNoSqueezing, "no-squeezing", "v", false,
		"Displays all input data. Otherwise any number of output lines which would be identical to the preceding line are replaced with a line comprised of a single asterisk.")
	f.IntVar(&flagTermWidth, "terminal-width", 0,
		"Sets the number of terminal columns to be displayed, instead of detecting them. Only consulted by the auto panel mode; cannot be used with --panels.")

	_ = f.MarkHidden("count")
	_ = f.MarkHidden("little-endian")
	cmd.MarkFlagsMutuallyExclusive("length", "bytes", "count")
	cmd.MarkFlagsMutuallyExclusive("terminal-width", "panels")

	cmd.AddCommand(versionCmd)
	return cmd
}

// normalizeFlagName maps the xxd-compatible --groupsize spelling onto
// --group-size.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "groupsize" {
		name = "group-size"
	}
	return pflag.NormalizedName(name)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	blockSize := int64(bytesize.DefaultBlockSize)
	if flagBlockSize != "" {
		bs, err := bytesize.ParseBlockSize(flagBlockSize)
		if err != nil {
			return fmt.Errorf("failed to parse --block-size argument %q: %w", flagBlockSize, err)
		}
		blockSize = bs
	}

	length := int64(-1)
	if arg := firstNonEmpty(flagLength, flagBytes, flagCount); arg != "" {
		n, err := bytesize.ParseCount(arg, blockSize)
		if err != nil {
			return fmt.Errorf("failed to parse --length argument %q: %w", arg, err)
		}
		length = int64(n)
	}

	var displayOffset int64
	if flagDisplayOffset != "" {
		a, err := bytesize.Parse(flagDisplayOffset, blockSize)
		if err != nil {
			return fmt.Errorf("failed to parse --display-offset argument %q: %w", flagDisplayOffset, err)
		}
		displayOffset = a.Value
		if a.Anchor == bytesize.AnchorEnd {
			displayOffset = -displayOffset
		}
	}

	base, err := dump.ParseBase(flagBase)
	if err != nil {
		return err
	}
	endianness := dump.EndianLittle
	if !flagLittleEndian {
		endianness, err = dump.ParseEndianness(flagEndianness)
		if err != nil {
			return err
		}
	}
	borderArg := flagBorder
	if flagPlain && !cmd.Flags().Changed("border") {
		borderArg = "none"
	}
	border, err := dump.ParseBorderStyle(borderArg)
	if err != nil {
		return err
	}
	charTable, err := dump.ParseCharTable(flagCharTable)
	if err != nil {
		return err
	}
	panels, err := dump.ParsePanelsMode(flagPanels)
	if err != nil {
		return err
	}

	showChars := !flagNoChars
	if flagChars {
		showChars = true
	}
	if flagPlain {
		showChars = false
	}
	showOffset := !flagNoPosition && !flagPlain

	colorArg := flagColor
	if flagPlain && !cmd.Flags().Changed("color") {
		colorArg = "never"
	}
	showColor, err := resolveColor(colorArg)
	if err != nil {
		return err
	}

	var palette *dump.Palette
	if showColor || cmd.Flags().Changed("theme") {
		palette, err = theme.NewLoader().Load(flagTheme)
		if err != nil {
			return err
		}
		palette.SetEnabled(showColor)
	}

	terminalWidth := flagTermWidth
	if terminalWidth <= 0 {
		if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil {
				terminalWidth = w
			}
		}
	}

	var src *input.Source
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = input.File(f)
	} else {
		src = input.Reader(cmd.InOrStdin())
	}

	var skipPos int64
	if flagSkip != "" {
		amount, err := bytesize.Parse(flagSkip, blockSize)
		if err != nil {
			return fmt.Errorf("failed to parse --skip argument %q: %w", flagSkip, err)
		}
		skipPos, err = src.Skip(amount)
		if err != nil {
			return fmt.Errorf("failed to jump to the desired input position: %w", err)
		}
	}

	printer, err := dump.NewPrinter(dump.Config{
		Base:          base,
		GroupSize:     flagGroupSize,
		Endianness:    endianness,
		Border:        border,
		Panels:        panels,
		Chars:         charTable,
		ShowColor:     showColor,
		Colors:        palette,
		ShowChars:     showChars,
		ShowOffset:    showOffset,
		Squeeze:       !flagNoSqueezing,
		Skip:          uint64(skipPos),
		Length:        length,
		DisplayOffset: displayOffset,
		TerminalWidth: terminalWidth,
		Warnf: func(format string, a ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), "hexane: "+format+"\n", a...)
		},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err := printer.Print(ctx, src, out); err != nil {
		out.Flush()
		return err
	}
	return out.Flush()
}

// resolveColor turns the --color mode into an on/off decision, honoring
// the NO_COLOR convention for every mode except force.
func resolveColor(mode string) (bool, error) {
	noColor := os.Getenv("NO_COLOR") != ""
	switch mode {
	case "never":
		return false, nil
	case "force":
		return true, nil
	case "always":
		return !noColor, nil
	case "auto":
		if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
			return false, nil
		}
		return termenv.EnvColorProfile() != termenv.Ascii, nil
	}
	return false, fmt.Errorf("invalid --color argument %q, expected always, auto, never or force", mode)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
