package main

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	ansihtml "github.com/danielgatis/go-ansihtml"
	"github.com/danielgatis/go-ansihtml/internal/highlight"
)

// flagKeys maps flag names to their configuration keys.
var flagKeys = map[string]string{
	"output":       "output",
	"outdir":       "outdir",
	"title":        "title",
	"font":         "font",
	"font-size":    "font_size",
	"style-ref":    "style_ref",
	"encoding":     "encoding",
	"line-numbers": "line_numbers",
	"anchors":      "anchors",
	"gutter-color": "gutter_color",
	"art-cp437":    "art_cp437",
	"fragment":     "fragment",
	"wrap":         "wrap",
	"syntax":       "syntax",
	"syntax-style": "syntax_style",
	"watch":        "watch",
	"log-level":    "log_level",
}

// newRootCmd builds the ansifilter command with its own viper instance.
func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "ansifilter [flags] [files...]",
		Short: "Convert ANSI colored text to HTML",
		Long: heredoc.Doc(`
			ansifilter renders text containing ANSI escape sequences as an HTML
			document. Colors, bold, italic, underline, blink and concealed text
			become inline styles; cursor movement and other terminal controls are
			dropped.

			Files may be glob patterns ("logs/**/*.log"). Compressed inputs (gzip,
			zstd) are read transparently. With no files, stdin is converted.
		`),
		Example: heredoc.Doc(`
			make 2>&1 | ansifilter -T build > build.html
			ansifilter -l -a -O html/ 'logs/**/*.log'
			ansifilter --art-cp437 -o art.html art.ans
			ansifilter --syntax go --line-numbers main.go
			ansifilter --watch -o live.html build.log
		`),
		Version:       ansihtml.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}

			logger := buildLogger(opts.LogLevel, zapcore.AddSync(cmd.ErrOrStderr()))
			defer func() { _ = logger.Sync() }()

			c, err := newConverter(*opts, logger, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return c.run(cmd.Context(), args)
		},
	}

	flags := cmd.Flags()

	// Global flags
	flags.StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/ansifilter/config.yaml)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")

	// Output flags
	flags.StringP("output", "o", "", "write the document to this file instead of stdout")
	flags.StringP("outdir", "O", "", "write one <name>.html per input into this directory")
	flags.BoolP("fragment", "f", false, "omit the document header and footer")

	// Document flags
	flags.StringP("title", "T", "", "document title (default: input file name)")
	flags.String("font", ansihtml.DEFAULT_FONT, "font family")
	flags.String("font-size", ansihtml.DEFAULT_FONT_SIZE, "font size")
	flags.String("style-ref", "", "link this external stylesheet")
	flags.String("encoding", "", "declare and write this character encoding (e.g. utf-8, iso-8859-1)")
	flags.BoolP("line-numbers", "l", false, "number output lines")
	flags.BoolP("anchors", "a", false, "add an l_N anchor to every line number")
	flags.String("gutter-color", ansihtml.DEFAULT_GUTTER_COLOR, "line number color (CSS name or #rrggbb)")
	flags.IntP("wrap", "w", 0, "wrap lines after this many columns (0 disables)")

	// Input flags
	flags.Bool("art-cp437", false, "read input as code page 437 ANSI art")
	flags.String("syntax", "", "highlight plain source code first (language name or \"auto\")")
	flags.String("syntax-style", highlight.DefaultStyle, "chroma style for --syntax")
	flags.Bool("watch", false, "convert again whenever an input file changes")

	for flag, key := range flagKeys {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}
