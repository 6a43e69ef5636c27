package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/scalecode-solutions/jptext"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// converters are the streaming conversions of `jptext convert`.
var converters = map[string]jptext.Transformer{
	"katakana":        jptext.ToKatakana,
	"hiragana":        jptext.ToHiragana,
	"wide-kana":       jptext.WidenKatakana,
	"narrow-kana":     jptext.NarrowKatakana,
	"wide-alnum":      jptext.WidenAlphanumeric,
	"narrow-alnum":    jptext.NarrowAlphanumeric,
	"remove-space":    jptext.RemoveSpace,
	"normalize-space": jptext.NormalizeSpace,
}

// modeTrim needs the whole input and is handled outside converters.
const modeTrim = "trim"

func convertModes() []string {
	modes := []string{modeTrim}
	for mode := range converters {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}

func newRootCommand() *cobra.Command {
	a := newApp()

	root := &cobra.Command{
		Use:           "jptext",
		Short:         "Classify and convert Japanese text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (default $HOME/.jptext.yaml)")
	flags.StringP(keyFormat, "f", formatText, "output format: text, json, or yaml")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn, or error")
	for _, key := range []string{keyConfig, keyFormat, keyLogLevel} {
		// Lookup cannot fail for flags defined just above.
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		newConvertCommand(a),
		newStatsCommand(a),
		newWidthCommand(a),
		newExtractCommand(a),
		newClassifyCommand(a),
	)
	return root
}

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <mode> [text...]",
		Short: "Convert between script and width forms",
		Long: `Convert text between script and width forms.

Modes: ` + strings.Join(convertModes(), ", ") + `.

Input from stdin is streamed and written back unchanged apart from the
conversion; "trim" reads all of it first.`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return convertModes(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, args := args[0], args[1:]
			a.logger.Debug("convert", "mode", mode)
			if mode == modeTrim {
				text, err := a.inputString(cmd, args)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), jptext.TrimWhitespace(text))
				return err
			}
			t, ok := converters[mode]
			if !ok {
				return fmt.Errorf("unknown mode %q (want one of %s)", mode, strings.Join(convertModes(), ", "))
			}
			return a.stream(cmd, args, t)
		},
	}
}

// stream copies the input through t. Results of argument input end with a
// newline; stdin is copied as is.
func (a *app) stream(cmd *cobra.Command, args []string, t jptext.Transformer) error {
	r, fromArgs, err := a.input(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	n, err := io.Copy(out, transform.NewReader(r, t))
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	a.logger.Debug("converted", "bytes", n)
	if fromArgs {
		_, err = fmt.Fprintln(out)
	}
	return err
}

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [text...]",
		Short: "Count characters by script and width",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputString(cmd, args)
			if err != nil {
				return err
			}
			stats := jptext.Stats(text)
			if a.format() != formatText {
				return a.encode(cmd.OutOrStdout(), stats)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "total\t%d\n", stats.Total)
			fmt.Fprintf(w, "hiragana\t%d\n", stats.Hiragana)
			fmt.Fprintf(w, "katakana\t%d\n", stats.Katakana)
			fmt.Fprintf(w, "kanji\t%d\n", stats.Kanji)
			fmt.Fprintf(w, "full-width\t%d\n", stats.FullWidth)
			fmt.Fprintf(w, "half-width\t%d\n", stats.HalfWidth)
			fmt.Fprintf(w, "display width\t%d\n", stats.DisplayWidth)
			return w.Flush()
		},
	}
}

func newWidthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "width [text...]",
		Short: "Print the display width in columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputString(cmd, args)
			if err != nil {
				return err
			}
			width := jptext.DisplayWidth(text)
			if a.format() != formatText {
				return a.encode(cmd.OutOrStdout(), map[string]int{"displayWidth": width})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), width)
			return err
		},
	}
}

func newExtractCommand(a *app) *cobra.Command {
	var scriptName string
	cmd := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Keep only the characters of one script",
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := jptext.ParseScript(strings.ToLower(scriptName))
			if err != nil {
				return err
			}
			return a.stream(cmd, args, jptext.Keep(script))
		},
	}
	cmd.Flags().StringVarP(&scriptName, "script", "s", jptext.ScriptKanji.String(), "script to keep: hiragana, katakana, kanji, or other")
	return cmd
}

// runeInfo is one line of `jptext classify`.
type runeInfo struct {
	Char      string `json:"char" yaml:"char"`
	CodePoint string `json:"codePoint" yaml:"codePoint"`
	Script    string `json:"script" yaml:"script"`
	Width     string `json:"width" yaml:"width"`
}

func newClassifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [text...]",
		Short: "Print script and width of every character",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputString(cmd, args)
			if err != nil {
				return err
			}
			infos := make([]runeInfo, 0, len(text))
			for _, r := range text {
				infos = append(infos, runeInfo{
					Char:      string(r),
					CodePoint: fmt.Sprintf("U+%04X", r),
					Script:    jptext.ScriptOf(r).String(),
					Width:     jptext.WidthOf(r).String(),
				})
			}
			if a.format() != formatText {
				return a.encode(cmd.OutOrStdout(), infos)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", printable(info.Char), info.CodePoint, info.Script, info.Width)
			}
			return w.Flush()
		},
	}
}

// printable quotes control characters and spaces so that they stay visible
// in a table.
func printable(char string) string {
	for _, r := range char {
		if r < 0x20 || r == 0x7f || jptext.IsWhitespace(r) {
			return fmt.Sprintf("%q", char)
		}
	}
	return char
}

// encode writes v in the configured structured format.
func (a *app) encode(w io.Writer, v any) error {
	switch a.format() {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
