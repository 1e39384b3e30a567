package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jslex/parse"
	"github.com/jslex/parse/js"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Tokenize an ECMAScript source file",
	Long:  `Tokenize reads an ECMAScript source file, or standard input when the file is -, and prints its token stream.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("module", false, "parse as a module")
	tokenizeCmd.Flags().Bool("strict", false, "parse as strict mode code")
	tokenizeCmd.Flags().Bool("next", false, "enable stage-3 proposal syntax")
	tokenizeCmd.Flags().Bool("raw", false, "include raw source slices")
	tokenizeCmd.Flags().Bool("webcompat", true, "allow Annex B web compatibility syntax")
}

// tokenJSON is one token of the json output format.
type tokenJSON struct {
	Kind   string     `json:"kind"`
	Start  int        `json:"start"`
	End    int        `json:"end"`
	Line   int        `json:"line"`
	Column int        `json:"column"`
	Value  string     `json:"value,omitempty"`
	Raw    string     `json:"raw,omitempty"`
	Regex  *regexJSON `json:"regex,omitempty"`
}

type regexJSON struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return fmt.Errorf("loading %s: %w", configFile, err)
	}
	for flag, dst := range map[string]*bool{
		"module":    &opts.Module,
		"strict":    &opts.Strict,
		"next":      &opts.Next,
		"raw":       &opts.Raw,
		"webcompat": &opts.WebCompat,
	} {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetBool(flag)
		}
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	var input *parse.Input
	if args[0] == "-" {
		input = parse.NewInput(os.Stdin)
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		input = parse.NewInput(f)
	}
	if input.Err() != nil {
		return input.Err()
	}

	s := js.NewScanner(input, opts)
	tokens := scanAll(s, opts.Raw)

	printDiagnostics(cmd, s)

	switch format {
	case "pretty":
		return printTokensPretty(cmd, os.Stdout, tokens)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// scanAll drives the scanner over the whole input. Whether a / starts a
// regular expression is decided with the usual standalone-tokenizer
// heuristic: a regular expression may follow everything except a token that
// ends a value.
func scanAll(s *js.Scanner, raw bool) []tokenJSON {
	var tokens []tokenJSON
	prev := js.ErrorToken
	allowRegExp := true
	for {
		var ctx js.Flags
		if allowRegExp {
			ctx |= js.RegExpFlag
		}
		tt, text := s.Next(ctx)
		if tt == js.EndOfSourceToken {
			break
		}
		t := tokenJSON{
			Kind:   tt.String(),
			Start:  s.TokenOffset(),
			End:    s.Offset(),
			Line:   s.Line(),
			Column: s.Column(),
		}
		switch tt {
		case js.NumericToken:
			t.Value = fmt.Sprintf("%v", s.Number())
		case js.BigIntToken:
			t.Value = string(s.BigInt())
		case js.RegExpToken:
			t.Regex = &regexJSON{Pattern: string(s.RegExpPattern()), Flags: string(s.RegExpFlags())}
		default:
			t.Value = string(s.Literal())
		}
		if raw {
			t.Raw = string(text)
		}
		tokens = append(tokens, t)

		prev = tt
		allowRegExp = regExpMayFollow(prev)
	}
	return tokens
}

func regExpMayFollow(tt js.TokenType) bool {
	switch tt {
	case js.IdentifierToken, js.NumericToken, js.BigIntToken, js.StringToken,
		js.RegExpToken, js.TemplateToken, js.TemplateTailToken,
		js.CloseParenToken, js.CloseBracketToken, js.CloseBraceToken,
		js.IncrToken, js.DecrToken,
		js.ThisToken, js.SuperToken, js.NullToken, js.TrueToken, js.FalseToken,
		js.PrivateIdentifierToken:
		return false
	}
	if js.IsIdentifierName(tt) {
		// a regular expression may follow keywords like return and typeof
		return js.IsReserved(tt)
	}
	return true
}

func printDiagnostics(cmd *cobra.Command, s *js.Scanner) {
	if len(s.Diagnostics()) == 0 {
		return
	}
	red := color.New(color.FgRed, color.Bold)
	red.DisableColor()
	if useColor(cmd, os.Stderr) {
		red.EnableColor()
	}
	for _, d := range s.Diagnostics() {
		err := d.Position(s.Source())
		red.Fprintf(os.Stderr, "error[%s]: ", d.Kind)
		fmt.Fprintf(os.Stderr, "%s on line %d and column %d\n%s\n", d.Message(), err.Line, err.Column, err.Context)
	}
}

func printTokensPretty(cmd *cobra.Command, w io.Writer, tokens []tokenJSON) error {
	kindColor := color.New(color.FgCyan)
	posColor := color.New(color.FgHiBlack)
	kindColor.DisableColor()
	posColor.DisableColor()
	if f, ok := w.(*os.File); ok && useColor(cmd, f) {
		kindColor.EnableColor()
		posColor.EnableColor()
	}
	for _, t := range tokens {
		posColor.Fprintf(w, "%4d:%-3d %4d..%-4d ", t.Line, t.Column, t.Start, t.End)
		kindColor.Fprintf(w, "%-22s", t.Kind)
		if t.Regex != nil {
			fmt.Fprintf(w, " /%s/%s", t.Regex.Pattern, t.Regex.Flags)
		} else if t.Value != "" && t.Value != t.Kind {
			fmt.Fprintf(w, " %q", t.Value)
		}
		fmt.Fprintln(w)
	}
	return nil
}
