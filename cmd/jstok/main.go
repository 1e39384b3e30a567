package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "jstok",
	Short: "ECMAScript tokenizer",
	Long:  `jstok breaks ECMAScript source files into their constituent tokens.`,
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(tokenizeCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	return flag == "on" || flag == "auto" && term.IsTerminal(int(f.Fd()))
}
