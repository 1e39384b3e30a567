package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jslex/parse"
	"github.com/jslex/parse/js"
)

func kinds(tokens []tokenJSON) []string {
	var out []string
	for _, t := range tokens {
		out = append(out, t.Kind)
	}
	return out
}

func TestScanAll(t *testing.T) {
	s := js.NewScanner(parse.NewInputString("let x = /a\\/b/gi;"), js.DefaultOptions())
	tokens := scanAll(s, false)
	expected := []string{"let", "Identifier", "=", "RegExp", ";"}
	if diff := cmp.Diff(expected, kinds(tokens)); diff != "" {
		t.Errorf("kind mismatch (-want +got):\n%s", diff)
	}
	if tokens[3].Regex == nil || tokens[3].Regex.Pattern != "a\\/b" || tokens[3].Regex.Flags != "gi" {
		t.Errorf("unexpected regex descriptor: %+v", tokens[3].Regex)
	}
}

func TestScanAllDivision(t *testing.T) {
	s := js.NewScanner(parse.NewInputString("a / b / c"), js.DefaultOptions())
	tokens := scanAll(s, false)
	expected := []string{"Identifier", "/", "Identifier", "/", "Identifier"}
	if diff := cmp.Diff(expected, kinds(tokens)); diff != "" {
		t.Errorf("kind mismatch (-want +got):\n%s", diff)
	}
}

func TestRegExpMayFollow(t *testing.T) {
	allow := []js.TokenType{js.EqToken, js.OpenParenToken, js.CommaToken, js.ReturnToken, js.TypeofToken, js.ColonToken, js.SemicolonToken}
	for _, tt := range allow {
		if !regExpMayFollow(tt) {
			t.Errorf("regexp must be allowed after %v", tt)
		}
	}
	deny := []js.TokenType{js.IdentifierToken, js.NumericToken, js.CloseParenToken, js.ThisToken, js.TemplateTailToken}
	for _, tt := range deny {
		if regExpMayFollow(tt) {
			t.Errorf("regexp must not be allowed after %v", tt)
		}
	}
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(dir)

	opts, err := loadOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Module || !opts.WebCompat {
		t.Errorf("defaults must be script mode with web compatibility: %+v", opts)
	}

	config := "module = true\nstrict = true\nwebcompat = false\n"
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err = loadOptions()
	if err != nil {
		t.Fatal(err)
	}
	if !opts.Module || !opts.Strict || opts.WebCompat {
		t.Errorf("config must override defaults: %+v", opts)
	}
}
