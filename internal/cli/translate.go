package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cnk-ceneka/cnk/internal/i18n"
)

func newTranslateCmd() *cobra.Command {
	var (
		lang string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "translate [key]",
		Short: "Look up interface strings",
		Long:  "Print the translation of a key, or with --all every key of the dictionary.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, ok := i18n.ParseLang(lang)
			if !ok {
				return fmt.Errorf("unsupported language %q", lang)
			}
			out := cmd.OutOrStdout()

			if all {
				if len(args) > 0 {
					return errors.New("--all takes no key")
				}
				dict := i18n.Dictionary(l)
				if isJSON() {
					return printJSON(out, dict)
				}
				return printDictionary(out, dict)
			}

			if len(args) == 0 {
				return errors.New("a key is required unless --all is set")
			}
			t := i18n.New(l)
			if !t.Has(args[0]) {
				return fmt.Errorf("unknown key %q", args[0])
			}
			if isJSON() {
				return printJSON(out, map[string]string{args[0]: t.T(args[0])})
			}
			_, err := fmt.Fprintln(out, t.T(args[0]))
			return err
		},
	}

	cmd.Flags().StringVar(&lang, "lang", string(i18n.Default), "language (es|en)")
	cmd.Flags().BoolVar(&all, "all", false, "print the whole dictionary")

	return cmd
}
