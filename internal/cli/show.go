package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cnk-ceneka/cnk/internal/i18n"
	"github.com/cnk-ceneka/cnk/internal/listing"
)

func newShowCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show property details",
		Long:  "Find a property in the catalog and show its full details.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], lang)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", string(i18n.Default), "label language (es|en)")

	return cmd
}

func runShow(cmd *cobra.Command, arg, lang string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid property ID: %s", arg)
	}
	l, ok := i18n.ParseLang(lang)
	if !ok {
		return fmt.Errorf("unsupported language %q", lang)
	}

	client, err := newCatalogClient()
	if err != nil {
		return err
	}

	p, err := listing.NewResolver(client, settings.DetailScanLimit).Resolve(cmd.Context(), id)
	if errors.Is(err, listing.ErrNotFound) {
		return fmt.Errorf("property %d not found", id)
	}
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), p)
	}
	return printPropertyDetail(cmd.OutOrStdout(), p, i18n.New(l))
}
