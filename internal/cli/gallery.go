package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cnk-ceneka/cnk/internal/gallery"
	"github.com/cnk-ceneka/cnk/internal/i18n"
)

func newGalleryCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "List the gallery images",
		Long:  "Fetch the gallery image list, falling back to the built-in images when the service is unavailable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, ok := i18n.ParseLang(lang)
			if !ok {
				return fmt.Errorf("unsupported language %q", lang)
			}
			client, err := newCatalogClient()
			if err != nil {
				return err
			}

			res := gallery.NewFetcher(client, 0).Fetch(cmd.Context())
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), res)
			}
			return printGallery(cmd.OutOrStdout(), res, i18n.New(l))
		},
	}

	cmd.Flags().StringVar(&lang, "lang", string(i18n.Default), "notice language (es|en)")

	return cmd
}
