package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cnk-ceneka/cnk/internal/inquiry"
)

func newInquiriesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "inquiries",
		Short: "List contact inquiries",
		Long:  "List contact form submissions stored by the website, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInquiries(func(svc *inquiry.Service) error {
				list, err := svc.List(limit)
				if err != nil {
					return err
				}

				if isJSON() {
					return printJSON(cmd.OutOrStdout(), list)
				}
				return printInquiryTable(cmd.OutOrStdout(), list)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum inquiries to show (0 for all)")

	cmd.AddCommand(newInquiryShowCmd(), newInquiryDeleteCmd())

	return cmd
}

func newInquiryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <reference>",
		Short: "Show one inquiry and its notification log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInquiries(func(svc *inquiry.Service) error {
				inq, err := svc.Get(args[0])
				if err != nil {
					return inquiryErr(args[0], err)
				}
				notes, err := svc.Notifications(inq)
				if err != nil {
					return err
				}

				if isJSON() {
					return printJSON(cmd.OutOrStdout(), struct {
						*inquiry.Inquiry
						Notifications []*inquiry.Notification `json:"notifications"`
					}{inq, notes})
				}
				return printInquiryDetail(cmd.OutOrStdout(), inq, notes)
			})
		},
	}
}

func newInquiryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <reference>",
		Short: "Delete an inquiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInquiries(func(svc *inquiry.Service) error {
				if err := svc.Delete(args[0]); err != nil {
					return inquiryErr(args[0], err)
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted inquiry %s\n", args[0])
				return err
			})
		},
	}
}

// withInquiries opens the database for the length of fn.
func withInquiries(fn func(svc *inquiry.Service) error) error {
	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	return fn(inquiry.NewService(inquiry.NewRepository(database), nil))
}

func inquiryErr(ref string, err error) error {
	if errors.Is(err, inquiry.ErrNotFound) {
		return fmt.Errorf("inquiry %s not found", ref)
	}
	return err
}
