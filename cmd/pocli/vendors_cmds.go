package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jinansh2608/ledger-backend/client"
)

// ------------------ Vendor Commands -------------------

func newVendorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Vendor master data and payables",
	}
	cmd.AddCommand(newVendorListCmd(a))
	cmd.AddCommand(idCmd(a, "get", "vendor-id", "Show a vendor with order totals",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetVendor(ctx, id) }))
	cmd.AddCommand(idCmd(a, "delete", "vendor-id", "Delete a vendor",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.DeleteVendor(ctx, id) }))
	cmd.AddCommand(idCmd(a, "payments", "vendor-id", "Payments made to a vendor",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetVendorPayments(ctx, id) }))
	cmd.AddCommand(idCmd(a, "payables", "vendor-id", "Order value, paid and payable totals of a vendor",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetVendorPaymentSummary(ctx, id) }))
	cmd.AddCommand(newVendorCreateCmd(a))
	cmd.AddCommand(newVendorUpdateCmd(a))
	return cmd
}

func newVendorListCmd(a *app) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetVendors(ctx, status)
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Only vendors with this status")
	return cmd
}

func vendorFlags(cmd *cobra.Command, name, contact, email, phone, address, terms *string) {
	f := cmd.Flags()
	f.StringVar(name, "name", "", "Vendor name")
	f.StringVar(contact, "contact", "", "Contact person")
	f.StringVar(email, "email", "", "Email")
	f.StringVar(phone, "phone", "", "Phone")
	f.StringVar(address, "address", "", "Address")
	f.StringVar(terms, "payment-terms", "", "Payment terms")
}

func newVendorCreateCmd(a *app) *cobra.Command {
	var req client.VendorRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a vendor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreateVendor(ctx, req)
			})
		},
	}
	vendorFlags(cmd, &req.Name, &req.ContactPerson, &req.Email, &req.Phone, &req.Address, &req.PaymentTerms)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newVendorUpdateCmd(a *app) *cobra.Command {
	var req client.VendorUpdateRequest
	cmd := &cobra.Command{
		Use:   "update <vendor-id>",
		Short: "Update a vendor; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("vendor id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UpdateVendor(ctx, id, req)
			})
		},
	}
	vendorFlags(cmd, &req.Name, &req.ContactPerson, &req.Email, &req.Phone, &req.Address, &req.PaymentTerms)
	cmd.Flags().StringVar(&req.Status, "status", "", "Vendor status")
	return cmd
}
