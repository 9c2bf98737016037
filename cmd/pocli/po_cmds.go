package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Jinansh2608/ledger-backend/client"
)

// ------------------ PO Commands -------------------

func newPOCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "po",
		Short: "Client PO operations",
	}
	cmd.AddCommand(newPOGetCmd(a))
	cmd.AddCommand(newPOListCmd(a))
	cmd.AddCommand(newPOProjectCmd(a))
	cmd.AddCommand(newPOCreateCmd(a))
	cmd.AddCommand(newPOUpdateCmd(a))
	cmd.AddCommand(newPODeleteCmd(a))
	cmd.AddCommand(newPOAttachCmd(a))
	cmd.AddCommand(newPOSetPrimaryCmd(a))
	cmd.AddCommand(idCmd(a, "details", "client-po-id", "Show a PO with payment totals and outstanding amount",
		func(ctx context.Context, c *client.Client, id int64) (any, error) { return c.GetPODetails(ctx, id) }))
	return cmd
}

func newPOGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <client-po-id>",
		Short: "Show a client PO with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("client PO id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetClientPO(ctx, id)
			})
		},
	}
}

func newPOListCmd(a *app) *cobra.Command {
	var clientID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List POs, optionally for one client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetAllPOs(ctx, clientID)
			})
		},
	}
	cmd.Flags().Int64Var(&clientID, "client-id", 0, "Only POs of this client")
	return cmd
}

func newPOProjectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "project <project-id>",
		Short: "List the POs of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("project id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetProjectPOs(ctx, id)
			})
		},
	}
}

func newPOCreateCmd(a *app) *cobra.Command {
	var (
		projectID, clientID int64
		req                 client.CreatePORequest
		poDate              string
		poValue             float64
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a client PO under a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.PODate = client.Date(poDate)
			req.POValue = optFloat(cmd, "po-value", poValue)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.CreatePOForProject(ctx, projectID, clientID, req)
			})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&projectID, "project-id", 0, "Project ID (required)")
	f.Int64Var(&clientID, "client-id", 0, "Client ID (required)")
	f.StringVar(&req.PONumber, "po-number", "", "PO number (required)")
	f.StringVar(&poDate, "po-date", "", "PO date YYYY-MM-DD (required)")
	f.Float64Var(&poValue, "po-value", 0, "PO value")
	f.StringVar(&req.POType, "po-type", "", "PO type")
	f.StringVar(&req.Notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("project-id")
	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("po-number")
	_ = cmd.MarkFlagRequired("po-date")
	return cmd
}

func newPOUpdateCmd(a *app) *cobra.Command {
	var (
		req            client.UpdatePORequest
		poDate, piDate string
		poValue        float64
	)
	cmd := &cobra.Command{
		Use:   "update <client-po-id>",
		Short: "Update fields of a PO; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("client PO id", args[0])
			if err != nil {
				return err
			}
			req.PODate = client.Date(poDate)
			req.PIDate = client.Date(piDate)
			req.POValue = optFloat(cmd, "po-value", poValue)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UpdatePO(ctx, id, req)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.PONumber, "po-number", "", "PO number")
	f.StringVar(&poDate, "po-date", "", "PO date YYYY-MM-DD")
	f.Float64Var(&poValue, "po-value", 0, "PO value")
	f.StringVar(&req.PINumber, "pi-number", "", "Proforma invoice number")
	f.StringVar(&piDate, "pi-date", "", "Proforma invoice date YYYY-MM-DD")
	f.StringVar(&req.Notes, "notes", "", "Notes")
	f.StringVar(&req.Status, "status", "", "Status")
	return cmd
}

func newPODeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <client-po-id>",
		Short: "Delete a PO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("client PO id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.DeletePO(ctx, id)
			})
		},
	}
}

func newPOAttachCmd(a *app) *cobra.Command {
	var projectID, clientPOID, sequence int64
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Attach a PO to a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.AttachPOToProject(ctx, projectID, clientPOID, sequence)
			})
		},
	}
	cmd.Flags().Int64Var(&projectID, "project-id", 0, "Project ID (required)")
	cmd.Flags().Int64Var(&clientPOID, "client-po-id", 0, "Client PO ID (required)")
	cmd.Flags().Int64Var(&sequence, "sequence", 0, "Position within the project (0 appends)")
	_ = cmd.MarkFlagRequired("project-id")
	_ = cmd.MarkFlagRequired("client-po-id")
	return cmd
}

func newPOSetPrimaryCmd(a *app) *cobra.Command {
	var projectID, clientPOID int64
	cmd := &cobra.Command{
		Use:   "set-primary",
		Short: "Mark a PO as the project's primary PO",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.SetPrimaryPO(ctx, projectID, clientPOID)
			})
		},
	}
	cmd.Flags().Int64Var(&projectID, "project-id", 0, "Project ID (required)")
	cmd.Flags().Int64Var(&clientPOID, "client-po-id", 0, "Client PO ID (required)")
	_ = cmd.MarkFlagRequired("project-id")
	_ = cmd.MarkFlagRequired("client-po-id")
	return cmd
}

// ------------------ Line Item Commands -------------------

func newLineItemsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "line-items",
		Short: "Client PO line item operations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <client-po-id>",
		Short: "List the line items of a PO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("client PO id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetLineItems(ctx, id)
			})
		},
	})
	cmd.AddCommand(newLineItemAddCmd(a))
	cmd.AddCommand(newLineItemBulkAddCmd(a))
	cmd.AddCommand(newLineItemUpdateCmd(a))
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <line-item-id>",
		Short: "Delete a line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("line item id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.DeleteLineItem(ctx, id)
			})
		},
	})
	return cmd
}

func newLineItemAddCmd(a *app) *cobra.Command {
	var req client.LineItemRequest
	cmd := &cobra.Command{
		Use:   "add <client-po-id>",
		Short: "Add a line item to a PO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("client PO id", args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.AddLineItem(ctx, id, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.ItemName, "item", "", "Item name (required)")
	cmd.Flags().Float64Var(&req.Quantity, "qty", 0, "Quantity (required)")
	cmd.Flags().Float64Var(&req.UnitPrice, "price", 0, "Unit price (required)")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("qty")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func newLineItemBulkAddCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "bulk-add <client-po-id>",
		Short: "Add line items from a JSON array file ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("client PO id", args[0])
			if err != nil {
				return err
			}
			items, err := readLineItems(cmd, file)
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.BulkAddLineItems(ctx, id, items)
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file with [{item_name, quantity, unit_price}, ...] (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newLineItemUpdateCmd(a *app) *cobra.Command {
	var (
		req        client.LineItemUpdateRequest
		qty, price float64
	)
	cmd := &cobra.Command{
		Use:   "update <line-item-id>",
		Short: "Update a line item; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("line item id", args[0])
			if err != nil {
				return err
			}
			req.Quantity = optFloat(cmd, "qty", qty)
			req.UnitPrice = optFloat(cmd, "price", price)
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.UpdateLineItem(ctx, id, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.ItemName, "item", "", "Item name")
	cmd.Flags().Float64Var(&qty, "qty", 0, "Quantity")
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price")
	return cmd
}
