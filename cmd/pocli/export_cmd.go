package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jinansh2608/ledger-backend/client"
	"github.com/Jinansh2608/ledger-backend/internal/xlsxexport"
)

// ------------------ Export Commands -------------------

type exportSummary struct {
	File string `json:"file"`
	Rows int    `json:"rows"`
}

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export PO data to .xlsx workbooks",
	}
	cmd.AddCommand(exportCmd(a, "line-items", "client PO id", "Export the line items of a client PO",
		func(ctx context.Context, c *client.Client, id int64, w io.Writer) (int, error) {
			resp, err := c.GetLineItems(ctx, id)
			if err != nil {
				return 0, err
			}
			return len(resp.LineItems), xlsxexport.WriteLineItems(w, resp.LineItems)
		}))
	cmd.AddCommand(exportCmd(a, "vendor-orders", "project id", "Export the vendor orders of a project",
		func(ctx context.Context, c *client.Client, id int64, w io.Writer) (int, error) {
			resp, err := c.GetProjectVendorOrders(ctx, id)
			if err != nil {
				return 0, err
			}
			return len(resp.VendorOrders), xlsxexport.WriteVendorOrders(w, resp.VendorOrders)
		}))
	cmd.AddCommand(exportCmd(a, "pos", "project id", "Export a project's POs with their payments",
		func(ctx context.Context, c *client.Client, id int64, w io.Writer) (int, error) {
			resp, err := c.GetEnrichedPOs(ctx, id)
			if err != nil {
				return 0, err
			}
			return len(resp.POs), xlsxexport.WriteEnrichedPOs(w, resp.POs)
		}))
	return cmd
}

func exportCmd(a *app, use, idName, short string, fn func(context.Context, *client.Client, int64, io.Writer) (int, error)) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(idName, args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("%s_%d.xlsx", use, id)
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				// Build in memory so a failed fetch leaves no partial file behind.
				var buf bytes.Buffer
				n, err := fn(ctx, c, id, &buf)
				if err != nil {
					return nil, err
				}
				if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
					return nil, err
				}
				return exportSummary{File: out, Rows: n}, nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default <command>_<id>.xlsx)")
	return cmd
}
