package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Jinansh2608/ledger-backend/client"
	"github.com/Jinansh2608/ledger-backend/internal/xlsxexport"
)

// ------------------ Upload Command -------------------

type spreadsheet struct {
	name string
	data []byte
}

func newUploadCmd(a *app) *cobra.Command {
	var (
		vendorName          string
		clientID, projectID int64
		check, queued       bool
	)

	cmd := &cobra.Command{
		Use:   "upload <file.xlsx> [file.xlsx...]",
		Short: "Upload vendor PO spreadsheets; several files go in one bulk request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vendor, err := client.ParseVendor(vendorName)
			if err != nil {
				return err
			}
			sheets, err := readSpreadsheets(args)
			if err != nil {
				return err
			}
			if check {
				if err := checkSpreadsheets(sheets); err != nil {
					return err
				}
			}

			if queued {
				return a.uploadQueued(cmd, vendor, sheets, clientID, projectID)
			}
			return a.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				if len(sheets) == 1 {
					return c.UploadPO(ctx, vendor, sheets[0].file(), clientID, projectID)
				}
				files := make([]client.UploadFile, len(sheets))
				for i, s := range sheets {
					files[i] = s.file()
				}
				return c.BulkUploadPO(ctx, vendor, files, clientID, projectID)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&vendorName, "vendor", "", "Spreadsheet format: bajaj or dava-india (required)")
	f.Int64Var(&clientID, "client-id", 0, "Client ID (required)")
	f.Int64Var(&projectID, "project-id", 0, "Project to attach the POs to")
	f.BoolVar(&check, "check", false, "Open each workbook locally and fail fast on unreadable or empty files")
	f.BoolVar(&queued, "queue", false, "Upload files one request each through the background queue")
	_ = cmd.MarkFlagRequired("vendor")
	_ = cmd.MarkFlagRequired("client-id")
	return cmd
}

func (s spreadsheet) file() client.UploadFile {
	return client.UploadFile{Name: s.name, Content: bytes.NewReader(s.data)}
}

func readSpreadsheets(paths []string) ([]spreadsheet, error) {
	out := make([]spreadsheet, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, spreadsheet{name: filepath.Base(p), data: data})
	}
	return out, nil
}

func checkSpreadsheets(sheets []spreadsheet) error {
	for _, s := range sheets {
		info, err := xlsxexport.CheckWorkbook(bytes.NewReader(s.data))
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		log.Info().Str("file", s.name).Str("sheet", info.Sheet).Int("rows", info.DataRows).Msg("workbook ok")
	}
	return nil
}

// uploadQueued submits every file through the client's upload queue, waits
// for the project's queue to drain and prints one result per file.
func (a *app) uploadQueued(cmd *cobra.Command, vendor client.Vendor, sheets []spreadsheet, clientID, projectID int64) error {
	qcfg, err := client.LoadUploadQueueConfig()
	if err != nil {
		return err
	}

	type result struct {
		File     string                  `json:"file"`
		Response *client.POParseResponse `json:"response,omitempty"`
		Error    string                  `json:"error,omitempty"`
	}
	var (
		mu      sync.Mutex
		results []result
		failed  int
	)
	done := func(r client.UploadResult) {
		mu.Lock()
		defer mu.Unlock()
		res := result{File: r.Filename, Response: r.Response}
		if r.Err != nil {
			res.Error = r.Err.Error()
			failed++
		}
		results = append(results, res)
	}

	err = a.runWith(cmd, []client.Option{client.WithUploadQueue(qcfg)}, func(ctx context.Context, c *client.Client) (any, error) {
		for _, s := range sheets {
			if err := c.SubmitUpload(ctx, vendor, s.file(), clientID, projectID, done); err != nil {
				return nil, fmt.Errorf("submit %s: %w", s.name, err)
			}
		}
		if err := c.AwaitUploads(ctx, projectID); err != nil {
			return nil, err
		}
		mu.Lock()
		defer mu.Unlock()
		return results, nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", failed, len(sheets))
	}
	return nil
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func readLineItems(cmd *cobra.Command, path string) ([]client.LineItemRequest, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	var items []client.LineItemRequest
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, errors.New("no line items to add")
	}
	return items, nil
}
