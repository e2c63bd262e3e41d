package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"print-order-server/pkg/client"
	"print-order-server/pkg/pagecount"
)

var serverURL string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "printctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printctl",
		Short: "Print-order storefront admin CLI",
		Long: `printctl drives the print-order server API from a terminal: inspect and
clear orders, upload documents, list stored files, and check the server.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:8080", "Base URL of the print-order server")
	cmd.AddCommand(
		newHealthCmd(),
		newLoginCmd(),
		newOrdersCmd(),
		newFilesCmd(),
	)
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server liveness",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := client.New(serverURL).Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", status.Status, status.Timestamp)
			return nil
		},
	}
}

func newLoginCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify the admin credential pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := client.New(serverURL).Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and manage orders",
	}
	cmd.AddCommand(
		newOrdersListCmd(),
		newOrdersGetCmd(),
		newOrdersCreateCmd(),
		newOrdersSetStatusCmd(),
		newOrdersClearCmd(),
	)
	return cmd
}

func newOrdersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := client.New(serverURL).ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			for _, o := range orders {
				fmt.Printf("%s\t%s\t%s\n", o.ID, o.Status, o.Date)
			}
			return nil
		},
	}
}

func newOrdersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := client.New(serverURL).GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}
}

func newOrdersCreateCmd() *cobra.Command {
	var fields []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order from key=value fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := make(map[string]interface{}, len(fields))
			for _, f := range fields {
				key, value, ok := strings.Cut(f, "=")
				if !ok {
					return fmt.Errorf("invalid field %q, expected key=value", f)
				}
				payload[key] = value
			}
			order, err := client.New(serverURL).CreateOrder(cmd.Context(), payload)
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}
	cmd.Flags().StringArrayVarP(&fields, "field", "F", nil, "Order field as key=value (repeatable)")
	return cmd
}

func newOrdersSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <order-id> <status>",
		Short: "Overwrite an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := client.New(serverURL).UpdateOrderStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s -> %s\n", order.ID, order.Status)
			return nil
		},
	}
}

func newOrdersClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.New(serverURL).ClearOrders(cmd.Context())
		},
	}
}

func newFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Upload and manage stored files",
	}
	cmd.AddCommand(
		newFilesListCmd(),
		newFilesUploadCmd(),
		newFilesClearCmd(),
	)
	return cmd
}

func newFilesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored file metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := client.New(serverURL).ListFiles(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range records {
				fmt.Printf("%s\t%d\t%s\t%s\n", r.Name, r.Size, r.Type, r.Path)
			}
			return nil
		},
	}
}

func newFilesUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload documents and report the estimated page count",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker := pagecount.NewTracker(pagecount.NewEstimator(time.Now().UnixNano()))
			uploads := make([]client.UploadFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				name := filepath.Base(path)
				mimeType := mimeTypeFor(path)
				if _, err := tracker.Add(name, mimeType, int64(len(data)), data); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				uploads = append(uploads, client.UploadFile{
					Name:    name,
					Type:    mimeType,
					Content: bytes.NewReader(data),
				})
			}

			records, err := client.New(serverURL).Upload(cmd.Context(), uploads)
			if err != nil {
				return err
			}
			for _, r := range records {
				fmt.Printf("uploaded %s -> %s\n", r.Name, r.Path)
			}
			fmt.Printf("estimated pages: %d (range %s)\n", tracker.TotalPages(), tracker.DefaultRange())
			return nil
		},
	}
}

func newFilesClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored file and its metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.New(serverURL).ClearFiles(cmd.Context())
		},
	}
}

func mimeTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pagecount.MIMETypePDF
	case ".doc":
		return pagecount.MIMETypeDoc
	case ".docx":
		return pagecount.MIMETypeDocx
	default:
		return "application/octet-stream"
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
