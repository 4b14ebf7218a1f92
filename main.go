package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pdfpress/internal/application"
	"pdfpress/internal/common"
	"pdfpress/internal/compression"
	"pdfpress/internal/config"
	"pdfpress/internal/profile"
	"pdfpress/internal/transport"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pdfpress",
		Short:         "Compress PDF documents by re-encoding pages as downsampled images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCompressCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newHistoryCmd())

	return root
}

func newCompressCmd() *cobra.Command {
	var (
		profileName string
		outputDir   string
		previewDir  string
	)

	cmd := &cobra.Command{
		Use:   "compress <file.pdf>",
		Short: "Compress a single PDF document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			app := application.NewApp(cfg)
			handler := app.Compression()

			handler.Engine().SetProgressCallback(func(p compression.Progress) {
				fmt.Fprintf(cmd.OutOrStdout(), "  page %d/%d\n", p.PageIndex+1, p.TotalPages)
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			fileResult, result, err := handler.Compress(ctx, application.CompressionRequest{
				Filename: args[0],
				Data:     data,
				Profile:  profileName,
			})
			if err != nil {
				return err
			}

			dir := outputDir
			if dir == "" {
				dir = filepath.Dir(args[0])
			}
			outPath := filepath.Join(dir, fileResult.CompressedFilename)
			if err := application.SaveCompressed(outPath, result.Output); err != nil {
				return err
			}
			if previewDir != "" {
				if err := application.SavePreviews(previewDir, result.Previews); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s -> %s\n", fileResult.OriginalFilename, outPath)
			fmt.Fprintf(out, "  profile:  %s\n", fileResult.Profile)
			fmt.Fprintf(out, "  pages:    %d\n", fileResult.PageCount)
			fmt.Fprintf(out, "  size:     %s -> %s (%.1f%% reduction)\n",
				common.HumanSize(fileResult.OriginalSize),
				common.HumanSize(fileResult.CompressedSize),
				fileResult.ReductionPercent)
			if previewDir != "" {
				fmt.Fprintf(out, "  previews: %d pairs in %s\n", fileResult.PreviewCount, previewDir)
			}
			if fileResult.PreviewWarning != "" {
				fmt.Fprintf(out, "  warning:  %s\n", fileResult.PreviewWarning)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "",
		fmt.Sprintf("compression profile (%s)", strings.Join(levelNames(), ", ")))
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: alongside the input)")
	cmd.Flags().StringVar(&previewDir, "previews", "", "write side-by-side preview images into this directory")

	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compression pipeline over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if addr != "" {
				cfg.ListenAddr = addr
			}
			app := application.NewApp(cfg)
			server := transport.NewServer(app.Compression(), cfg.Logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start(cfg.ListenAddr)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")

	return cmd
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent compression runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			app := application.NewApp(cfg)

			records, err := app.History(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "no compression history")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(out, "%s  %-30s %-12s %8s -> %8s  %5.1f%%  (%d pages)\n",
					r.CreatedAt.Format("2006-01-02 15:04"),
					r.Filename, r.Profile,
					common.HumanSize(r.OriginalSize),
					common.HumanSize(r.CompressedSize),
					r.ReductionPercent, r.PageCount)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show")

	return cmd
}

func levelNames() []string {
	levels := profile.Levels()
	names := make([]string, len(levels))
	for i, level := range levels {
		names[i] = string(level)
	}
	return names
}
