// Command report pulls an inventory snapshot from the backing store and
// turns it into operator-facing output: a terminal summary of the derived
// analytics, or a CSV report, optionally archived to object storage.
package main

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ChromaDiv/supply-chain-app/internal/analytics"
	"github.com/ChromaDiv/supply-chain-app/internal/config"
	"github.com/ChromaDiv/supply-chain-app/internal/coordinator"
	"github.com/ChromaDiv/supply-chain-app/internal/export"
	"github.com/ChromaDiv/supply-chain-app/internal/storage"
	"github.com/ChromaDiv/supply-chain-app/internal/store"
	"github.com/ChromaDiv/supply-chain-app/internal/view"
)

func newStoreURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "store-url",
		Usage:   "Base URL of the backing inventory service",
		EnvVars: []string{"STORE_BASE_URL"},
	}
}

func newCoordinator(c *cli.Context) *coordinator.Coordinator {
	cfg := config.Load()

	baseURL := c.String("store-url")
	if baseURL == "" {
		baseURL = cfg.Store.BaseURL
	}

	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Store.TimeoutSeconds) * time.Second,
	}
	return coordinator.New(store.NewClient(baseURL, httpClient))
}

func main() {
	app := &cli.App{
		Name:  "report",
		Usage: "Inventory analytics and report export",
		Commands: []*cli.Command{
			{
				Name:  "summary",
				Usage: "Print the analytics summary for the current snapshot",
				Flags: []cli.Flag{
					newStoreURLFlag(),
					&cli.StringFlag{
						Name:  "search",
						Usage: "Only count items matching this name/SKU term",
					},
					&cli.BoolFlag{
						Name:  "low-only",
						Usage: "Restrict the listing to low-stock items",
					},
				},
				Action: runSummary,
			},
			{
				Name:  "export",
				Usage: "Write the CSV inventory report",
				Flags: []cli.Flag{
					newStoreURLFlag(),
					&cli.StringFlag{
						Name:  "out",
						Usage: "Output directory",
						Value: ".",
					},
					&cli.BoolFlag{
						Name:  "upload",
						Usage: "Also copy the report to the archive bucket",
					},
				},
				Action: runExport,
			},
			{
				Name:  "list",
				Usage: "List the reports in the archive bucket",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "prefix",
						Usage: "Only list objects under this key prefix",
						Value: "reports/",
					},
				},
				Action: runList,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runSummary(c *cli.Context) error {
	coord := newCoordinator(c)
	snap, err := coord.Load(c.Context)
	if err != nil {
		return err
	}

	items := view.Filter(snap.Items, c.String("search"), c.Bool("low-only"))
	dash := analytics.BuildDashboard(snap)

	fmt.Printf("SKUs: %d (showing %d)\n", dash.SKUCount, len(items))
	fmt.Printf("Total inventory value: $%s\n", dash.TotalValue.StringFixed(2))
	fmt.Printf("Low stock alerts: %d\n", dash.LowStockCount)
	if dash.MostCritical != nil {
		fmt.Printf("Most critical: %s (%s), needs %d units\n",
			dash.MostCritical.Name, dash.MostCritical.SKU, dash.MostCritical.Shortfall())
	} else {
		fmt.Println("Most critical: none, all stock healthy")
	}

	fmt.Println("\nRisk ranking (most urgent first):")
	for _, item := range dash.RiskRanking {
		marker := " "
		if item.IsLow() {
			marker = "!"
		}
		fmt.Printf("  %s %-14s %-24s stock=%-5d threshold=%-5d ratio=%.2f\n",
			marker, item.SKU, item.Name, item.CurrentStock, item.ReorderPoint, item.RiskRatio())
	}

	fmt.Println("\nTop value items:")
	for i, item := range dash.TopValueItems {
		fmt.Printf("  %d. %-24s $%s\n", i+1, item.Name, item.TotalValue().StringFixed(2))
	}

	return nil
}

func runExport(c *cli.Context) error {
	coord := newCoordinator(c)
	snap, err := coord.Load(c.Context)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteReport(&buf, snap.Items); err != nil {
		return err
	}

	filename := export.ReportFilename(time.Now())
	outPath := filepath.Join(c.String("out"), filename)
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	log.Printf("report written to %s", outPath)

	if !c.Bool("upload") {
		return nil
	}

	archive, err := newArchive()
	if err != nil {
		return fmt.Errorf("archive upload requested: %w", err)
	}

	key := "reports/" + filename
	if err := archive.Upload(c.Context, key, "text/csv", bytes.NewReader(buf.Bytes()), int64(buf.Len())); err != nil {
		return err
	}
	log.Printf("report archived as %s", key)
	return nil
}

func runList(c *cli.Context) error {
	archive, err := newArchive()
	if err != nil {
		return err
	}

	objects, err := archive.List(c.Context, c.String("prefix"))
	if err != nil {
		return err
	}
	if len(objects) == 0 {
		fmt.Println("no archived reports")
		return nil
	}
	for _, obj := range objects {
		fmt.Printf("%-50s %d bytes\n", obj.Key, obj.Size)
	}
	return nil
}

func newArchive() (storage.ObjectStorage, error) {
	cfg := config.Load()
	if !cfg.Archive.Enabled {
		return nil, fmt.Errorf("ARCHIVE_ENABLED is false")
	}

	return storage.NewMinioClient(storage.MinioConfig{
		Endpoint:  cfg.Archive.Endpoint,
		AccessKey: cfg.Archive.AccessKey,
		SecretKey: cfg.Archive.SecretKey,
		Bucket:    cfg.Archive.Bucket,
		UseSSL:    cfg.Archive.UseSSL,
	})
}
