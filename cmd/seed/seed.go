package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS suppliers (
	id             BIGSERIAL PRIMARY KEY,
	name           TEXT NOT NULL UNIQUE,
	contact_email  TEXT NOT NULL DEFAULT '',
	lead_time_days INTEGER NOT NULL DEFAULT 7
);

CREATE TABLE IF NOT EXISTS products (
	id             BIGSERIAL PRIMARY KEY,
	sku            TEXT NOT NULL UNIQUE,
	name           TEXT NOT NULL,
	current_stock  INTEGER NOT NULL DEFAULT 0,
	reorder_point  INTEGER NOT NULL DEFAULT 0,
	unit_cost      NUMERIC(12,2) NOT NULL DEFAULT 0,
	lead_time_days INTEGER NOT NULL DEFAULT 7,
	next_delivery  DATE,
	supplier_id    BIGINT REFERENCES suppliers(id) ON DELETE SET NULL
);
`

func runMigrate(c *cli.Context) error {
	if _, err := dbFrom(c).ExecContext(c.Context, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	log.Println("schema created")
	return nil
}

func runSample(c *cli.Context) error {
	db := dbFrom(c)

	if c.Bool("truncate") {
		if _, err := db.ExecContext(c.Context, `TRUNCATE products, suppliers RESTART IDENTITY CASCADE`); err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}
	}

	var supplierID int64
	err := db.QueryRowContext(c.Context, `
		INSERT INTO suppliers (name, contact_email, lead_time_days)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET lead_time_days = EXCLUDED.lead_time_days
		RETURNING id
	`, "Global Fabrics Inc", "orders@globalfabrics.example", 14).Scan(&supplierID)
	if err != nil {
		return fmt.Errorf("failed to seed supplier: %w", err)
	}

	nextDelivery := time.Now().AddDate(0, 0, 5)
	samples := []struct {
		sku          string
		name         string
		stock        int
		reorderPoint int
		unitCost     string
	}{
		{"COT-BLU-001", "Blue Cotton Roll", 100, 40, "12.50"},
		// Stock below the reorder point so the dashboard has something to flag.
		{"SILK-RED-002", "Red Silk Sheet", 15, 20, "25.00"},
	}

	for _, s := range samples {
		_, err := db.ExecContext(c.Context, `
			INSERT INTO products (sku, name, current_stock, reorder_point, unit_cost,
			                      lead_time_days, next_delivery, supplier_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (sku) DO NOTHING
		`, s.sku, s.name, s.stock, s.reorderPoint, s.unitCost, 5, nextDelivery, supplierID)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", s.sku, err)
		}
	}

	log.Println("sample data seeded")
	return nil
}

func runProductsCSV(c *cli.Context) error {
	f, err := os.Open(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to open products file: %w", err)
	}
	defer f.Close()

	db := dbFrom(c)
	reader := csv.NewReader(f)

	// Skip the header row.
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	inserted := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}
		if len(row) < 6 {
			log.Printf("skipping short row: %v", row)
			continue
		}

		_, err = db.ExecContext(c.Context, `
			INSERT INTO products (sku, name, current_stock, reorder_point, unit_cost, lead_time_days)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (sku) DO UPDATE SET
				current_stock  = EXCLUDED.current_stock,
				reorder_point  = EXCLUDED.reorder_point,
				unit_cost      = EXCLUDED.unit_cost,
				lead_time_days = EXCLUDED.lead_time_days
		`, row[0], row[1], atoiOrZero(row[2]), atoiOrZero(row[3]), row[4], atoiOrZero(row[5]))
		if err != nil {
			return fmt.Errorf("failed to insert product %s: %w", row[0], err)
		}
		inserted++
	}

	log.Printf("loaded %d products", inserted)
	return nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
