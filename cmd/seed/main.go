package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type dbKeyType struct{}

var dbKey dbKeyType

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func initDB(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*sql.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func dbFrom(c *cli.Context) *sql.DB {
	db, _ := c.Context.Value(dbKey).(*sql.DB)
	return db
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Create and populate the supply chain database",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Create the products and suppliers tables",
				Flags:  []cli.Flag{newDBURLFlag()},
				Before: initDB,
				After:  closeDB,
				Action: runMigrate,
			},
			{
				Name:  "sample",
				Usage: "Insert a small demo dataset",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.BoolFlag{
						Name:  "truncate",
						Usage: "Empty both tables before inserting",
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runSample,
			},
			{
				Name:  "products",
				Usage: "Load products from a CSV file",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:     "file",
						Usage:    "CSV file with columns sku,name,current_stock,reorder_point,unit_cost,lead_time_days",
						Required: true,
					},
				},
				Before: initDB,
				After:  closeDB,
				Action: runProductsCSV,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
