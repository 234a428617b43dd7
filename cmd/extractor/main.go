package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"commerce-insights-go/internal/dataset"
	"commerce-insights-go/internal/export"
	"commerce-insights-go/internal/flatten"
	"commerce-insights-go/internal/logger"
	"commerce-insights-go/internal/table"
	"commerce-insights-go/internal/vip"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New().WithRun().WithField("service", "order-extractor")
	log.Info("starting extraction")

	ordersPath := envOr("ORDERS_PATH", "customer_orders.json")
	vipPath := envOr("VIP_PATH", "vip_customers.txt")
	outDir := envOr("OUT_DIR", ".")
	format := envOr("EXPORT_FORMAT", "csv")

	start := time.Now()

	vips, err := vip.LoadFile(vipPath)
	if err != nil {
		log.WithError(err).Fatal("VIP source unreadable")
	}

	customers, err := dataset.LoadOrders(ordersPath)
	if err != nil {
		log.WithError(err).Fatal("orders source unreadable")
	}

	rows := flatten.Flatten(customers, vips)

	df, err := table.Enforce(rows)
	if err != nil {
		log.WithError(err).Fatal("schema enforcement failed")
	}

	outPath := filepath.Join(outDir, "flattened_customer_orders."+format)
	switch format {
	case "csv":
		err = export.WriteCSVFile(df, outPath)
	case "xlsx":
		err = export.WriteXLSX(df, outPath)
	case "parquet":
		err = export.WriteParquet(df, outPath)
	default:
		log.WithField("format", format).Fatal("unknown EXPORT_FORMAT, want csv, xlsx or parquet")
	}
	if err != nil {
		log.WithError(err).Fatal("export failed")
	}

	log.WithField("rows", df.Nrow()).
		WithField("out", outPath).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("extraction finished")

	// table preview, same spirit as a head() dump
	fmt.Println(df)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
