// Package dataset loads the nested customer-orders snapshot. The snapshot is
// JSON on local disk or behind an HTTP endpoint; either way the decoded
// records stay raw and are cleaned downstream.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"commerce-insights-go/internal/logger"
	"commerce-insights-go/internal/types"
)

// LoadOrders reads the snapshot from a file path or an http(s) URL.
// Any failure here is fatal for the run and carries the orders label so the
// caller can tell it apart from a VIP-source failure.
func LoadOrders(pathOrURL string) ([]types.RawCustomer, error) {
	log := logger.New().WithField("component", "dataset").WithField("source", pathOrURL)

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		data, err = fetch(pathOrURL)
	} else {
		data, err = os.ReadFile(pathOrURL)
	}
	if err != nil {
		log.WithError(err).Error("snapshot read failed")
		return nil, fmt.Errorf("failed to load orders file: %w", err)
	}

	customers, err := Decode(data)
	if err != nil {
		log.WithError(err).Error("snapshot decode failed")
		return nil, fmt.Errorf("failed to load orders file: %w", err)
	}

	log.WithField("customers", len(customers)).Info("orders snapshot loaded")
	return customers, nil
}

// Decode parses the snapshot bytes. Numbers are kept as json.Number so that
// large ids survive and the value parsers see what the producer wrote.
func Decode(data []byte) ([]types.RawCustomer, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var customers []types.RawCustomer
	if err := dec.Decode(&customers); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return customers, nil
}
