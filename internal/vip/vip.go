// Package vip loads the out-of-band list of VIP customer ids.
package vip

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"commerce-insights-go/internal/logger"
)

// Set holds VIP customer ids for membership tests.
type Set map[int64]struct{}

// Contains reports whether id is a VIP customer.
func (s Set) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

// Load reads one id per line. Lines are trimmed; a line counts only when the
// remainder is all decimal digits, everything else is skipped quietly.
// Only a read failure on the source itself is an error.
func Load(r io.Reader) (Set, error) {
	set := Set{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !allDigits(line) {
			continue
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			// digits-only but out of int64 range
			continue
		}
		set[id] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read VIP customer IDs: %w", err)
	}
	return set, nil
}

// LoadFile opens path and delegates to Load. Open failures are fatal for the
// whole run and carry the VIP label so they cannot be confused with an
// unreadable orders snapshot.
func LoadFile(path string) (Set, error) {
	log := logger.New().WithField("component", "vip").WithField("path", path)
	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Error("open failed")
		return nil, fmt.Errorf("failed to load VIP customer IDs: %w", err)
	}
	defer f.Close()

	set, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load VIP customer IDs: %w", err)
	}
	log.WithField("vip_count", len(set)).Info("VIP ids loaded")
	return set, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
