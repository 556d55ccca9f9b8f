// Package file implements bulk genome persistence: flat text files with one
// encoded genome per line, used for population corpora.
package file

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/evofsm/evofsm/pkg/codec"
	"github.com/evofsm/evofsm/pkg/domain"
	"github.com/evofsm/evofsm/pkg/ports"
)

// WriteGenomes writes a population to a file, one encoded genome per line.
func WriteGenomes(path string, genomes []domain.Genome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %q for writing: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, g := range genomes {
		if _, err := w.WriteString(codec.Encode(g) + "\n"); err != nil {
			return fmt.Errorf("failed to write genome: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %q: %w", path, err)
	}
	return nil
}

// WriteKeys writes pre-encoded population keys directly, one per line. Used
// when the population is already keyed by canonical encodings.
func WriteKeys(path string, keys []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %q for writing: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, k := range keys {
		if _, err := w.WriteString(k + "\n"); err != nil {
			return fmt.Errorf("failed to write key: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %q: %w", path, err)
	}
	return nil
}

// LoadGenomes reads a population file line by line. Each non-empty line is
// trimmed, decoded, re-sorted, and handed to the visitor along with the raw
// line (the population key) and the sequential line id.
func LoadGenomes(path string, visit ports.BulkVisitor) error {
	if visit == nil {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	id := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		genome, err := codec.Decode(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", id, err)
		}
		genome.SortTransitions()

		visit(line, genome, id)
		id++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}
	return nil
}
