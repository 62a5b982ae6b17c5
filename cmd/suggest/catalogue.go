package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/otterbloom/suggestengine/internal/abi"
	"github.com/otterbloom/suggestengine/internal/config"
)

type catalogueRow struct {
	id     string
	rating int
	title  string
}

// loadRows reads path's "id<TAB>rating<TAB>title" lines. A missing
// file is treated as an empty catalogue, not an error, so `suggest
// search` works before the first `suggest add`.
func loadRows(path string) ([]catalogueRow, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []catalogueRow
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed catalogue line: %q", line)
		}
		rating, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("malformed rating in line: %q", line)
		}
		rows = append(rows, catalogueRow{id: parts[0], rating: rating, title: parts[2]})
	}
	return rows, sc.Err()
}

// appendRow appends a single record line to path.
func appendRow(path string, row catalogueRow) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s\t%d\t%s\n", row.id, row.rating, row.title)
	return err
}

// buildStore loads path's rows and the sidecar settings (limit,
// highlight delimiters) into a freshly created host-ABI store,
// driving the abi package exactly the way a real foreign-function
// bridge would. Callers must abi.DestroyStore(id) when done.
func buildStore(path string) (uint64, error) {
	rows, err := loadRows(path)
	if err != nil {
		return 0, err
	}
	settings := loadSettings(path)

	id := abi.CreateStore()
	abi.SetLimit(id, config.Limit(settings.limit))
	left, right := config.HighlightDelimiters(settings.left, settings.right)
	abi.HighlightWith(id, left, right)

	for _, row := range rows {
		abi.AddRecord(id, row.id, row.rating, row.title, nil, nil)
	}
	return id, nil
}
