package holdings

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
)

// Holding is an investment position identified by a symbol, with the URL of
// the page its current price is quoted on.
type Holding struct {
	Symbol string
	URL    string
}

// Load reads the holdings file and returns its records in file order.
//
// The file must be a UTF-8 CSV with the exact header "symbol,url". Every row
// needs a non-empty symbol, unique within the file, and a well-formed
// http(s) URL. Violations are reported as a *LoadError so callers can tell a
// missing file apart from a malformed one.
func Load(path string) ([]Holding, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newMissingResource(path, err)
		}
		return nil, fmt.Errorf("open holdings file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2

	header, err := reader.Read()
	if err != nil {
		return nil, newMalformedInput(path, 1, "missing header row", err)
	}
	if len(header) != 2 || header[0] != "symbol" || header[1] != "url" {
		return nil, newMalformedInput(path, 1,
			fmt.Sprintf("header must be symbol,url, got %s", strings.Join(header, ",")), nil)
	}

	var list []Holding
	seen := make(map[string]bool)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newMalformedInput(path, line, "cannot parse row", err)
		}

		symbol := strings.TrimSpace(record[0])
		if symbol == "" {
			return nil, newMalformedInput(path, line, "empty symbol", nil)
		}
		if seen[symbol] {
			return nil, newMalformedInput(path, line,
				fmt.Sprintf("duplicate symbol %q", symbol), nil)
		}
		seen[symbol] = true

		rawURL := strings.TrimSpace(record[1])
		parsed, err := url.Parse(rawURL)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return nil, newMalformedInput(path, line,
				fmt.Sprintf("invalid url %q for symbol %q", rawURL, symbol), err)
		}

		list = append(list, Holding{Symbol: symbol, URL: rawURL})
	}

	return list, nil
}
