// Package refdata loads the optional known-acronym and exclusion tables.
// Both loaders degrade to empty data on any failure: a bad reference table
// costs its contents, never the document scan.
package refdata

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// LoadKnownAcronyms reads a CSV with Acronym and Definition columns and
// returns a map from uppercase acronym to definition. An empty path, a
// missing file or a malformed table yields an empty map.
func LoadKnownAcronyms(path string) map[string]string {
	known := make(map[string]string)
	if path == "" {
		return known
	}
	records, header, ok := readTable(path)
	if !ok {
		return known
	}
	acroCol := columnIndex(header, "Acronym")
	defCol := columnIndex(header, "Definition")
	if acroCol < 0 || defCol < 0 {
		log.Error().Str("path", path).Msg("known acronyms CSV must contain Acronym and Definition columns")
		return known
	}
	for _, rec := range records {
		if acroCol >= len(rec) || defCol >= len(rec) {
			continue
		}
		acro := strings.ToUpper(strings.TrimSpace(rec[acroCol]))
		if acro == "" {
			continue
		}
		known[acro] = strings.TrimSpace(rec[defCol])
	}
	log.Info().Int("count", len(known)).Str("path", path).Msg("loaded known acronyms")
	return known
}

// LoadExclusions reads a CSV with an Exclusion column and returns the
// uppercased values as a set. The caller unions the result with the
// classifier's built-in defaults, so degrading to an empty set falls back to
// defaults only.
func LoadExclusions(path string) map[string]struct{} {
	exclusions := make(map[string]struct{})
	if path == "" {
		log.Info().Msg("no exclusion CSV provided; using default exclusions")
		return exclusions
	}
	records, header, ok := readTable(path)
	if !ok {
		return exclusions
	}
	col := columnIndex(header, "Exclusion")
	if col < 0 {
		log.Error().Str("path", path).Msg("exclusion CSV must contain an Exclusion column")
		return exclusions
	}
	for _, rec := range records {
		if col >= len(rec) {
			continue
		}
		if v := strings.ToUpper(strings.TrimSpace(rec[col])); v != "" {
			exclusions[v] = struct{}{}
		}
	}
	log.Info().Int("count", len(exclusions)).Str("path", path).Msg("loaded exclusions")
	return exclusions
}

// readTable returns the data records and header row of a CSV file, or
// ok=false after logging when the file cannot be read.
func readTable(path string) (records [][]string, header []string, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("cannot open reference table")
		return nil, nil, false
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("cannot parse reference table")
		return nil, nil, false
	}
	if len(rows) == 0 {
		return nil, nil, false
	}
	return rows[1:], rows[0], true
}

// columnIndex locates a header column by case-insensitive name.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
