package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ternarybob/finsight/internal/models"
)

// Bundle formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatFromPath picks the bundle format from a file extension
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported bundle extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// ParseBundle decodes a JSON or YAML statement bundle
func ParseBundle(data []byte, format string) (*models.ImportBundle, error) {
	var bundle models.ImportBundle
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&bundle); err != nil {
			return nil, fmt.Errorf("failed to decode JSON bundle: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("failed to decode YAML bundle: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported bundle format %q", format)
	}
	return &bundle, nil
}

// ParseNumber converts a loosely typed item value to a float.
// Numeric strings may carry thousand separators, a currency-free sign or
// accounting parentheses for negatives. Anything else is not a number.
func ParseNumber(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		return parseNumericString(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseNumericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if negative {
		f = -f
	}
	return f, true
}

// toRecord converts a bundle statement into a storage row.
// Keys are lower-cased; non-numeric values are dropped and returned as skipped.
func toRecord(companyCode string, st models.ImportStatement) (*models.StatementRecord, []string) {
	record := &models.StatementRecord{
		CompanyCode: companyCode,
		Statement:   st.Statement,
		Year:        st.Year,
		Quarter:     st.Quarter,
		Revision:    st.Revision,
		Items:       make(map[string]float64, len(st.Items)),
	}

	var skipped []string
	for key, raw := range st.Items {
		name := strings.ToLower(strings.TrimSpace(key))
		if name == "" {
			continue
		}
		v, ok := ParseNumber(raw)
		if !ok {
			skipped = append(skipped, fmt.Sprintf("%s/%d/%s", st.Statement, st.Year, name))
			continue
		}
		record.Items[name] = v
	}
	sort.Strings(skipped)
	return record, skipped
}
