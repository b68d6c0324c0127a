package normalizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AliasOverrides holds extra accepted column names per canonical field,
// keyed by record kind. It mirrors the shape of the overrides YAML file:
//
//	receivable:
//	  customerName: ["客戶名稱", "client"]
//	payable:
//	  supplierName: ["vendor"]
type AliasOverrides struct {
	Receivable map[string][]string `yaml:"receivable"`
	Payable    map[string][]string `yaml:"payable"`
}

// LoadAliasOverrides reads an overrides file and appends its aliases to
// the built-in tables. A missing file is not an error; column-name drift
// in customer workbooks is an optional, configured concern.
func LoadAliasOverrides(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading alias overrides: %w", err)
	}

	var overrides AliasOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("error parsing alias overrides: %w", err)
	}

	applyOverrides(receivableFields, overrides.Receivable)
	applyOverrides(payableFields, overrides.Payable)
	return nil
}

func applyOverrides(specs []fieldSpec, extra map[string][]string) {
	for i := range specs {
		for _, alias := range extra[specs[i].canonical] {
			if alias == "" || contains(specs[i].aliases, alias) {
				continue
			}
			specs[i].aliases = append(specs[i].aliases, alias)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
