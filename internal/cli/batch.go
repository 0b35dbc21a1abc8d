package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// customerInput is one customer to register, from flags or a batch file.
type customerInput struct {
	Name      string `yaml:"name"`
	BirthDate string `yaml:"birth_date"`
	Email     string `yaml:"email"`
}

type batchFile struct {
	Customers []customerInput `yaml:"customers"`
}

// loadBatch reads a YAML document of the form
//
//	customers:
//	  - name: John Doe
//	    birth_date: "1980-01-01"
//	    email: john@example.com
func loadBatch(path string) ([]customerInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}
	if len(f.Customers) == 0 {
		return nil, fmt.Errorf("batch file %s lists no customers", path)
	}
	return f.Customers, nil
}
