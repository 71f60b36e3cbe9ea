package companycsv

import (
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/trackmap/trackmap/pkg/tdf"
)

// Record is one row of an admin maintained company bindings CSV export.
type Record struct {
	Identifier string `csv:"identifier"`
	Name       string `csv:"name"`
	Role       string `csv:"role"`

	// Systems is a semicolon separated list of railway system identifiers.
	Systems string `csv:"systems"`
}

func Parse(reader io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(reader, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r Record) ToCompany() *tdf.Company {
	now := time.Now().Format(time.RFC3339)

	company := &tdf.Company{
		Identifier: r.Identifier,

		CreationDateTime:     now,
		ModificationDateTime: now,

		Name: r.Name,
		Role: parseRole(r.Role),
	}

	for _, systemRef := range strings.Split(r.Systems, ";") {
		systemRef = strings.TrimSpace(systemRef)
		if systemRef != "" {
			company.SystemRefs = append(company.SystemRefs, systemRef)
		}
	}

	return company
}

func parseRole(value string) tdf.CompanyRole {
	if strings.EqualFold(value, string(tdf.CompanyRoleBuilder)) {
		return tdf.CompanyRoleBuilder
	}

	return tdf.CompanyRoleOperator
}
