package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company values the payroll is run for.
const (
	CompanyNetcol     = "NETCOL"
	CompanyTriangulum = "TRIANGULUM"
	CompanyInteegra   = "INTEEGRA"
)

func Companies() []string {
	return []string{CompanyNetcol, CompanyTriangulum, CompanyInteegra}
}

type Employee struct {
	ID                string
	FullName          string
	Email             string
	Documento         *string
	Area              *string
	Company           string
	MonthlyBaseSalary decimal.Decimal
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
