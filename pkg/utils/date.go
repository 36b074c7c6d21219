package utils

import (
	"fmt"
	"time"
)

const MonthYearLayout = "2006-01"

// ParseMonthYear valida um período no formato yyyy-mm (ex: 2024-01)
func ParseMonthYear(monthYear string) (time.Time, error) {
	date, err := time.Parse(MonthYearLayout, monthYear)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q, use o formato yyyy-mm: %w", monthYear, err)
	}

	return date, nil
}

// FormatMonthYear formata a data no período yyyy-mm
func FormatMonthYear(date time.Time) string {
	return date.Format(MonthYearLayout)
}

// PreviousMonthYear retorna o período imediatamente anterior ao informado
func PreviousMonthYear(monthYear string) (string, error) {
	date, err := ParseMonthYear(monthYear)
	if err != nil {
		return "", err
	}

	return FormatMonthYear(date.AddDate(0, -1, 0)), nil
}
