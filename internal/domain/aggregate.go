package domain

import (
	"sort"
	"strings"
	"time"
)

// BelongsToMonth indica se o registro pertence ao período. A regra é de contenção de texto
// sobre a chave da consultoria, não de igualdade: "client42-2024-01" pertence a "2024-01",
// e também a qualquer token que seja substring da chave (ex: "1").
func BelongsToMonth(consultancyID, monthYear string) bool {
	return strings.Contains(consultancyID, monthYear)
}

// FilterByMonth mantém os itens cuja chave de consultoria contém o período
func FilterByMonth[T any](items []T, monthYear string, key func(T) string) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if BelongsToMonth(key(item), monthYear) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// CountBy conta os itens agrupados pela chave
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// SumBy soma um campo numérico dos itens
func SumBy[T any](items []T, value func(T) float64) float64 {
	total := 0.0
	for _, item := range items {
		total += value(item)
	}
	return total
}

// Percentage retorna part/total em porcentagem, 0 quando o total é zero
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// MostRecent retorna os n itens mais recentes, em ordem decrescente de data
func MostRecent[T any](items []T, n int, date func(T) time.Time) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return date(sorted[i]).After(date(sorted[j]))
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
