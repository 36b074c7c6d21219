package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidFindingKind = errors.New("tipo de achado inválido, use weakness, threat ou problem")
	ErrFindingNotFound    = errors.New("achado não encontrado no diagnóstico")
)

// Diagnostic é o diagnóstico mensal (SWOT, problemas e insights). Conteúdo livre, sem derivação.
type Diagnostic struct {
	ID            string    `json:"id"`
	ConsultancyID string    `json:"consultancy_id"`
	Strengths     []string  `json:"strengths"`
	Weaknesses    []string  `json:"weaknesses"`
	Opportunities []string  `json:"opportunities"`
	Threats       []string  `json:"threats"`
	Problems      []string  `json:"problems"`
	Insights      []string  `json:"insights"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FindingKind identifica a lista do diagnóstico que originou uma ação
type FindingKind string

const (
	FindingWeakness FindingKind = "weakness"
	FindingThreat   FindingKind = "threat"
	FindingProblem  FindingKind = "problem"
)

// Finding retorna o texto do item da lista indicada
func (d Diagnostic) Finding(kind FindingKind, index int) (string, error) {
	var list []string
	switch kind {
	case FindingWeakness:
		list = d.Weaknesses
	case FindingThreat:
		list = d.Threats
	case FindingProblem:
		list = d.Problems
	default:
		return "", ErrInvalidFindingKind
	}

	if index < 0 || index >= len(list) {
		return "", ErrFindingNotFound
	}
	return list[index], nil
}

type DiagnosticSummary struct {
	ConsultancyID string `json:"consultancy_id"`
	Strengths     int    `json:"strengths"`
	Weaknesses    int    `json:"weaknesses"`
	Opportunities int    `json:"opportunities"`
	Threats       int    `json:"threats"`
	Problems      int    `json:"problems"`
	Insights      int    `json:"insights"`
	LinkedActions int    `json:"linked_actions"`
}

// Summarize conta os itens de cada lista
func (d Diagnostic) Summarize(linkedActions int) DiagnosticSummary {
	return DiagnosticSummary{
		ConsultancyID: d.ConsultancyID,
		Strengths:     len(d.Strengths),
		Weaknesses:    len(d.Weaknesses),
		Opportunities: len(d.Opportunities),
		Threats:       len(d.Threats),
		Problems:      len(d.Problems),
		Insights:      len(d.Insights),
		LinkedActions: linkedActions,
	}
}

// CreateActionFromFindingRequest gera uma ação a partir de um item do diagnóstico
type CreateActionFromFindingRequest struct {
	ConsultancyID string      `json:"-"`
	Kind          FindingKind `json:"kind"`
	Index         int         `json:"index"`
	Impact        Level       `json:"impact"`
	Effort        Level       `json:"effort"`
	Owner         string      `json:"owner"`
	Deadline      *time.Time  `json:"deadline"`
}
