package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Opportunity é uma oportunidade de negócio (OportunidadeNegocio) identificada no mês
type Opportunity struct {
	ID             string          `json:"id"`
	ConsultancyID  string          `json:"consultancy_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	Probability    Level           `json:"probability"`
	Converted      bool            `json:"converted"`
	ActionID       *string         `json:"action_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type UpdateOpportunityRequest struct {
	ID             string           `json:"-"`
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	EstimatedValue *decimal.Decimal `json:"estimated_value"`
	Probability    *Level           `json:"probability"`
}

// PromoteOpportunityRequest transforma a oportunidade em ação; impacto e esforço são opcionais
type PromoteOpportunityRequest struct {
	OpportunityID string     `json:"-"`
	Impact        *Level     `json:"impact"`
	Effort        *Level     `json:"effort"`
	Owner         string     `json:"owner"`
	Deadline      *time.Time `json:"deadline"`
}
