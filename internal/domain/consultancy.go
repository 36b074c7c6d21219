package domain

import (
	"fmt"
	"time"
)

type ConsultancyStatus string

const (
	ConsultancyStatusActive ConsultancyStatus = "active"
	ConsultancyStatusClosed ConsultancyStatus = "closed"
)

func (s ConsultancyStatus) Valid() bool {
	return s == ConsultancyStatusActive || s == ConsultancyStatusClosed
}

// Consultancy é o acompanhamento mensal de um cliente (ConsultoriaMensal)
type Consultancy struct {
	ID         string            `json:"id"` // Chave composta <client_id>-<month_year>
	ClientID   string            `json:"client_id"`
	ClientName string            `json:"client_name"`
	MonthYear  string            `json:"month_year"`
	Consultant string            `json:"consultant,omitempty"`
	Status     ConsultancyStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// NewConsultancyKey monta a chave usada por metas, ações e diagnósticos do mês
func NewConsultancyKey(clientID, monthYear string) string {
	return fmt.Sprintf("%s-%s", clientID, monthYear)
}

type UpdateConsultancyRequest struct {
	ID         string             `json:"-"`
	ClientName *string            `json:"client_name"`
	Consultant *string            `json:"consultant"`
	Status     *ConsultancyStatus `json:"status"`
	Notes      *string            `json:"notes"`
}
