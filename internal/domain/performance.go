package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Band é a faixa de exibição de score e indicadores
type Band string

const (
	BandExcellent        Band = "excellent"
	BandGood             Band = "good"
	BandNeedsImprovement Band = "needs_improvement"
)

// Color retorna a cor usada pelo painel para a faixa
func (b Band) Color() string {
	switch b {
	case BandExcellent:
		return "green"
	case BandGood:
		return "yellow"
	default:
		return "red"
	}
}

// Performance é o fechamento mensal de um cliente (PerformanceMensal)
type Performance struct {
	ID                string          `json:"id"`
	ClientID          string          `json:"client_id"`
	ClientName        string          `json:"client_name"`
	MonthYear         string          `json:"month_year"` // Formato yyyy-mm (ex: 2024-01)
	ActiveClients     int             `json:"active_clients"`
	NewClients        int             `json:"new_clients"`
	CancelledClients  int             `json:"cancelled_clients"`
	ActiveContracts   int             `json:"active_contracts"`
	SupportTickets    int             `json:"support_tickets"`
	TotalBilling      decimal.Decimal `json:"total_billing"`
	DelinquencyAmount decimal.Decimal `json:"delinquency_amount"`
	ChurnRate         float64         `json:"churn_rate"`
	DelinquencyRate   float64         `json:"delinquency_rate"`
	Uptime            float64         `json:"uptime"`
	NPS               float64         `json:"nps"`
	Satisfaction      float64         `json:"satisfaction"`
	Score             int             `json:"score"`
	ScoreBand         Band            `json:"score_band"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ScoreBreakdown detalha os pontos de cada fator do score
type ScoreBreakdown struct {
	Churn       int  `json:"churn"`
	NPS         int  `json:"nps"`
	Delinquency int  `json:"delinquency"`
	Growth      int  `json:"growth"`
	Total       int  `json:"total"`
	Band        Band `json:"band"`
}

func churnPoints(rate float64) float64 {
	switch {
	case rate <= 2:
		return 25
	case rate <= 5:
		return 15
	case rate <= 10:
		return 5
	}
	return 0
}

func npsPoints(nps float64) float64 {
	switch {
	case nps >= 70:
		return 25
	case nps >= 50:
		return 15
	case nps >= 30:
		return 5
	}
	return 0
}

func delinquencyPoints(rate float64) float64 {
	switch {
	case rate <= 2:
		return 25
	case rate <= 5:
		return 15
	case rate <= 10:
		return 5
	}
	return 0
}

func growthPoints(newClients, cancelledClients int) float64 {
	switch {
	case newClients > cancelledClients:
		return 25
	case newClients == cancelledClients:
		return 15
	}
	return 0
}

// Breakdown calcula os quatro fatores de 25 pontos do score
func (p Performance) Breakdown() ScoreBreakdown {
	churn := churnPoints(p.ChurnRate)
	nps := npsPoints(p.NPS)
	delinquency := delinquencyPoints(p.DelinquencyRate)
	growth := growthPoints(p.NewClients, p.CancelledClients)

	total := int(math.Round(churn + nps + delinquency + growth))

	return ScoreBreakdown{
		Churn:       int(churn),
		NPS:         int(nps),
		Delinquency: int(delinquency),
		Growth:      int(growth),
		Total:       total,
		Band:        BandFor(total),
	}
}

// ComputeScore retorna o score mensal entre 0 e 100
func ComputeScore(p Performance) int {
	return p.Breakdown().Total
}

// BandFor classifica o score: >=80 excelente, >=60 bom, abaixo disso precisa melhorar
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	}
	return BandNeedsImprovement
}

// ChurnIndicator usa os mesmos cortes do score: <=2% verde, <=5% amarelo
func ChurnIndicator(rate float64) Band {
	switch {
	case rate <= 2:
		return BandExcellent
	case rate <= 5:
		return BandGood
	}
	return BandNeedsImprovement
}

// NPSIndicator: >=70 verde, >=50 amarelo
func NPSIndicator(nps float64) Band {
	switch {
	case nps >= 70:
		return BandExcellent
	case nps >= 50:
		return BandGood
	}
	return BandNeedsImprovement
}

// DelinquencyIndicator: <=2% verde, <=5% amarelo
func DelinquencyIndicator(rate float64) Band {
	switch {
	case rate <= 2:
		return BandExcellent
	case rate <= 5:
		return BandGood
	}
	return BandNeedsImprovement
}

// Recalculate atualiza score e faixa a partir dos sinais do mês
func (p *Performance) Recalculate() {
	p.Score = ComputeScore(*p)
	p.ScoreBand = BandFor(p.Score)
}

// ARPU é o faturamento médio por cliente ativo
func (p Performance) ARPU() decimal.Decimal {
	if p.ActiveClients <= 0 {
		return decimal.Zero
	}
	return p.TotalBilling.Div(decimal.NewFromInt(int64(p.ActiveClients))).Round(2)
}

// NetGrowth é a diferença entre clientes novos e cancelados
func (p Performance) NetGrowth() int {
	return p.NewClients - p.CancelledClients
}

// PerformanceIndicators agrupa as cores por métrica exibidas no painel
type PerformanceIndicators struct {
	Churn       Band `json:"churn"`
	NPS         Band `json:"nps"`
	Delinquency Band `json:"delinquency"`
}

func (p Performance) Indicators() PerformanceIndicators {
	return PerformanceIndicators{
		Churn:       ChurnIndicator(p.ChurnRate),
		NPS:         NPSIndicator(p.NPS),
		Delinquency: DelinquencyIndicator(p.DelinquencyRate),
	}
}

// PerformanceRankingItem é a posição de um cliente no ranking mensal de score
type PerformanceRankingItem struct {
	ClientID         string          `json:"client_id"`
	ClientName       string          `json:"client_name"`
	MonthYear        string          `json:"month_year"`
	Score            int             `json:"score"`
	ScoreBand        Band            `json:"score_band"`
	TotalBilling     decimal.Decimal `json:"total_billing"`
	Position         int             `json:"position"`
	PositionChange   int             `json:"position_change"` // Positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int             `json:"previous_position"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type PerformanceRanking struct {
	MonthYear  string                   `json:"month_year"`
	Ranking    []PerformanceRankingItem `json:"ranking"`
	LastUpdate time.Time                `json:"last_update"`
}
