package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeScore_Extremes(t *testing.T) {
	best := Performance{ChurnRate: 1, NPS: 90, DelinquencyRate: 1, NewClients: 10, CancelledClients: 0}
	worst := Performance{ChurnRate: 50, NPS: 0, DelinquencyRate: 50, NewClients: 0, CancelledClients: 10}

	assert.Equal(t, 100, ComputeScore(best))
	assert.Equal(t, 0, ComputeScore(worst))
}

func TestComputeScore_Buckets(t *testing.T) {
	tests := []struct {
		name string
		perf Performance
		want ScoreBreakdown
	}{
		{
			name: "limites exatos das faixas superiores",
			perf: Performance{ChurnRate: 2, NPS: 70, DelinquencyRate: 2, NewClients: 3, CancelledClients: 3},
			want: ScoreBreakdown{Churn: 25, NPS: 25, Delinquency: 25, Growth: 15, Total: 90, Band: BandExcellent},
		},
		{
			name: "faixas intermediárias",
			perf: Performance{ChurnRate: 5, NPS: 50, DelinquencyRate: 5, NewClients: 1, CancelledClients: 2},
			want: ScoreBreakdown{Churn: 15, NPS: 15, Delinquency: 15, Growth: 0, Total: 45, Band: BandNeedsImprovement},
		},
		{
			name: "faixas inferiores",
			perf: Performance{ChurnRate: 10, NPS: 30, DelinquencyRate: 10, NewClients: 5, CancelledClients: 1},
			want: ScoreBreakdown{Churn: 5, NPS: 5, Delinquency: 5, Growth: 25, Total: 40, Band: BandNeedsImprovement},
		},
		{
			name: "logo acima dos cortes",
			perf: Performance{ChurnRate: 10.01, NPS: 29.9, DelinquencyRate: 10.5, NewClients: 0, CancelledClients: 0},
			want: ScoreBreakdown{Churn: 0, NPS: 0, Delinquency: 0, Growth: 15, Total: 15, Band: BandNeedsImprovement},
		},
		{
			name: "faixa boa",
			perf: Performance{ChurnRate: 1, NPS: 55, DelinquencyRate: 4, NewClients: 2, CancelledClients: 2},
			want: ScoreBreakdown{Churn: 25, NPS: 15, Delinquency: 15, Growth: 15, Total: 70, Band: BandGood},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.perf.Breakdown())
			assert.Equal(t, tt.want.Total, ComputeScore(tt.perf))
		})
	}
}

func TestComputeScore_MonotonicPerFactor(t *testing.T) {
	base := Performance{ChurnRate: 6, NPS: 40, DelinquencyRate: 6, NewClients: 1, CancelledClients: 1}

	previous := 101
	for _, churn := range []float64{0, 1, 2, 3, 5, 7, 10, 15, 40} {
		p := base
		p.ChurnRate = churn
		score := ComputeScore(p)
		assert.LessOrEqual(t, score, previous, "churn crescente não pode aumentar o score")
		previous = score
	}

	previous = -1
	for _, nps := range []float64{-100, 0, 29, 30, 49, 50, 69, 70, 100} {
		p := base
		p.NPS = nps
		score := ComputeScore(p)
		assert.GreaterOrEqual(t, score, previous, "NPS crescente não pode reduzir o score")
		previous = score
	}

	previous = 101
	for _, rate := range []float64{0, 2, 2.5, 5, 6, 10, 11, 90} {
		p := base
		p.DelinquencyRate = rate
		score := ComputeScore(p)
		assert.LessOrEqual(t, score, previous, "inadimplência crescente não pode aumentar o score")
		previous = score
	}

	previous = -1
	for _, newClients := range []int{0, 1, 2, 10} {
		p := base
		p.NewClients = newClients
		score := ComputeScore(p)
		assert.GreaterOrEqual(t, score, previous, "mais clientes novos não pode reduzir o score")
		previous = score
	}
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandExcellent, BandFor(80))
	assert.Equal(t, BandGood, BandFor(79))
	assert.Equal(t, BandGood, BandFor(60))
	assert.Equal(t, BandNeedsImprovement, BandFor(59))

	assert.Equal(t, "green", BandExcellent.Color())
	assert.Equal(t, "yellow", BandGood.Color())
	assert.Equal(t, "red", BandNeedsImprovement.Color())
}

func TestIndicators(t *testing.T) {
	p := Performance{ChurnRate: 3, NPS: 75, DelinquencyRate: 12}

	assert.Equal(t, PerformanceIndicators{
		Churn:       BandGood,
		NPS:         BandExcellent,
		Delinquency: BandNeedsImprovement,
	}, p.Indicators())
}

func TestRecalculateAndARPU(t *testing.T) {
	p := Performance{
		ActiveClients:    4,
		TotalBilling:     decimal.RequireFromString("1000.00"),
		ChurnRate:        1,
		NPS:              80,
		DelinquencyRate:  1,
		NewClients:       3,
		CancelledClients: 1,
	}

	p.Recalculate()

	assert.Equal(t, 100, p.Score)
	assert.Equal(t, BandExcellent, p.ScoreBand)
	assert.True(t, decimal.RequireFromString("250").Equal(p.ARPU()))
	assert.Equal(t, 2, p.NetGrowth())

	assert.True(t, Performance{}.ARPU().IsZero())
}
