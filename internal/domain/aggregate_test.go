package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBelongsToMonth(t *testing.T) {
	assert.True(t, BelongsToMonth("client42-2024-01", "2024-01"))
	assert.False(t, BelongsToMonth("client42-2024-11", "2024-01"))

	// Contenção é permissiva: um token curto casa com qualquer chave que o contenha
	assert.True(t, BelongsToMonth("client1-2024-1", "1"))
	assert.True(t, BelongsToMonth("client42-2024-01", ""))
}

func TestFilterByMonth(t *testing.T) {
	goals := []Goal{
		{ID: "a", ConsultancyID: "client42-2024-01"},
		{ID: "b", ConsultancyID: "client42-2024-11"},
		{ID: "c", ConsultancyID: "client7-2024-01"},
	}

	filtered := FilterByMonth(goals, "2024-01", func(g Goal) string { return g.ConsultancyID })

	assert.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].ID)
	assert.Equal(t, "c", filtered[1].ID)
	assert.Empty(t, FilterByMonth([]Goal{}, "2024-01", func(g Goal) string { return g.ConsultancyID }))
}

func TestCountAndSum(t *testing.T) {
	goals := []Goal{
		{Status: GoalStatusAchieved, CurrentValue: 10},
		{Status: GoalStatusAchieved, CurrentValue: 5},
		{Status: GoalStatusMissed, CurrentValue: 1},
	}

	counts := CountBy(goals, func(g Goal) GoalStatus { return g.Status })
	assert.Equal(t, 2, counts[GoalStatusAchieved])
	assert.Equal(t, 1, counts[GoalStatusMissed])
	assert.Equal(t, 0, counts[GoalStatusInProgress])

	assert.Equal(t, 16.0, SumBy(goals, func(g Goal) float64 { return g.CurrentValue }))
	assert.Equal(t, 0.0, SumBy([]Goal{}, func(g Goal) float64 { return g.CurrentValue }))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 0.0, Percentage(0, 0))
}

func TestMostRecent(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []TimelineEvent{
		{ReferenceID: "old", Date: base},
		{ReferenceID: "newest", Date: base.Add(72 * time.Hour)},
		{ReferenceID: "middle", Date: base.Add(24 * time.Hour)},
	}
	date := func(e TimelineEvent) time.Time { return e.Date }

	latest := MostRecent(events, 2, date)
	assert.Len(t, latest, 2)
	assert.Equal(t, "newest", latest[0].ReferenceID)
	assert.Equal(t, "middle", latest[1].ReferenceID)

	// A lista original não é reordenada
	assert.Equal(t, "old", events[0].ReferenceID)

	assert.Len(t, MostRecent(events, 10, date), 3)
	assert.Empty(t, MostRecent(events, 0, date))
}

func TestDiagnosticFinding(t *testing.T) {
	d := Diagnostic{Weaknesses: []string{"suporte lento"}, Problems: []string{"queda de link", "cobrança manual"}}

	text, err := d.Finding(FindingProblem, 1)
	assert.NoError(t, err)
	assert.Equal(t, "cobrança manual", text)

	_, err = d.Finding(FindingThreat, 0)
	assert.ErrorIs(t, err, ErrFindingNotFound)

	_, err = d.Finding("strength", 0)
	assert.ErrorIs(t, err, ErrInvalidFindingKind)

	summary := d.Summarize(3)
	assert.Equal(t, 1, summary.Weaknesses)
	assert.Equal(t, 2, summary.Problems)
	assert.Equal(t, 3, summary.LinkedActions)
}
