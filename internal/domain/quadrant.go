package domain

// Quadrant é o balde da matriz impacto/esforço
type Quadrant string

const (
	QuadrantQuickWins Quadrant = "quick_wins"
	QuadrantProjects  Quadrant = "projects"
	QuadrantFillIns   Quadrant = "fill_ins"
	QuadrantThankless Quadrant = "thankless"
)

// Quadrants retorna os quadrantes na ordem de exibição da matriz
func Quadrants() []Quadrant {
	return []Quadrant{QuadrantQuickWins, QuadrantProjects, QuadrantFillIns, QuadrantThankless}
}

func (q Quadrant) Valid() bool {
	switch q {
	case QuadrantQuickWins, QuadrantProjects, QuadrantFillIns, QuadrantThankless:
		return true
	}
	return false
}

// ClassifyQuadrant aplica a regra de priorização. Só os extremos têm regra própria:
// qualquer par com medium cai em thankless.
func ClassifyQuadrant(impact, effort Level) Quadrant {
	switch {
	case impact == LevelHigh && effort == LevelLow:
		return QuadrantQuickWins
	case impact == LevelHigh && effort == LevelHigh:
		return QuadrantProjects
	case impact == LevelLow && effort == LevelLow:
		return QuadrantFillIns
	default:
		return QuadrantThankless
	}
}

// CanonicalPair retorna o par impacto/esforço usado ao arrastar uma ação para o quadrante
func CanonicalPair(q Quadrant) (impact Level, effort Level, err error) {
	switch q {
	case QuadrantQuickWins:
		return LevelHigh, LevelLow, nil
	case QuadrantProjects:
		return LevelHigh, LevelHigh, nil
	case QuadrantFillIns:
		return LevelLow, LevelLow, nil
	case QuadrantThankless:
		return LevelLow, LevelHigh, nil
	}
	return "", "", ErrInvalidQuadrant
}
