// Package domain contém as estruturas de dados e as regras de derivação do painel de consultoria
package domain

import "errors"

var (
	ErrInvalidLevel    = errors.New("nível inválido, use low, medium ou high")
	ErrInvalidQuadrant = errors.New("quadrante inválido")
)

// Level é a escala de três valores usada em impacto, esforço e probabilidade
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// Levels retorna todos os níveis em ordem crescente
func Levels() []Level {
	return []Level{LevelLow, LevelMedium, LevelHigh}
}
