package animals

import (
	"math"
	"strings"
)

// Ranking de dietas. Las claves son las que usa el fixture.
var dietRanks = map[string]int{
	"herbavor": 1,
	"omnivor":  2,
	"carnivor": 3,
}

// CompareWeight > 0 si a pesa más que b. NaN si falta algún peso.
func CompareWeight(a, b Animal) float64 {
	return a.Traits().Weight - b.Traits().Weight
}

// CompareHeight > 0 si a es más alto que b. NaN si falta alguna altura.
func CompareHeight(a, b Animal) float64 {
	return a.Traits().Height - b.Traits().Height
}

// CompareDiet devuelve 0 solo si las dietas coinciden sin importar
// mayúsculas, y la diferencia de ranking si no. Una dieta fuera del
// ranking (p.ej. "herbivore") distinta de la otra da NaN.
func CompareDiet(a, b Animal) float64 {
	da := strings.ToLower(a.Traits().Diet)
	db := strings.ToLower(b.Traits().Diet)
	if da == db {
		return 0
	}
	ra, okA := dietRanks[da]
	rb, okB := dietRanks[db]
	if !okA || !okB {
		return math.NaN()
	}
	return float64(ra - rb)
}

// SameLocation acepta que una ubicación sea parte de la otra, p.ej.
// "Asia" y "North America, Asia, Europe".
func SameLocation(a, b Animal) bool {
	wa := strings.ToLower(a.Traits().Where)
	wb := strings.ToLower(b.Traits().Where)
	return strings.Contains(wa, wb) || strings.Contains(wb, wa)
}

// comparisonFacts arma los candidatos de self comparado contra other
// (normalmente el humano).
func comparisonFacts(self, other Animal) []string {
	name := self.Name()
	facts := []string{self.Fact()}

	if CompareWeight(self, other) >= 0 {
		facts = append(facts, "You are not heavier than "+name)
	} else {
		facts = append(facts, "You are heavier than "+name)
	}

	if CompareHeight(self, other) >= 0 {
		facts = append(facts, "You are not taller than "+name)
	} else {
		facts = append(facts, "You are taller than "+name)
	}

	if CompareDiet(self, other) != 0 {
		facts = append(facts, "You diet is different than that of "+name)
	} else {
		facts = append(facts, "You have the same diet as "+name)
	}

	if SameLocation(self, other) {
		facts = append(facts, "You live in the same place as "+name)
	}

	return facts
}
