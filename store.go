package main

import (
	"sort"
	"sync"
)

// morningPresetItem is one (food, servings) pair of the fixed morning preset.
type morningPresetItem struct {
	Food     string
	Servings float64
}

// morningPreset is the one-button breakfast batch: yogurt, tomato, apple,
// sweet potato, whole-wheat bread, and two eggs. Applied rows are all tagged
// with the 아침 slot.
var morningPreset = []morningPresetItem{
	{"플레인요거트", 1.0},
	{"토마토", 1.0},
	{"사과", 1.0},
	{"고구마", 1.0},
	{"통밀빵", 1.0},
	{"달걀", 2.0},
}

// logStore holds one session's three log collections. Each record gets a
// store-scoped monotonically increasing id at creation, never reused, so
// edits and deletions keep targeting the same logical row no matter what is
// inserted in between.
//
// The mutex is the session's mutual-exclusion boundary: a single user is
// effectively single-threaded, but two racing requests on the same session
// must not interleave a mutation with an aggregation.
type logStore struct {
	mu        sync.Mutex
	nextID    int64
	meals     []mealEntry
	exercises []exerciseEntry
	weights   []weightEntry
}

func newLogStore() *logStore {
	return &logStore{nextID: 1}
}

// newID must be called with the mutex held.
func (s *logStore) newID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

/* ─── Meal log ───────────────────────────────────────────────────────── */

// addMeal appends a single meal row. Kcal has already been derived by the
// caller via mealCalories.
func (s *logStore) addMeal(e mealEntry) mealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.newID()
	s.meals = append(s.meals, e)
	return e
}

// importMeals appends a batch of uploaded meal rows. When deriveKcal is set
// (the upload had no kcal column) every row's kcal is derived from its food
// and servings; otherwise the uploaded values are stored untouched.
func (s *logStore) importMeals(t *foodTable, rows []mealEntry, deriveKcal bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range rows {
		if deriveKcal {
			rows[i].Kcal, _ = mealCalories(t, rows[i].Food, rows[i].Servings)
		}
		rows[i].ID = s.newID()
		s.meals = append(s.meals, rows[i])
	}
	return len(rows)
}

// copyDay duplicates every meal row dated src onto dst, preserving meal slot,
// food, servings, and the previously computed kcal (no recomputation — the
// source figures are assumed still valid). Returns the number of rows copied;
// 0 means there was nothing on the source day.
func (s *logStore) copyDay(src, dst DateOnly) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	srcKey := src.String()
	var copied []mealEntry
	for _, e := range s.meals {
		if e.Date.String() == srcKey {
			dup := e
			dup.ID = s.newID()
			dup.Date = dst
			copied = append(copied, dup)
		}
	}
	s.meals = append(s.meals, copied...)
	return len(copied)
}

// applyMorningPreset appends one row per preset item, all dated date and
// tagged 아침, deriving each row's kcal at apply time. Returns the number of
// rows added.
func (s *logStore) applyMorningPreset(t *foodTable, date DateOnly) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range morningPreset {
		kcal, _ := mealCalories(t, item.Food, item.Servings)
		s.meals = append(s.meals, mealEntry{
			ID:       s.newID(),
			Date:     date,
			Meal:     "아침",
			Food:     item.Food,
			Servings: item.Servings,
			Kcal:     kcal,
		})
	}
	return len(morningPreset)
}

// replaceMeals swaps in a caller-edited version of the whole meal log and
// recomputes every row's kcal from its (possibly just-edited) food and
// servings. Whatever kcal arrived with the edit is discarded — recomputation
// is authoritative. Rows get fresh ids: the replacement is a new collection,
// not a patch.
func (s *logStore) replaceMeals(t *foodTable, edits []mealEntry) []mealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := make([]mealEntry, 0, len(edits))
	for _, e := range edits {
		e.Kcal, _ = mealCalories(t, e.Food, e.Servings)
		e.ID = s.newID()
		replaced = append(replaced, e)
	}
	s.meals = replaced
	return replaced
}

// deleteMeals removes the meal rows whose id is in ids. Unknown or stale ids
// are ignored. Returns the number of rows actually removed.
func (s *logStore) deleteMeals(ids []int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop := make(map[int64]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := s.meals[:0]
	deleted := 0
	for _, e := range s.meals {
		if drop[e.ID] {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	s.meals = kept
	return deleted
}

// mealsForDate returns the meal rows dated date, in insertion order.
func (s *logStore) mealsForDate(date DateOnly) []mealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := date.String()
	out := []mealEntry{}
	for _, e := range s.meals {
		if e.Date.String() == key {
			out = append(out, e)
		}
	}
	return out
}

// allMeals returns a copy of the full meal log in insertion order.
func (s *logStore) allMeals() []mealEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]mealEntry, len(s.meals))
	copy(out, s.meals)
	return out
}

// mealKcalForDate sums the kcal of every meal row dated date; 0 for none.
func (s *logStore) mealKcalForDate(date DateOnly) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := date.String()
	var sum float64
	for _, e := range s.meals {
		if e.Date.String() == key {
			sum += e.Kcal
		}
	}
	return sum
}

/* ─── Exercise log ───────────────────────────────────────────────────── */

// addExercise appends a single exercise row. KcalBurned has already been
// derived by the caller via walkCalories.
func (s *logStore) addExercise(e exerciseEntry) exerciseEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.newID()
	s.exercises = append(s.exercises, e)
	return e
}

// importExercise appends a batch of uploaded exercise rows, recomputing
// kcal_burned for exactly the rows where it is missing or zero. Rows that
// arrive with a nonzero figure keep it.
func (s *logStore) importExercise(rows []exerciseEntry) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range rows {
		if rows[i].KcalBurned == 0 {
			rows[i].KcalBurned = walkCalories(rows[i].Activity, rows[i].Minutes, rows[i].WeightKg)
		}
		rows[i].ID = s.newID()
		s.exercises = append(s.exercises, rows[i])
	}
	return len(rows)
}

// exercisesSorted returns the full exercise log sorted by (date, activity),
// the ordering the log table renders in.
func (s *logStore) exercisesSorted() []exerciseEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]exerciseEntry, len(s.exercises))
	copy(out, s.exercises)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Date.String(), out[j].Date.String()
		if di != dj {
			return di < dj
		}
		return out[i].Activity < out[j].Activity
	})
	return out
}

// exerciseKcalForDate sums kcal_burned across the exercise rows dated date.
func (s *logStore) exerciseKcalForDate(date DateOnly) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := date.String()
	var sum float64
	for _, e := range s.exercises {
		if e.Date.String() == key {
			sum += e.KcalBurned
		}
	}
	return sum
}

/* ─── Weight log ─────────────────────────────────────────────────────── */

// addWeight appends a weight entry. The weight log is append-only.
func (s *logStore) addWeight(e weightEntry) weightEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.newID()
	s.weights = append(s.weights, e)
	return e
}

// weightsSorted returns the weight log sorted by date ascending (stable, so
// same-date entries keep insertion order).
func (s *logStore) weightsSorted() []weightEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]weightEntry, len(s.weights))
	copy(out, s.weights)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.String() < out[j].Date.String()
	})
	return out
}

// latestWeight returns the weight of the entry with the maximum date, or
// ok=false when nothing has been logged. Used as the rolling "current weight"
// and the default body weight for new exercise entries.
func (s *logStore) latestWeight() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.weights) == 0 {
		return 0, false
	}
	best := s.weights[0]
	for _, e := range s.weights[1:] {
		if e.Date.String() >= best.Date.String() {
			best = e
		}
	}
	return best.WeightKg, true
}
