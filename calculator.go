package main

// walkingMETs maps walking-speed activity labels to their MET constant.
// This is the single source of truth for known activities — the exercise
// handlers use it only for defaults, never to reject input (unknown labels
// fall back to the moderate constant).
var walkingMETs = map[string]float64{
	"걷기(느림)": 2.8,
	"걷기(보통)": 3.5,
	"걷기(빠름)": 4.5,
}

// activityModerate is the fallback activity for unrecognized or absent labels.
const activityModerate = "걷기(보통)"

// mealCalories derives the calories of a meal entry: the food's per-serving
// kcal from the catalog scaled by the serving count. An unknown food name
// resolves to 0 kcal with found=false — logging never fails on a name that
// isn't in the catalog. No rounding here; whole-kcal display is the
// frontend's concern.
func mealCalories(t *foodTable, food string, servings float64) (kcal float64, found bool) {
	item, ok := t.lookup(food)
	if !ok {
		return 0, false
	}
	return item.Kcal * servings, true
}

// metForActivity resolves an activity label to its MET constant, falling back
// to moderate (3.5) for anything unrecognized.
func metForActivity(activity string) float64 {
	if met, ok := walkingMETs[activity]; ok {
		return met
	}
	return walkingMETs[activityModerate]
}

// walkCalories estimates calories burned by a walk using the standard
// MET conversion: kcal/min = MET × 3.5 × weightKg / 200, scaled by duration.
// Pure function — range clamping of minutes and weight happens at the input
// boundary, not here.
func walkCalories(activity string, minutes, weightKg float64) float64 {
	return metForActivity(activity) * 3.5 * weightKg / 200.0 * minutes
}
