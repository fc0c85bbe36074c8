// Package mealname derives a human-readable meal name from the names of the
// entries in the cart. Matching is pure, case-insensitive and runs an ordered
// rule list where the first hit wins.
package mealname

import "strings"

var (
	starchKeywords  = []string{"rice", "pasta", "noodle", "spaghetti"}
	proteinKeywords = []string{"chicken", "beef", "pork", "fish", "tofu", "shrimp"}

	leafyGreenKeywords   = []string{"spinach", "lettuce", "kale", "arugula", "greens", "salad"}
	saladVegKeywords     = []string{"cucumber", "tomato", "avocado", "carrot"}
	saladProteinKeywords = []string{"chicken", "tuna", "salmon", "egg", "tofu"}

	breakfastKeywords = []string{"egg", "bacon", "sausage", "toast", "pancake", "waffle"}
	stackKeywords     = []string{"pancake", "waffle", "french toast"}

	fruitBowlKeywords = []string{"apple", "banana", "berry", "strawberry", "blueberry", "yogurt", "granola"}

	breadKeywords        = []string{"bread", "toast", "bagel", "bun", "baguette", "tortilla", "wrap"}
	wrapKeywords         = []string{"tortilla", "wrap"}
	sandwichProteinWords = []string{"chicken", "turkey", "ham", "tuna", "egg", "beef", "pork", "tofu"}

	smoothieKeywords = []string{"smoothie", "shake"}
	smoothieFruits   = []string{"banana", "strawberry", "blueberry", "mango", "peach", "berry", "apple"}
)

// Suggest produces a meal name for the given entry names. Rule order is part
// of the contract: an input matching the bowl rule and the salad rule
// resolves as a bowl.
func Suggest(entryNames []string) string {
	switch len(entryNames) {
	case 0:
		return ""
	case 1:
		return titleCase(entryNames[0])
	}

	lower := make([]string, len(entryNames))
	for i, n := range entryNames {
		lower[i] = strings.ToLower(n)
	}

	// protein + starch bowl
	if protein, starch := firstMatch(lower, proteinKeywords), firstMatch(lower, starchKeywords); protein != "" && starch != "" {
		return titleCase(protein + " " + starch + " bowl")
	}

	// salad
	if anyMatch(lower, leafyGreenKeywords) || countMatches(lower, saladVegKeywords) >= 2 {
		if protein := firstMatch(lower, saladProteinKeywords); protein != "" {
			return titleCase(protein + " salad")
		}
		return "Fresh Salad"
	}

	// breakfast
	if anyMatch(lower, breakfastKeywords) {
		if anyMatch(lower, stackKeywords) {
			return "Breakfast Stack"
		}
		return "Breakfast Plate"
	}

	// fruit and yogurt
	if countMatches(lower, fruitBowlKeywords) >= 2 {
		return "Fruit & Yogurt Bowl"
	}

	// sandwich or wrap
	if anyMatch(lower, breadKeywords) {
		protein := firstMatch(lower, sandwichProteinWords)
		if protein == "" {
			protein = "veggie"
		}
		if anyMatch(lower, wrapKeywords) {
			return titleCase(protein + " wrap")
		}
		return titleCase(protein + " sandwich")
	}

	// smoothie
	if anyMatch(lower, smoothieKeywords) {
		if fruit := firstMatch(lower, smoothieFruits); fruit != "" {
			return titleCase(fruit + " smoothie")
		}
		return "Fruit Smoothie"
	}

	return titleCase(entryNames[0] + " & " + entryNames[1])
}

func firstMatch(names []string, keywords []string) string {
	for _, kw := range keywords {
		for _, n := range names {
			if strings.Contains(n, kw) {
				return kw
			}
		}
	}
	return ""
}

func anyMatch(names []string, keywords []string) bool {
	return firstMatch(names, keywords) != ""
}

func countMatches(names []string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		for _, n := range names {
			if strings.Contains(n, kw) {
				count++
				break
			}
		}
	}
	return count
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "&" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
