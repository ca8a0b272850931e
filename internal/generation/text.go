// Package generation builds the template deliverables for each project
// phase. Generators are pure: given the same budget, language and id
// sequence they emit the same deliverables, which is what makes plan
// regeneration reproducible.
package generation

// pick selects the string for the active plan language.
func pick(spanish bool, en, es string) string {
	if spanish {
		return es
	}
	return en
}
