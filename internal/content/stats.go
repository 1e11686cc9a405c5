package content

import (
	"fmt"
	"slices"
	"time"
)

// ProjectsCompleted formats the project count for the hero section.
func ProjectsCompleted(projects []Project) string {
	return fmt.Sprintf("%d+", len(projects))
}

// YearsOfExperience counts calendar years since startYear, never below
// zero.
func YearsOfExperience(now time.Time, startYear int) string {
	return fmt.Sprintf("%d+", max(0, now.Year()-startYear))
}

// TechStack returns every technology used by projects, sorted.
func TechStack(projects []Project) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range projects {
		for _, t := range p.Tech {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
	}
	slices.Sort(out)
	return out
}

// TopTechStack returns up to limit technologies ordered by how many
// projects use them. Ties keep first-seen order.
func TopTechStack(projects []Project, limit int) []string {
	counts := map[string]int{}
	var order []string
	for _, p := range projects {
		for _, t := range p.Tech {
			if counts[t] == 0 {
				order = append(order, t)
			}
			counts[t]++
		}
	}
	slices.SortStableFunc(order, func(a, b string) int { return counts[b] - counts[a] })
	if limit >= 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}

// SkillCategoriesCount is the number of skill groups.
func SkillCategoriesCount(skills []SkillCategory) int { return len(skills) }

// TotalSkillsCount is the number of individual skills across groups.
func TotalSkillsCount(skills []SkillCategory) int {
	total := 0
	for _, c := range skills {
		total += len(c.Skills)
	}
	return total
}
