package category

import "sort"

// Unknown is returned for an id the table does not contain.
const Unknown = "Unknown"

// labels — фиксированная таблица категорий (id → название).
// Ids follow the alphabetical order the label encoder assigned at training.
var labels = map[int]string{
	0:  "Advocate",
	1:  "Arts",
	2:  "Automation Testing",
	3:  "Blockchain",
	4:  "Business Analyst",
	5:  "Civil Engineer",
	6:  "Data Science",
	7:  "Database",
	8:  "DevOps Engineer",
	9:  "DotNet Developer",
	10: "ETL Developer",
	11: "Electrical Engineering",
	12: "HR",
	13: "Hadoop",
	14: "Health and fitness",
	15: "Java Developer",
	16: "Mechanical Engineer",
	17: "Network Security Engineer",
	18: "Operations Manager",
	19: "PMO",
	20: "Python Developer",
	21: "SAP Developer",
	22: "Sales",
	23: "Testing",
	24: "Web Designing",
}

// Category is one row of the label table.
type Category struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Label returns the label for id, or Unknown.
func Label(id int) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return Unknown
}

// Known reports whether id is in the table.
func Known(id int) bool {
	_, ok := labels[id]
	return ok
}

// Count is the number of categories in the table.
func Count() int { return len(labels) }

// All returns a copy of the table ordered by id.
func All() []Category {
	out := make([]Category, 0, len(labels))
	for id, l := range labels {
		out = append(out, Category{ID: id, Label: l})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
