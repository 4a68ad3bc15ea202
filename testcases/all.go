package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in exported fixture names.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"curve":     curveCases,
	"arc":       arcCases,
	"precision": precisionCases,
	"subpath":   subpathCases,
	"ctm":       ctmCases,
	"complex":   complexCases,
	"large":     largeCases,
}
