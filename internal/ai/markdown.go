package ai

import "regexp"

// Models sometimes decorate JSON string values with markdown even when told
// not to. These strip the common inline forms before the text reaches the
// resume renderer, which prints plain text.
var markdownPatterns = []struct {
	re      *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "$1"},
	{regexp.MustCompile(`\*(.*?)\*`), "$1"},
	{regexp.MustCompile(`__(.*?)__`), "$1"},
	{regexp.MustCompile("`(.*?)`"), "$1"},
	{regexp.MustCompile(`\[(.*?)\]\((.*?)\)`), "$1"},
}

func cleanMarkdown(text string) string {
	for _, p := range markdownPatterns {
		text = p.re.ReplaceAllString(text, p.replace)
	}
	return text
}

func cleanMarkdownSlice(items []string) {
	for i, item := range items {
		items[i] = cleanMarkdown(item)
	}
}

// stripMarkdown cleans every text field of an optimized resume in place.
func stripMarkdown(r *OptimizedResume) {
	r.Summary = cleanMarkdown(r.Summary)
	for i := range r.Experience {
		exp := &r.Experience[i]
		exp.Role = cleanMarkdown(exp.Role)
		exp.Company = cleanMarkdown(exp.Company)
		cleanMarkdownSlice(exp.Description)
		cleanMarkdownSlice(exp.Skills)
	}
	cleanMarkdownSlice(r.Skills.Frontend)
	cleanMarkdownSlice(r.Skills.Backend)
	cleanMarkdownSlice(r.Skills.Infrastructure)
	cleanMarkdownSlice(r.RelevantProjects)
	cleanMarkdownSlice(r.KeywordMatches)
}
