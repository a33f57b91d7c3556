package usecase

import "strings"

// typographyFolder maps punctuation that phones and word processors
// substitute into listings back to the ASCII the attribute patterns expect.
// Replacements are rune for rune.
var typographyFolder = strings.NewReplacer(
	// inch marks
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2033", `"`,
	// foot marks
	"\u2018", "'",
	"\u2019", "'",
	"\u2032", "'",
	// hyphens and dashes
	"\u2010", "-",
	"\u2011", "-",
	"\u2012", "-",
	"\u2013", "-",
	"\u2014", "-",
	// spaces that \s does not match
	"\u00a0", " ",
	"\u2009", " ",
	"\u202f", " ",
)

// NormalizeItemText lower-cases title and description, joins them with a
// single space and folds typographic punctuation to ASCII.
func NormalizeItemText(title, description string) string {
	text := strings.ToLower(title + " " + description)
	return strings.TrimSpace(typographyFolder.Replace(text))
}
