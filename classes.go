package engine

import "github.com/otterbloom/suggestengine/lang"

// Pattern sets used by the tokenizer's split/strip stages. Declared
// once here so the profiles in tokenizer.go read as names rather than
// inline class lists.
var (
	splitPattern = lang.NewPattern(lang.ClassWhitespace, lang.ClassControl, lang.ClassPunctuation)
	stripPattern = lang.NewPattern(lang.ClassNotAlphaNum)
)
