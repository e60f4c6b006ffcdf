package analytics

import "strings"

// Mistake tags assigned by ClassifyMistake.
const (
	MistakeAnatomyStructure   = "anatomy_structure"
	MistakePhysiologyFunction = "physiology_function"
	MistakeNervousSystem      = "nervous_system"
	MistakeCardiovascular     = "cardiovascular"
	MistakeGeneralConcept     = "general_concept"
)

// mistakeKeywords maps tags to their trigger words, in evaluation order.
// The first tag with any keyword present in the question wins.
var mistakeKeywords = []struct {
	tag      string
	keywords []string
}{
	{MistakeAnatomyStructure, []string{"anatomy", "structure", "location"}},
	{MistakePhysiologyFunction, []string{"function", "physiology", "process"}},
	{MistakeNervousSystem, []string{"nerve", "innervation", "nervous"}},
	{MistakeCardiovascular, []string{"blood", "circulation", "heart"}},
}

// ClassifyMistake tags an error by simple keyword match on the question
// text. Questions matching nothing fall back to general_concept.
func ClassifyMistake(questionText string) string {
	text := strings.ToLower(questionText)
	for _, entry := range mistakeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.tag
			}
		}
	}
	return MistakeGeneralConcept
}
