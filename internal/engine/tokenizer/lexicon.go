// internal/engine/tokenizer/lexicon.go
package tokenizer

// Fixed stopword set. Words here never survive tokenization.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "were": true, "will": true,
	"with": true, "this": true, "but": true, "they": true, "have": true,
	"had": true, "what": true, "when": true, "where": true, "who": true,
	"which": true, "why": true, "how": true, "all": true, "any": true,
	"no": true, "nor": true, "not": true, "only": true, "own": true,
	"so": true, "than": true, "too": true, "very": true, "can": true,
	"do": true, "does": true, "your": true, "you": true, "my": true,
	"our": true, "we": true, "or": true, "if": true, "into": true,
}

// Hand-curated relevance lexicon. Named verticals and entities score 3,
// domain nouns/verbs score 2, everything else defaults to generic (1).
var coreTerms = map[string]bool{
	"language": true, "spanish": true, "english": true, "french": true,
	"german": true, "italian": true, "japanese": true, "chinese": true,
	"korean": true, "portuguese": true,
	"fitness": true, "workout": true, "yoga": true, "meditation": true,
	"photo": true, "video": true, "music": true, "podcast": true,
	"game": true, "puzzle": true, "travel": true, "recipe": true,
	"finance": true, "budget": true, "invoice": true, "crypto": true,
	"weather": true, "calendar": true, "dating": true, "sleep": true,
}

var domainTerms = map[string]bool{
	"learn": true, "learning": true, "speak": true, "speaking": true,
	"study": true, "practice": true, "lesson": true, "lessons": true,
	"course": true, "courses": true, "vocabulary": true, "grammar": true,
	"fluent": true, "fluently": true, "translate": true, "translator": true,
	"track": true, "tracker": true, "tracking": true, "plan": true,
	"planner": true, "edit": true, "editor": true, "scan": true,
	"scanner": true, "coach": true, "trainer": true, "training": true,
	"guide": true, "tutor": true, "flashcards": true, "quiz": true,
}
