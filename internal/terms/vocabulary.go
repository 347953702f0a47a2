package terms

// stopwords holds articles, auxiliaries and other function words (tier one)
// plus domain-generic words that carry no signal in job descriptions (tier two).
var stopwords = toSet(
	// tier one
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "when", "while",
	"to", "of", "in", "on", "for", "with", "as", "at", "by", "is", "are", "was",
	"were", "be", "been", "being", "this", "that", "these", "those", "it", "its",
	"we", "our", "you", "your", "they", "their", "from", "into", "over", "under",
	"within", "across", "about", "than", "not", "no", "yes", "will", "would",
	"can", "could", "should", "may", "might", "who", "what", "which", "where",
	"all", "any", "each", "also", "such", "has", "have", "had", "does", "did",
	"etc", "per", "via", "more", "most", "other", "some",
	// tier two
	"data", "analysis", "team", "teams", "using", "use", "used", "work", "works",
	"working", "experience", "experiences", "role", "skills", "skill", "ability",
	"responsibilities", "requirements", "looking", "seeking", "join", "strong",
	"including", "must", "plus", "preferred", "required", "years", "year",
	"candidate", "candidates", "job", "position", "opportunity",
)

// genericTokens are words that survive stopword filtering but are too broad
// to anchor a phrase or rank highly in a keyword profile.
var genericTokens = toSet(
	"business", "support", "management", "process", "processes", "operations",
	"operational", "stakeholder", "stakeholders", "cross-functional", "insights",
	"solutions", "strategy", "strategic", "projects", "project", "tools",
	"systems", "results", "performance", "quality", "customer", "customers",
	"product", "products", "initiatives", "environment", "communication",
	"collaborate", "collaboration", "partner", "partners", "drive", "deliver",
	"ensure", "help", "new", "key", "various", "multiple",
)

// phraseWhitelist lists bigrams that are always emitted
var phraseWhitelist = map[[2]string]struct{}{
	{"machine", "learning"}:         {},
	{"deep", "learning"}:            {},
	{"natural", "language"}:         {},
	{"supply", "chain"}:             {},
	{"financial", "modeling"}:       {},
	{"predictive", "modeling"}:      {},
	{"statistical", "modeling"}:     {},
	{"feature", "engineering"}:      {},
	{"risk", "management"}:          {},
	{"project", "management"}:       {},
	{"product", "management"}:       {},
	{"business", "intelligence"}:    {},
	{"customer", "success"}:         {},
	{"root", "cause"}:               {},
	{"revenue", "cycle"}:            {},
	{"google", "analytics"}:         {},
	{"power", "query"}:              {},
	{"quality", "assurance"}:        {},
	{"version", "control"}:          {},
	{"anti", "money"}:               {},
	{"money", "laundering"}:         {},
	{"fraud", "detection"}:          {},
	{"sanctions", "screening"}:      {},
	{"dashboard", "development"}:    {},
	{"experimentation", "platform"}: {},
}

// hardSkills are concrete, verifiable technical skills
var hardSkills = toSet(
	"python", "sql", "etl", "forecasting", "excel", "tableau", "powerbi",
	"looker", "pandas", "numpy", "spark", "pyspark", "airflow", "dbt",
	"snowflake", "bigquery", "redshift", "postgres", "postgresql", "mysql",
	"regression", "statistics", "scikit-learn", "tensorflow", "pytorch",
	"kubernetes", "docker", "aws", "gcp", "azure", "java", "scala", "golang",
	"javascript", "typescript", "vba", "sas", "spss", "matlab", "git",
	"machine_learning", "nowcasting", "econometrics", "kafka",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether a folded token is a stopword
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// IsGeneric reports whether a folded term is a generic token
func IsGeneric(term string) bool {
	_, ok := genericTokens[term]
	return ok
}

// IsHardSkill reports whether a folded term is a hard skill
func IsHardSkill(term string) bool {
	_, ok := hardSkills[term]
	return ok
}

// IsWhitelistedPhrase reports whether (a, b) is a known phrase
func IsWhitelistedPhrase(a, b string) bool {
	_, ok := phraseWhitelist[[2]string{a, b}]
	return ok
}
