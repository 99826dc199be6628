package judge

// Language maps a human-supplied language identifier to the execution
// engine's numeric id.
type Language struct {
	ID       string
	FullName string
	EngineID int
}

// ResolveLanguage returns the language for the given identifier, or
// ok=false when the identifier is not in the supported set.
func ResolveLanguage(identifier string) (*Language, bool) {
	for _, lang := range getHardcodedLanguageList() {
		if lang.ID == identifier {
			l := lang
			return &l, true
		}
	}
	return nil, false
}

// SupportedLanguages returns the full supported set.
func SupportedLanguages() []Language {
	return getHardcodedLanguageList()
}

// getHardcodedLanguageList returns the supported languages. The numeric
// ids come from the execution engine's language catalog.
func getHardcodedLanguageList() []Language {
	return []Language{
		{ID: "c", FullName: "C (GCC)", EngineID: 50},
		{ID: "cpp", FullName: "C++ (GCC)", EngineID: 54},
		{ID: "go", FullName: "Go", EngineID: 60},
		{ID: "java", FullName: "Java SE", EngineID: 62},
		{ID: "js", FullName: "JavaScript (Node.js)", EngineID: 63},
		{ID: "py", FullName: "Python 3", EngineID: 71},
	}
}
