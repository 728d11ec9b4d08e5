package atcoder

// languageCodes maps logical language names of the host to the numeric
// language IDs of the remote submit form. The table must match the remote
// site exactly; any other name is rejected.
var languageCodes = map[string]string{
	"c":       "3002",
	"cpp98":   "3029",
	"cpp14":   "3003",
	"pascal":  "3019",
	"java":    "3016",
	"node":    "3017",
	"python2": "3022",
	"python3": "3023",
}

// LanguageCode resolves a logical language name to the remote language code.
func LanguageCode(language string) (string, bool) {
	code, ok := languageCodes[language]
	return code, ok
}
