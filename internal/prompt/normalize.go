package prompt

import (
	"encoding/json"
	"strings"
)

// adviseTip is the single tip attached to a synthetic result when the model
// reply could not be parsed.
const adviseTip = "Vérifiez le résultat et ajustez selon vos besoins"

// Normalize turns the completion service's raw reply into a Result. The
// reply is expected to contain a JSON object, possibly surrounded by prose;
// the span from the first '{' to the last '}' is tried first, the whole
// text otherwise. The span heuristic can misfire when the surrounding prose
// itself contains braces; that behavior is kept on purpose because it is
// what makes chatty replies tolerable at all.
//
// Normalize never fails: an unparsable reply becomes a synthetic Result
// carrying the raw text as the prompt. A parsed object missing the prompt
// field counts as unparsable; missing tips or variations default to empty.
func Normalize(raw string) Result {
	span := raw
	if i := strings.Index(raw, "{"); i >= 0 {
		if j := strings.LastIndex(raw, "}"); j > i {
			span = raw[i : j+1]
		}
	}

	var res Result
	if err := json.Unmarshal([]byte(span), &res); err != nil || strings.TrimSpace(res.Prompt) == "" {
		return Result{
			Prompt:     raw,
			Tips:       []string{adviseTip},
			Variations: []string{},
		}
	}

	if res.Tips == nil {
		res.Tips = []string{}
	}
	if res.Variations == nil {
		res.Variations = []string{}
	}
	return res
}
