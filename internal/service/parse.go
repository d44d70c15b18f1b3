package service

import (
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	json "github.com/goccy/go-json"
	hjson "github.com/hjson/hjson-go/v4"
)

// smartParse decodes model output into v, trying strict JSON, then repaired
// JSON, then Hjson.
func smartParse(input string, v interface{}) error {
	input = stripCodeFence(input)

	if err := json.Unmarshal([]byte(input), v); err == nil {
		return nil
	}

	if repaired, err := jsonrepair.RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), v); err == nil {
			return nil
		}
	}

	var loose interface{}
	if err := hjson.Unmarshal([]byte(input), &loose); err == nil {
		if raw, err := json.Marshal(loose); err == nil {
			if err := json.Unmarshal(raw, v); err == nil {
				return nil
			}
		}
	}

	return fmt.Errorf("insight: failed to parse model output %q", truncate(input, 80))
}

// stripCodeFence removes a surrounding ``` or ```json fence
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
