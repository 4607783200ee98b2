package common

import (
	"encoding/json"
	"strings"
)

// fieldNameMap maps short field names accepted by --fields onto the result
// record's JSON keys.
var fieldNameMap = map[string]string{
	"fm":       "frontmatter",
	"words":    "paragraphs",
	"read":     "readability",
	"triggers": "ai_trigger_words",
	"ai":       "ai_signals",
	"cite":     "ai_citation_readiness",
}

// FilterResultFields projects a result onto the requested comma-separated
// field list. An empty list returns every field.
func FilterResultFields(result interface{}, fieldsStr string) map[string]interface{} {
	if fieldsStr == "" {
		// No filtering, convert to map and return all fields
		return structToMap(result)
	}

	includeFields := make(map[string]bool)
	for _, field := range strings.Split(fieldsStr, ",") {
		field = strings.TrimSpace(field)
		if full, ok := fieldNameMap[field]; ok {
			field = full
		}
		includeFields[field] = true
	}

	// Keep file identity and error fields regardless so failures stay visible.
	includeFields["file"] = true
	includeFields["error"] = true
	includeFields["error_type"] = true

	fullMap := structToMap(result)

	filtered := make(map[string]interface{})
	for key, value := range fullMap {
		if includeFields[key] {
			filtered[key] = value
		}
	}

	return filtered
}

// structToMap converts a struct to map[string]interface{} using JSON marshaling.
func structToMap(obj interface{}) map[string]interface{} {
	data, _ := json.Marshal(obj)
	var result map[string]interface{}
	_ = json.Unmarshal(data, &result)
	return result
}
