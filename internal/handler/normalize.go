package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/service"
)

// normalizeInput rewrites a JSON object body before it is bound. Optional
// relation fields treat "" exactly like null and accept numeric strings.
// Media fields that echo back one of our own media URLs are reduced to the
// stored relative path. Bodies that are not JSON objects pass through
// untouched so binding can report them.
func normalizeInput(body []byte, relations []service.Relation, media []string, mediaPrefix string) ([]byte, error) {
	if len(relations) == 0 && len(media) == 0 {
		return body, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return body, nil
	}

	changed := false
	for _, rel := range relations {
		raw, ok := fields[rel.Field]
		if !ok {
			continue
		}
		s, isString := raw.(string)
		if !isString {
			continue
		}
		s = strings.TrimSpace(s)
		switch {
		case s == "" || strings.EqualFold(s, "null"):
			fields[rel.Field] = nil
		default:
			if _, err := strconv.ParseUint(s, 10, 32); err == nil {
				fields[rel.Field] = json.Number(s)
			}
		}
		changed = true
	}

	marker := strings.TrimRight(mediaPrefix, "/") + "/"
	for _, name := range media {
		s, ok := fields[name].(string)
		if !ok || marker == "/" {
			continue
		}
		if idx := strings.Index(s, marker); idx >= 0 && (idx == 0 || strings.Contains(s[:idx], "://")) {
			fields[name] = s[idx+len(marker):]
			changed = true
		}
	}

	if !changed {
		return body, nil
	}
	return json.Marshal(fields)
}
