package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ObjectiveKind tags which legacy configuration format an objective was
// parsed from.
type ObjectiveKind string

const (
	ObjectiveStructured    ObjectiveKind = "structured"
	ObjectiveLegacyKeyword ObjectiveKind = "legacy_keyword"
	ObjectiveCustom        ObjectiveKind = "custom_objective"
	ObjectiveDirectID      ObjectiveKind = "direct_id"
)

// Objective is the normalized form of a rule's qualifying action. It is
// parsed once at activation and persisted; the reward job never re-parses
// the source string.
type Objective struct {
	Kind     ObjectiveKind     `json:"kind"`
	ActionID string            `json:"action_id"`
	Keyword  string            `json:"keyword,omitempty"`
	Name     string            `json:"name,omitempty"`
	Params   map[string]string `json:"params,omitempty"`
}

const (
	keywordPrefix = "keyword:"
	customPrefix  = "custom:"
)

// ParseObjective normalizes a raw objective source. Accepted forms:
//
//	{"action_id": "share_post"}     structured
//	keyword:Share                   legacy keyword
//	custom:streak?days=7            custom objective
//	42 or a UUID                    direct objective id
func ParseObjective(raw string) (Objective, error) {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		return Objective{}, fmt.Errorf("%w: empty objective", ErrInvalidRule)
	case strings.HasPrefix(s, "{"):
		return parseStructured(s)
	case strings.HasPrefix(strings.ToLower(s), keywordPrefix):
		kw := strings.ToLower(strings.TrimSpace(s[len(keywordPrefix):]))
		if kw == "" || strings.ContainsAny(kw, " \t") {
			return Objective{}, fmt.Errorf("%w: malformed keyword objective %q", ErrInvalidRule, raw)
		}
		return Objective{Kind: ObjectiveLegacyKeyword, ActionID: kw, Keyword: kw}, nil
	case strings.HasPrefix(strings.ToLower(s), customPrefix):
		return parseCustom(s[len(customPrefix):], raw)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
		return Objective{Kind: ObjectiveDirectID, ActionID: s}, nil
	}
	if id, err := uuid.Parse(s); err == nil {
		return Objective{Kind: ObjectiveDirectID, ActionID: id.String()}, nil
	}
	return Objective{}, fmt.Errorf("%w: unrecognized objective %q", ErrInvalidRule, raw)
}

func parseStructured(s string) (Objective, error) {
	var body struct {
		ActionID string            `json:"action_id"`
		Params   map[string]string `json:"params"`
	}
	if err := json.Unmarshal([]byte(s), &body); err != nil {
		return Objective{}, fmt.Errorf("%w: structured objective: %v", ErrInvalidRule, err)
	}
	id := strings.TrimSpace(body.ActionID)
	if id == "" {
		return Objective{}, fmt.Errorf("%w: structured objective missing action_id", ErrInvalidRule)
	}
	return Objective{Kind: ObjectiveStructured, ActionID: id, Params: body.Params}, nil
}

func parseCustom(rest, raw string) (Objective, error) {
	name, query, _ := strings.Cut(rest, "?")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Objective{}, fmt.Errorf("%w: custom objective missing name in %q", ErrInvalidRule, raw)
	}
	o := Objective{Kind: ObjectiveCustom, ActionID: customPrefix + name, Name: name}
	if query != "" {
		values, err := url.ParseQuery(query)
		if err != nil {
			return Objective{}, fmt.Errorf("%w: custom objective params: %v", ErrInvalidRule, err)
		}
		o.Params = make(map[string]string, len(values))
		for k := range values {
			o.Params[k] = values.Get(k)
		}
	}
	return o, nil
}
