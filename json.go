package splitcookies

import (
	json "github.com/json-iterator/go"
)

type jsonPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MarshalJSON renders the jar as a JSON array of {"name": ..., "value": ...}
// objects. An array instead of an object, as an object would silently
// collapse duplicate names and lose header order.
func (j *Jar) MarshalJSON() ([]byte, error) {
	pairs := make([]jsonPair, 0, len(j.cookies))

	for _, c := range j.cookies {
		pairs = append(pairs, jsonPair{Name: c.Name, Value: c.Value})
	}

	return json.Marshal(pairs)
}
