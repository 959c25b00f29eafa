// Package search maintains a full-text index over the loaded timelines and
// answers /find queries from the panel surface. The index observes session
// events; the state machine itself never consults it.
package search

import (
	"strconv"
	"strings"
)

const defaultLimit = 10

// Query represents the structured parameters of a timeline search. It
// decouples the raw composer input from the index engine requirements.
type Query struct {
	RawInput string
	Terms    string
	RoomID   int // 0 searches every room
	Limit    int
}

// ParseQuery extracts command-line style arguments from a raw string.
// Example: /find invoice --room 12 --limit 5
func ParseQuery(input string) Query {
	query := Query{RawInput: input, Limit: defaultLimit}

	parts := strings.Fields(input)
	var terms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			if n, err := strconv.Atoi(parts[i+1]); err == nil {
				switch key {
				case "room":
					query.RoomID = n
				case "limit":
					query.Limit = n
				}
			}
			i++
			continue
		}

		if !strings.HasPrefix(part, "/") {
			terms = append(terms, part)
		}
	}

	query.Terms = strings.Join(terms, " ")
	return query
}
