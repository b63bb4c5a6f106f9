package dto

import "strings"

type Filter struct {
	Categories []string
	UserID     string
	Limit      int64
}

// SplitIDs turns a comma separated query value into ids, dropping blanks.
func SplitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ids = append(ids, part)
		}
	}

	return ids
}
