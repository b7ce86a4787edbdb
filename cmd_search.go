package main

import "strings"

// searchOnce moves the cursor to the next row whose name contains the
// query, wrapping once past the end.
func (m *model) searchOnce(query string) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(m.data.rows) == 0 {
		return
	}

	n := len(m.data.rows)
	for i := 1; i <= n; i++ {
		idx := (m.cursor + i) % n
		if strings.Contains(strings.ToLower(m.data.rows[idx].Name), q) {
			m.cursor = idx
			return
		}
	}
}
