package store

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/sandeepkv93/daybook/internal/model"
)

const (
	KeyTasks   = "tasks"
	KeyCounter = "taskId"
)

// millis decodes from a JSON number or a numeric JSON string.
type millis int64

func (m *millis) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*m = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = millis(parseLeadingInt(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*m = millis(int64(f))
	return nil
}

// parseLeadingInt reads the leading decimal digits of s, 0 when there are none.
func parseLeadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

type taskRecord struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Important   bool   `json:"important"`
	Timestamp   millis `json:"timestamp"`
	Completed   bool   `json:"completed"`
}

func encodeTasks(tasks []model.Task) (string, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Date:        t.Date,
			Important:   t.Important,
			Timestamp:   millis(t.Timestamp),
			Completed:   t.Completed,
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeTasks(raw string) ([]model.Task, error) {
	var records []taskRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(records))
	for _, r := range records {
		out = append(out, model.Task{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Date:        r.Date,
			Timestamp:   int64(r.Timestamp),
			Important:   r.Important,
			Completed:   r.Completed,
		})
	}
	return out, nil
}

func encodeCounter(next int) string {
	return strconv.Itoa(next)
}

func decodeCounter(raw string) (int, bool) {
	v := parseLeadingInt(raw)
	if v <= 0 {
		return 0, false
	}
	return int(v), true
}
