package utils

import "time"

// Formato de data trocado com o cliente (inputs type=date usam ISO).
const LayoutData = "2006-01-02"

// ParseData converte "AAAA-MM-DD" em *time.Time; vazio vira nil.
func ParseData(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(LayoutData, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func FormatData(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(LayoutData)
}
