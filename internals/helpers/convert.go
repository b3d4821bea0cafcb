package helper

import (
	"strconv"
	"strings"
	"time"

	"coachingku_backend/internals/tabular"
)

// ParseID membaca id numerik dari form/JSON; invalid → 0 (tidak ada baris yang cocok)
func ParseID(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

// DateArg memvalidasi "yyyy-mm-dd" dan mengirimnya apa adanya (string), jadi zona
// waktu driver tidak bisa menggeser tanggal; kosong/invalid → NULL
func DateArg(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(tabular.DateLayout, s)
	if err != nil {
		return nil
	}
	return t.Format(tabular.DateLayout)
}

// AmountArg membaca angka dari form; invalid → 0
func AmountArg(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

// FlexString menerima "7" maupun 7 dari JSON, jadi id/angka bisa dikirim dua-duanya.
// Form HTML selalu string, jadi perilakunya sama.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		*f = FlexString(unq)
		return nil
	}
	*f = FlexString(s)
	return nil
}

func (f *FlexString) UnmarshalText(b []byte) error {
	*f = FlexString(b)
	return nil
}

func (f FlexString) String() string { return strings.TrimSpace(string(f)) }
