package tabular

import "sort"

type Reducer string

const (
	Count Reducer = "count"
	Sum   Reducer = "sum"
	Mean  Reducer = "mean"
)

// Group is one bucket of a GroupBy, keyed by the display string of the key column.
type Group struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// GroupBy buckets rows by keyColumn and reduces valueColumn. Rows with a null key are
// dropped; Sum and Mean skip non-numeric values. Groups come back in natural key order.
func (t Table) GroupBy(keyColumn, valueColumn string, reduce Reducer) []Group {
	return t.GroupByFunc(keyColumn, func(v any) (string, bool) {
		if v == nil {
			return "", false
		}
		return String(v), true
	}, valueColumn, reduce)
}

// GroupByMonth buckets a date column into "2006-01" keys.
func (t Table) GroupByMonth(dateColumn, valueColumn string, reduce Reducer) []Group {
	return t.GroupByFunc(dateColumn, func(v any) (string, bool) {
		ts, ok := Time(v)
		if !ok {
			return "", false
		}
		return ts.Format("2006-01"), true
	}, valueColumn, reduce)
}

func (t Table) GroupByFunc(keyColumn string, keyOf func(any) (string, bool), valueColumn string, reduce Reducer) []Group {
	kc, ok := t.Column(keyColumn)
	if !ok {
		return nil
	}
	vc, hasValue := t.Column(valueColumn)
	if reduce != Count && !hasValue {
		return nil
	}

	type acc struct {
		sum float64
		n   int
	}
	buckets := make(map[string]*acc)
	keys := make([]string, 0)
	for _, r := range t.Rows {
		k, ok := keyOf(r[kc])
		if !ok {
			continue
		}
		a, seen := buckets[k]
		if !seen {
			a = &acc{}
			buckets[k] = a
			keys = append(keys, k)
		}
		if reduce == Count {
			a.n++
			continue
		}
		if f, ok := Float(r[vc]); ok {
			a.sum += f
			a.n++
		}
	}

	SortNatural(keys)
	out := make([]Group, 0, len(keys))
	for _, k := range keys {
		a := buckets[k]
		var v float64
		switch reduce {
		case Count:
			v = float64(a.n)
		case Sum:
			v = a.sum
		case Mean:
			if a.n > 0 {
				v = a.sum / float64(a.n)
			}
		}
		out = append(out, Group{Key: k, Value: v})
	}
	return out
}

// ByValueDesc orders groups largest first; ties keep key order.
func ByValueDesc(groups []Group) []Group {
	out := append([]Group(nil), groups...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}
