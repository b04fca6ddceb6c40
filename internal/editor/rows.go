// Package editor models the admin record forms: multi-row list inputs, the job
// form and the comma-string mapping used by the industry form.
package editor

import (
	"errors"
	"strings"
)

var ErrLastRow = errors.New("a list field keeps at least one row")

// Rows is an ordered list of single-line inputs. It never shrinks below one row.
type Rows struct {
	values []string
}

func NewRows(values ...string) Rows {
	if len(values) == 0 {
		return Rows{values: []string{""}}
	}
	return Rows{values: append([]string(nil), values...)}
}

func (r Rows) Len() int { return len(r.values) }

func (r Rows) Values() []string { return append([]string(nil), r.values...) }

func (r *Rows) Add() {
	r.values = append(r.values, "")
}

func (r Rows) CanRemove() bool { return len(r.values) > 1 }

func (r *Rows) RemoveLast() error {
	if !r.CanRemove() {
		return ErrLastRow
	}
	r.values = r.values[:len(r.values)-1]
	return nil
}

func (r *Rows) Set(i int, v string) bool {
	if i < 0 || i >= len(r.values) {
		return false
	}
	r.values[i] = v
	return true
}

// Clean drops blank rows; what remains is what gets persisted.
func (r Rows) Clean() []string {
	out := make([]string, 0, len(r.values))
	for _, v := range r.values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ToEditString renders a stored list as the single comma-joined input.
func ToEditString(items []string) string {
	return strings.Join(items, ", ")
}

// FromEditString splits the input on commas, trimming and dropping empty items.
func FromEditString(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
