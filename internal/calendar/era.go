package calendar

// EraInfo describes one era of an era-partitioned calendar.
type EraInfo struct {
	Era        int
	Start      Instant // first instant of the era
	YearOffset int     // Gregorian year = era year + YearOffset
	MinEraYear int
	MaxEraYear int
}

// eraTable maps era-relative years onto Gregorian-numbered years. Rows are
// ordered newest first.
type eraTable struct {
	rows    []EraInfo
	enforce bool
}

func newEraTable(rows []EraInfo, enforce bool) *eraTable {
	return &eraTable{rows: rows, enforce: enforce}
}

func (t *eraTable) currentEra() int { return t.rows[0].Era }

func (t *eraTable) ids() []int {
	ids := make([]int, len(t.rows))
	for i, r := range t.rows {
		ids[i] = r.Era
	}
	return ids
}

// yearRange bounds the current era.
func (t *eraTable) yearRange() (int, int) {
	return t.rows[0].MinEraYear, t.rows[0].MaxEraYear
}

// yearOffset validates year in era and returns the offset converting it to a
// Gregorian year. Unless ranges are enforced, a year past the end of its era
// carries over into the following eras.
func (t *eraTable) yearOffset(year, era int) (int, error) {
	if year < 0 {
		return 0, rangeError("", "year", int64(year))
	}
	if era == CurrentEra {
		era = t.currentEra()
	}
	for i, r := range t.rows {
		if r.Era != era {
			continue
		}
		if year >= r.MinEraYear {
			if year <= r.MaxEraYear {
				return r.YearOffset, nil
			}
			if !t.enforce {
				// Walk forward through the younger eras; each one absorbs its
				// full length of years.
				offset := year - r.MaxEraYear
				for j := i - 1; j >= 0; j-- {
					if offset <= t.rows[j].MaxEraYear {
						return r.YearOffset, nil
					}
					offset -= t.rows[j].MaxEraYear
				}
			}
		}
		return 0, rangeError("", "year", int64(year))
	}
	return 0, eraError(era)
}

func (t *eraTable) gregorianYear(year, era int) (int, error) {
	offset, err := t.yearOffset(year, era)
	if err != nil {
		return 0, err
	}
	return year + offset, nil
}

// at returns the era containing ticks. The first row is current and open-ended.
func (t *eraTable) at(ticks Instant) EraInfo {
	for _, r := range t.rows {
		if ticks >= r.Start {
			return r
		}
	}
	return t.rows[len(t.rows)-1]
}
