package changelog

import "sort"

// Sort orders the aggregated records chronologically, establishing the
// total replay order. The sort is stable and ties on timestamp are broken
// by page id, so output is reproducible regardless of how the records
// were gathered.
func Sort(records []ChangeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Timestamp != records[j].Timestamp {
			return records[i].Timestamp < records[j].Timestamp
		}
		return records[i].PageID < records[j].PageID
	})
}
