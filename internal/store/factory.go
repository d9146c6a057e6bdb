package store

import (
	"casedesk.app/voicelink/core/db"
)

// Stores is the report store gateway: the only component that reads or writes
// report and case correlation state. Each call reads/writes fresh — no
// in-process caching between requests.
type Stores struct {
	q db.Querier
}

func NewStores(q db.Querier) *Stores {
	return &Stores{q: q}
}

func (s *Stores) Reports() ReportStore {
	return newReportStore(s.q)
}

func (s *Stores) Cases() CaseStore {
	return newCaseStore(s.q)
}
