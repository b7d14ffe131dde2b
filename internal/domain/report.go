package domain

import "time"

// DefaultReportReason подставляется вместо пустой причины жалобы
const DefaultReportReason = "기타"

// Report - жалоба модерации на область
type Report struct {
	ReportedAreaID string    `json:"reported_area_id"`
	ReportedName   string    `json:"reported_name"`
	ReportedBy     string    `json:"reported_by"`
	Reason         string    `json:"reason"`
	Timestamp      time.Time `json:"timestamp"`
}

// Fields возвращает представление жалобы для записи в коллекцию reports
func (r *Report) Fields() map[string]interface{} {
	return map[string]interface{}{
		"reportedAreaID": r.ReportedAreaID,
		"reportedName":   r.ReportedName,
		"reportedBy":     r.ReportedBy,
		"reason":         r.Reason,
		"timestamp":      r.Timestamp,
	}
}
