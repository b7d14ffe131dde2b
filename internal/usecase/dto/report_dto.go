package dto

// SubmitReportRequest - жалоба модерации на область
type SubmitReportRequest struct {
	ReportedAreaID string `json:"reported_area_id"`
	ReportedName   string `json:"reported_name" validate:"required"`
	Reason         string `json:"reason"`
}

// SubmitReportResponse возвращает ID зарегистрированной жалобы
type SubmitReportResponse struct {
	ReportID string `json:"report_id"`
}
