package models

// PDFExportEvent describes one export attempt. It is tracked whether or not
// the export succeeded.
type PDFExportEvent struct {
	FileName          string  `json:"file_name"`
	FileSizeBytes     int     `json:"file_size_bytes"`
	PageCount         int     `json:"page_count"`
	PlanKey           PlanKey `json:"plan_key"`
	DownloadCompleted bool    `json:"download_completed"`
	ErrorMessage      *string `json:"error_message"`
}
