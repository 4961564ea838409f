package models

import "time"

// ReconcileRun is one successful reconciliation recorded in the ledger.
type ReconcileRun struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	RayID        string    `gorm:"column:ray_id;type:varchar(64)" json:"ray_id"`
	Vendor       string    `gorm:"column:vendor;type:varchar(64);index" json:"vendor"`
	OfficialFile string    `gorm:"column:official_file;type:varchar(255)" json:"official_file"`
	FeedFile     string    `gorm:"column:feed_file;type:varchar(255)" json:"feed_file"`
	OfficialRows int       `gorm:"column:official_rows" json:"official_rows"`
	FeedEntries  int       `gorm:"column:feed_entries" json:"feed_entries"`
	VendorRows   int       `gorm:"column:vendor_rows" json:"vendor_rows"`
	Eligible     int       `gorm:"column:eligible" json:"eligible"`
	Updated      int       `gorm:"column:updated" json:"updated"`
	Readmitted   int       `gorm:"column:readmitted" json:"readmitted"`
	Duplicates   int       `gorm:"column:duplicates" json:"duplicates"`
	OutputRows   int       `gorm:"column:output_rows" json:"output_rows"`
	DiffRecords  int       `gorm:"column:diff_records" json:"diff_records"`
	UploadKey    string    `gorm:"column:upload_key;type:varchar(255)" json:"upload_key"`
	DiffKey      string    `gorm:"column:diff_key;type:varchar(255)" json:"diff_key"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (ReconcileRun) TableName() string {
	return "reconcile_runs"
}
