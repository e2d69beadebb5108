package models

// AppSettings is the singleton platform configuration row
// (app_settings, id = 1).
type AppSettings struct {
	ID                int    `db:"id" json:"id"`
	MaintenanceMode   bool   `db:"maintenance_mode" json:"maintenance_mode"`
	MinVersionIOS     string `db:"min_version_ios" json:"min_version_ios"`
	MinVersionAndroid string `db:"min_version_android" json:"min_version_android"`
	SupportPhone      string `db:"support_phone" json:"support_phone"`
}
