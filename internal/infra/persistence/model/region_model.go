package model

// RegionModel mirrors the 'regions' table.
type RegionModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Sido     string `gorm:"type:varchar(50)"`
	Sigg     string `gorm:"type:varchar(50)"`
	Emd      string `gorm:"type:varchar(50);not null"`
	FullName string `gorm:"column:full_name;type:varchar(200);index"`
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}
