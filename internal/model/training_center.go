package model

// Address 培训中心地址，嵌入 training_centers 表
type Address struct {
	DetailedAddress string `gorm:"type:varchar(255);not null" json:"detailed_address"`
	City            string `gorm:"type:varchar(100);not null" json:"city"`
	State           string `gorm:"type:varchar(100);not null" json:"state"`
	Pincode         string `gorm:"type:varchar(20);not null"  json:"pincode"`
}

// TrainingCenter 培训中心表，对应 training_centers
type TrainingCenter struct {
	ID              int64       `gorm:"primaryKey;autoIncrement"            json:"id"`
	CenterName      string      `gorm:"type:varchar(40);not null"           json:"center_name"`
	CenterCode      string      `gorm:"type:varchar(12);not null;uniqueIndex" json:"center_code"`
	Address         Address     `gorm:"embedded"                            json:"address"`
	StudentCapacity int         `gorm:"not null"                            json:"student_capacity"`
	CoursesOffered  StringArray `gorm:"type:text[]"                         json:"courses_offered"`
	CreatedOn       int64       `gorm:"autoCreateTime:milli;not null"       json:"created_on"` // epoch 毫秒
	ContactEmail    string      `gorm:"type:varchar(255)"                   json:"contact_email,omitempty"`
	ContactPhone    string      `gorm:"type:varchar(10);not null"           json:"contact_phone"`
}

// TableName 指定表名
func (TrainingCenter) TableName() string { return "training_centers" }
