package dto

// ── 培训中心模块 DTO ──

// AddressDTO 培训中心地址
type AddressDTO struct {
	DetailedAddress string `json:"detailedAddress" yaml:"detailedAddress" validate:"required"`
	City            string `json:"city"            yaml:"city"            validate:"required"`
	State           string `json:"state"           yaml:"state"           validate:"required"`
	Pincode         string `json:"pincode"         yaml:"pincode"         validate:"required"`
}

// TrainingCenterDraft 创建培训中心请求（表单草稿）
//
// 使用 validate 标签而非 binding：gin 绑定只解析 JSON，
// 字段校验统一由 validation.Validate 完成，一次返回全部字段错误。
type TrainingCenterDraft struct {
	CenterName      string     `json:"centerName"             yaml:"centerName"             validate:"required,max=39"`
	CenterCode      string     `json:"centerCode"             yaml:"centerCode"             validate:"required,len=12,alphanum"`
	Address         AddressDTO `json:"address"                yaml:"address"`
	StudentCapacity int        `json:"studentCapacity"        yaml:"studentCapacity"        validate:"min=0"`
	CoursesOffered  []string   `json:"coursesOffered"         yaml:"coursesOffered"`
	ContactEmail    string     `json:"contactEmail,omitempty" yaml:"contactEmail,omitempty" validate:"omitempty,simplemail"`
	ContactPhone    string     `json:"contactPhone"           yaml:"contactPhone"           validate:"required,phone10"`
}

// NewTrainingCenterDraft 返回空白草稿：容量为 0，课程列表保留一个空输入项
func NewTrainingCenterDraft() TrainingCenterDraft {
	return TrainingCenterDraft{CoursesOffered: []string{""}}
}

// TrainingCenterListRequest 培训中心列表查询参数（均可选）
type TrainingCenterListRequest struct {
	City        string `form:"city"        binding:"omitempty,max=100"`
	State       string `form:"state"       binding:"omitempty,max=100"`
	MinCapacity *int   `form:"minCapacity" binding:"omitempty"`
	Course      string `form:"course"      binding:"omitempty,max=100"`
}

// TrainingCenterResponse 培训中心信息响应
type TrainingCenterResponse struct {
	ID              int64      `json:"id"`
	CenterName      string     `json:"centerName"`
	CenterCode      string     `json:"centerCode"`
	Address         AddressDTO `json:"address"`
	StudentCapacity int        `json:"studentCapacity"`
	CoursesOffered  []string   `json:"coursesOffered"`
	CreatedOn       int64      `json:"createdOn"` // epoch 毫秒
	ContactEmail    string     `json:"contactEmail,omitempty"`
	ContactPhone    string     `json:"contactPhone"`
}
