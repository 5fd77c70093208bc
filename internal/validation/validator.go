// Package validation 培训中心草稿的字段级校验。
//
// 客户端提交前与服务端创建时共用同一套规则：规则写在 dto.TrainingCenterDraft
// 的 validate 标签上，所有规则都会执行，返回值覆盖全部违规字段。
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"traini8/internal/dto"
)

// 错误映射中的字段键，与请求 JSON 字段名一致（地址字段不带 address 前缀）
const (
	FieldCenterName      = "centerName"
	FieldCenterCode      = "centerCode"
	FieldDetailedAddress = "detailedAddress"
	FieldCity            = "city"
	FieldState           = "state"
	FieldPincode         = "pincode"
	FieldStudentCapacity = "studentCapacity"
	FieldContactEmail    = "contactEmail"
	FieldContactPhone    = "contactPhone"
)

// MaxCenterNameLength 中心名称长度上限（不含）
const MaxCenterNameLength = 40

// 自定义标签
const (
	tagPhone10    = "phone10"
	tagSimpleMail = "simplemail"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	// 空白按 Unicode 空格分隔符计算（含 NBSP、U+2028、BOM）
	emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
)

type ruleKey struct {
	field string
	tag   string
}

// messages (字段, 标签) → 错误信息
var messages = map[ruleKey]string{
	{FieldCenterName, "required"}:      "Center name is required",
	{FieldCenterName, "max"}:           "Center name must be less than 40 characters",
	{FieldCenterCode, "required"}:      "Center code is required",
	{FieldCenterCode, "len"}:           "Center code must be exactly 12 alphanumeric characters",
	{FieldCenterCode, "alphanum"}:      "Center code must be exactly 12 alphanumeric characters",
	{FieldDetailedAddress, "required"}: "Detailed address is required",
	{FieldCity, "required"}:            "City is required",
	{FieldState, "required"}:           "State is required",
	{FieldPincode, "required"}:         "Pincode is required",
	{FieldStudentCapacity, "min"}:      "Student capacity must be non-negative",
	{FieldContactPhone, "required"}:    "Contact phone is required",
	{FieldContactPhone, tagPhone10}:    "Invalid phone number (must be 10 digits)",
	{FieldContactEmail, tagSimpleMail}: "Invalid email format",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// 错误中的字段名取 JSON 名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(tagPhone10, func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation(tagSimpleMail, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// Errors 字段键 → 错误信息
type Errors map[string]string

// Valid 没有任何字段错误时返回 true
func (e Errors) Valid() bool { return len(e) == 0 }

// Fields 按字母序返回出错字段，便于稳定输出
func (e Errors) Fields() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate 校验草稿，返回全部违规字段；从不返回 nil
func Validate(d *dto.TrainingCenterDraft) Errors {
	errs := make(Errors)

	err := validate.Struct(d)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// 仅在传入 nil 等非法参数时出现
		errs[FieldCenterName] = "Invalid training center data"
		return errs
	}

	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		msg, ok := messages[ruleKey{field, fe.Tag()}]
		if !ok {
			msg = "Invalid value"
		}
		errs[field] = msg
	}
	return errs
}
