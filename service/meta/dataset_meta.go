/*
 * @module service/meta/dataset_meta
 * @description 清洗数据集相关元数据定义，包括数据类型代码、编码字面值、列集合和行移除原因
 * @architecture 元数据层
 * @documentReference ai_docs/data_cleaning_req.md
 * @stateFlow 静态元数据定义
 * @rules 提供标准化的数据集元数据定义，确保清洗规则的一致性
 * @dependencies 无
 * @refs service/dataset, service/data_cleaning
 */

package meta

// 列数据类型代码
const (
	DataTypeString  = "string"
	DataTypeFloat   = "float"
	DataTypeInt     = "int"
	DataTypeBool    = "bool"
	DataTypeDate    = "date"
	DataTypeEmpty   = "empty"
	DataTypeUnknown = "unknown"
)

// 二值编码字面值
const (
	ValueYes               = "Yes"
	ValueNo                = "No"
	ValueNoInternetService = "No internet service"
	ValueNoPhoneService    = "No phone service"
)

// Telco 流失数据集列名（规范化后）
const (
	ColumnTotalCharges  = "totalcharges"
	ColumnSeniorCitizen = "seniorcitizen"
)

// TelcoYesNoColumns 是/否编码列，Yes→1、No→0、其他记为缺失
var TelcoYesNoColumns = []string{
	"partner",
	"dependents",
	"phoneservice",
	"paperlessbilling",
	"churn",
}

// TelcoServiceColumns 服务状态列，编码前先把"无服务"字面值改写为 No
var TelcoServiceColumns = []string{
	"multiplelines",
	"onlinesecurity",
	"onlinebackup",
	"deviceprotection",
	"techsupport",
	"streamingtv",
	"streamingmovies",
}

// 电商交易数据集列名（规范化后）
const (
	ColumnOrderDate       = "order_date"
	ColumnPrice           = "price"
	ColumnQuantity        = "quantity"
	ColumnTransactionDate = "transaction_date"
	ColumnAge             = "age"
	ColumnPurchaseAmount  = "purchase_amount"
)

// EcommerceCriticalFields 关键字段，存在且缺失即删除整行
var EcommerceCriticalFields = []string{
	ColumnOrderDate,
	ColumnPrice,
}

// 电商数据集有效范围
const (
	AgeMin = 10
	AgeMax = 100
)

// 行移除原因代码
const (
	RemovalReasonInvalidTotalCharges   = "invalid_totalcharges"
	RemovalReasonAllMissing            = "all_missing"
	RemovalReasonMissingCriticalField  = "missing_critical_field"
	RemovalReasonInvalidAge            = "invalid_age"
	RemovalReasonInvalidPurchaseAmount = "invalid_purchase_amount"
)

// RemovalReason 行移除原因定义
type RemovalReason struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RemovalReasons 行移除原因元数据
var RemovalReasons = []RemovalReason{
	{
		Code:        RemovalReasonInvalidTotalCharges,
		Name:        "总费用无效",
		Description: "totalcharges 为空白或无法解析为数值",
	},
	{
		Code:        RemovalReasonAllMissing,
		Name:        "整行缺失",
		Description: "该行所有列均为缺失值",
	},
	{
		Code:        RemovalReasonMissingCriticalField,
		Name:        "关键字段缺失",
		Description: "order_date、price 等关键字段存在缺失值",
	},
	{
		Code:        RemovalReasonInvalidAge,
		Name:        "年龄越界",
		Description: "age 不在 [10,100] 闭区间内或无法解析",
	},
	{
		Code:        RemovalReasonInvalidPurchaseAmount,
		Name:        "金额非正",
		Description: "purchase_amount 小于等于 0 或无法解析",
	},
}

// GetRemovalReason 根据代码获取行移除原因定义
func GetRemovalReason(code string) *RemovalReason {
	for i := range RemovalReasons {
		if RemovalReasons[i].Code == code {
			return &RemovalReasons[i]
		}
	}
	return nil
}
