package entity

import "time"

// IAuditable 审计接口（可选能力）
// 时间字段由基础设施层设置和读取，内核不会访问
type IAuditable interface {
	// CreatedAtUTC 创建时间（UTC）
	CreatedAtUTC() time.Time

	// UpdatedAtUTC 最后修改时间（UTC），从未修改时为 nil
	UpdatedAtUTC() *time.Time
}
