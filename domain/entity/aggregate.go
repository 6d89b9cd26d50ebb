package entity

import (
	"fmt"
	"math"
)

// IAggregateRoot 聚合根接口
// 持久化协作方通过它读取版本号做冲突检测，并在提交后读取、清空领域事件
type IAggregateRoot[ID Identifier] interface {
	IEntity[ID]

	// Version 返回乐观锁版本号
	Version() int64

	// DomainEvents 返回未发布的领域事件
	DomainEvents() []IDomainEvent

	// HasDomainEvents 是否有未发布的领域事件
	HasDomainEvents() bool

	// ClearDomainEvents 清空领域事件
	ClearDomainEvents()
}

// AggregateRoot 聚合根基础字段（用于嵌入）
// 在 Entity 之上增加乐观锁版本号，初始为 0，只增不减
//
// 示例:
//
//	type Article struct {
//	    entity.AggregateRoot[ArticleID]
//	    title string
//	}
//
//	func (a *Article) Publish() {
//	    a.Raise(ArticlePublished{ID: a.GetID()})
//	    a.IncrementVersion()
//	}
type AggregateRoot[ID Identifier] struct {
	Entity[ID]
	version int64
}

// NewAggregateRoot 创建聚合根，版本号为 0
func NewAggregateRoot[ID Identifier](kind string, id ID) AggregateRoot[ID] {
	return AggregateRoot[ID]{
		Entity: NewEntity(kind, id),
	}
}

// Version 返回乐观锁版本号
func (a *AggregateRoot[ID]) Version() int64 {
	return a.version
}

// IncrementVersion 版本号加一
// 仅供聚合自身在完成一次状态变更后调用；超过 math.MaxInt64 时 panic，版本号不会回绕
func (a *AggregateRoot[ID]) IncrementVersion() {
	a.mustBeInitialized()
	if a.version == math.MaxInt64 {
		panic(fmt.Sprintf("entity: version overflow on %s %v", a.kind, a.id.RawValue()))
	}
	a.version++
}
