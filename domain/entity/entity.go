// Package entity 定义领域模型的基础构件
//
// 设计原则：
// 1. 组合优于继承 - AggregateRoot 嵌入 Entity，OwnedAggregateRoot 嵌入 AggregateRoot
// 2. 泛型标识符 - 每种实体使用自己的标识符类型，跨类型比较在编译期被拒绝
// 3. 显式的类型标签 - 相等性同时比较类型标签与标识符，不同种类的实体永不相等
//
// 本包不做任何并发保护：同一个实例同一时刻只应由一个操作修改。
package entity

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/cmssantos/buildingblocks-domain/internal/reflectx"
)

// IEntity 实体接口
// 只有嵌入了 Entity 的类型才能实现该接口
type IEntity[ID Identifier] interface {
	// GetID 返回实体标识
	GetID() ID

	// Kind 返回实体类型标签
	Kind() string

	// Equals 基于类型标签与标识的相等性
	Equals(other IEntity[ID]) bool

	// HashCode 仅由标识派生，生命周期内保持稳定
	HashCode() uint64

	core() *Entity[ID]
}

// Entity 实体基础字段（用于嵌入）
//
// 示例:
//
//	type Category struct {
//	    entity.Entity[CategoryID]
//	    Name string
//	}
//
//	func NewCategory(id CategoryID, name string) *Category {
//	    return &Category{Entity: entity.NewEntity("category", id), Name: name}
//	}
type Entity[ID Identifier] struct {
	id           ID
	kind         string
	domainEvents []IDomainEvent
}

// NewEntity 创建实体
// kind 为空或 id 为零值时 panic：标识必须在实体被使用前确定
func NewEntity[ID Identifier](kind string, id ID) Entity[ID] {
	if kind == "" {
		panic("entity: kind must not be empty")
	}
	var zero ID
	if id == zero {
		panic(fmt.Sprintf("entity: %s created with zero identifier", kind))
	}
	return Entity[ID]{
		id:   id,
		kind: kind,
	}
}

// GetID 返回实体标识
func (e *Entity[ID]) GetID() ID {
	e.mustBeInitialized()
	return e.id
}

// Kind 返回实体类型标签
func (e *Entity[ID]) Kind() string {
	e.mustBeInitialized()
	return e.kind
}

// Raise 追加领域事件到事件日志末尾
// 仅供实体自身的业务方法调用；不去重，按插入顺序保存
func (e *Entity[ID]) Raise(evt IDomainEvent) {
	e.mustBeInitialized()
	e.domainEvents = append(e.domainEvents, evt)
}

// DomainEvents 返回当前事件日志的只读副本
func (e *Entity[ID]) DomainEvents() []IDomainEvent {
	events := make([]IDomainEvent, len(e.domainEvents))
	copy(events, e.domainEvents)
	return events
}

// HasDomainEvents 是否有待处理的领域事件
func (e *Entity[ID]) HasDomainEvents() bool {
	return len(e.domainEvents) > 0
}

// ClearDomainEvents 清空事件日志，之后 Raise 的事件组成新的序列
func (e *Entity[ID]) ClearDomainEvents() {
	e.domainEvents = nil
}

// Equals 实现 IEntity 接口
func (e *Entity[ID]) Equals(other IEntity[ID]) bool {
	e.mustBeInitialized()
	if reflectx.IsNil(other) {
		return false
	}

	o := other.core()
	if o == e {
		return true
	}
	if o.kind != e.kind {
		return false
	}
	return o.id == e.id
}

// HashCode 实现 IEntity 接口
func (e *Entity[ID]) HashCode() uint64 {
	e.mustBeInitialized()
	return xxhash.Sum64String(fmt.Sprint(e.id.RawValue()))
}

func (e *Entity[ID]) core() *Entity[ID] {
	return e
}

func (e *Entity[ID]) mustBeInitialized() {
	if e.kind == "" {
		panic("entity: used before construction, create it with NewEntity")
	}
}
