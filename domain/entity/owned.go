package entity

import "fmt"

// IOwnedAggregateRoot 带所有者引用的聚合根接口
type IOwnedAggregateRoot[ID, OwnerID Identifier] interface {
	IAggregateRoot[ID]

	// OwnerID 返回所有者标识
	OwnerID() OwnerID
}

// OwnedAggregateRoot 持有所有者标识的聚合根（用于嵌入）
// 只保存所有者的标识，不持有、不加载所有者对象，也没有级联语义；
// 典型用途是按租户或上级聚合做隔离
type OwnedAggregateRoot[ID, OwnerID Identifier] struct {
	AggregateRoot[ID]
	ownerID OwnerID
}

// NewOwnedAggregateRoot 创建带所有者的聚合根
// ownerID 为零值时 panic
func NewOwnedAggregateRoot[ID, OwnerID Identifier](kind string, id ID, ownerID OwnerID) OwnedAggregateRoot[ID, OwnerID] {
	var zero OwnerID
	if ownerID == zero {
		panic(fmt.Sprintf("entity: %s created with zero owner identifier", kind))
	}
	return OwnedAggregateRoot[ID, OwnerID]{
		AggregateRoot: NewAggregateRoot(kind, id),
		ownerID:       ownerID,
	}
}

// OwnerID 返回所有者标识
func (a *OwnedAggregateRoot[ID, OwnerID]) OwnerID() OwnerID {
	a.mustBeInitialized()
	return a.ownerID
}
