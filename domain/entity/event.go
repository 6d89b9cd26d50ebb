package entity

// IDomainEvent 领域事件接口
// 内核只负责保存和暴露事件，发布与分发由基础设施完成
type IDomainEvent interface {
	// EventType 返回领域事件类型标识
	EventType() string
}
