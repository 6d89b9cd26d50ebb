// Package repository 定义领域内核与持久化协作方之间的契约
//
// 内核不实现任何仓储或工作单元，只声明接口与版本冲突检测的约定。
package repository

import "context"

// IRepository 仓储标记接口
// 具体仓储按聚合类型声明自己的方法，例如:
//
//	type IArticleRepository interface {
//	    repository.IRepository[*Article]
//	    GetByID(ctx context.Context, id ArticleID) (*Article, error)
//	    Save(ctx context.Context, a *Article) error
//	}
type IRepository[T any] interface {
	repositoryOf(T)
}

// Marker 供具体仓储实现嵌入，以满足 IRepository
type Marker[T any] struct{}

func (Marker[T]) repositoryOf(T) {}

// IUnitOfWork 工作单元接口，表示一次业务事务
// 由基础设施层实现，应用层在组合完聚合后调用
type IUnitOfWork interface {
	// SaveChanges 提交本工作单元中的所有修改
	SaveChanges(ctx context.Context) error
}
