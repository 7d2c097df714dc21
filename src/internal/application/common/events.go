package common

import "github.com/jackyeh168/classpoints/src/internal/domain/shared"

// PublishEvents 在事務提交後發布事件
//
// 事務已提交，發布失敗不影響操作結果；publisher 負責記錄失敗。
func PublishEvents(publisher shared.EventPublisher, events ...shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	_ = publisher.PublishBatch(events)
}
