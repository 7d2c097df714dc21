package shared

import "time"

// DomainEvent 領域事件基礎介面
type DomainEvent interface {
	EventID() string       // 事件唯一標識
	EventType() string     // 事件類型
	OccurredAt() time.Time // 發生時間
	AggregateID() string   // 聚合根 ID
}

// EventPublisher 事件發布器介面
// 設計原則：介面定義在 Domain Layer（使用者），由 Infrastructure 實作
//
// Use Case 只在事務提交之後發布事件，回滾的操作不會有事件。
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishBatch(events []DomainEvent) error
}

// EventRecorder 聚合根事件暫存（嵌入使用）
//
// 聚合根在命令方法中 record 事件，Use Case 提交後呼叫 PullEvents 取出。
type EventRecorder struct {
	events []DomainEvent
}

// Record 暫存一個事件
func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// PullEvents 取出所有待發布事件並清空
func (r *EventRecorder) PullEvents() []DomainEvent {
	events := r.events
	r.events = nil
	return events
}
