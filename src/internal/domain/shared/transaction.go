package shared

// TransactionContext 事務上下文介面
//
// 可選事務參與模式（Optional Transaction Participation）：
//   - ctx != nil: 在呼叫者的事務中執行
//   - ctx == nil: auto-commit 模式（僅適用於獨立讀取）
//
// 寫操作一律在 TransactionManager.InTransaction 內執行。
// 帳本寫入（扣點 + 歷史紀錄）與優惠券發放必須共用同一個 ctx，
// 任一步驟失敗時整筆回滾，不會留下沒有優惠券的扣點紀錄。
//
// 範例：
//
//	txManager.InTransaction(func(ctx TransactionContext) error {
//	    balance, err := ledger.Record(ctx, entry)
//	    if err != nil {
//	        return err
//	    }
//	    return coupons.Create(ctx, issued)
//	})
//
// 這是一個標記介面（Marker Interface），具體實作由 Infrastructure Layer 提供。
type TransactionContext interface {
	// 標記介面：僅用於傳遞上下文，不暴露方法
}

// TransactionManager 事務管理器介面
//
// fn 回傳 error 或 panic 時回滾；否則提交。
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
