package catalog

// ItemSnapshot 購買當下的商品快照（值對象）
//
// 優惠券保存快照而非商品參照，之後修改或下架商品不影響已發放的優惠券。
type ItemSnapshot struct {
	itemID   ItemID
	title    string
	category Category
	price    int
}

// NewItemSnapshot 建立快照（用於從資料庫重建優惠券）
func NewItemSnapshot(itemID ItemID, title string, category Category, price int) ItemSnapshot {
	return ItemSnapshot{itemID: itemID, title: title, category: category, price: price}
}

// ItemID 返回商品 ID
func (s ItemSnapshot) ItemID() ItemID { return s.itemID }

// Title 返回購買時的商品名稱
func (s ItemSnapshot) Title() string { return s.title }

// Category 返回購買時的分類
func (s ItemSnapshot) Category() Category { return s.category }

// Price 返回購買時的價格
func (s ItemSnapshot) Price() int { return s.price }
