package catalog

// Category 商品分類
type Category string

const (
	CategoryTime      Category = "time"      // 時間類（例如自由時間 10 分鐘）
	CategoryPrivilege Category = "privilege" // 特權類（例如換座位）
)

// ParseCategory 從字串解析商品分類
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryTime, CategoryPrivilege:
		return c, nil
	}
	return "", ErrInvalidCategory.WithContext("category", s)
}
