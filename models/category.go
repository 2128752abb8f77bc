package models

// Category 交易类别（固定注册表，不入库）
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryOtherID 兜底类别
const CategoryOtherID = "other"

// NeutralColor 未知类别使用的中性灰色
const NeutralColor = "#6b7280"

// 预置类别，顺序即前端下拉框顺序，other 必须在最后
var categories = []Category{
	{ID: "groceries", Name: "Groceries", Color: "#4f46e5"},
	{ID: "dining", Name: "Dining Out", Color: "#ef4444"},
	{ID: "utilities", Name: "Utilities", Color: "#10b981"},
	{ID: "transportation", Name: "Transportation", Color: "#f59e0b"},
	{ID: "entertainment", Name: "Entertainment", Color: "#8b5cf6"},
	{ID: "shopping", Name: "Shopping", Color: "#ec4899"},
	{ID: "healthcare", Name: "Healthcare", Color: "#06b6d4"},
	{ID: "housing", Name: "Housing", Color: "#f97316"},
	{ID: "education", Name: "Education", Color: "#14b8a6"},
	{ID: CategoryOtherID, Name: "Other", Color: NeutralColor},
}

// GetCategories 获取所有类别（返回副本）
func GetCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsKnownCategory 类别是否在注册表中
func IsKnownCategory(id string) bool {
	_, ok := findCategory(id)
	return ok
}

// LookupCategory 按 ID 查找类别，未知 ID 返回 other 类别
func LookupCategory(id string) Category {
	if c, ok := findCategory(id); ok {
		return c
	}
	return categories[len(categories)-1]
}

// ResolveCategory 按 ID 查找类别，未知 ID 以原始 ID 作为名称并使用中性色
func ResolveCategory(id string) Category {
	if c, ok := findCategory(id); ok {
		return c
	}
	return Category{ID: id, Name: id, Color: NeutralColor}
}

// NormalizeCategory 空类别视为 other
func NormalizeCategory(id string) string {
	if id == "" {
		return CategoryOtherID
	}
	return id
}

func findCategory(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
