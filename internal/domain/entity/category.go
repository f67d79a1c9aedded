// Package entity defines the core business entities for the domain layer.
package entity

// CategoryType represents the budgeting group a category belongs to.
type CategoryType string

const (
	CategoryTypeNeeds     CategoryType = "needs"
	CategoryTypeLifestyle CategoryType = "lifestyle"
	CategoryTypeSavings   CategoryType = "savings"
	CategoryTypeDebt      CategoryType = "debt"
)

// SubCategory is a named refinement of a category.
type SubCategory struct {
	ID   string
	Name string
	Icon string
}

// Category is static reference data joined against Expense.CategoryID.
// The catalog is immutable at runtime and not user-editable.
type Category struct {
	ID            string
	Name          string
	Type          CategoryType
	Icon          string
	SubCategories []SubCategory
}

// categories is the fixed expense category catalog.
var categories = []Category{
	{
		ID: "food", Name: "Food", Type: CategoryTypeNeeds, Icon: "🍽️",
		SubCategories: []SubCategory{
			{ID: "daily-food", Name: "Daily meals", Icon: "🍜"},
			{ID: "groceries", Name: "Groceries", Icon: "🥬"},
		},
	},
	{
		ID: "housing", Name: "Housing", Type: CategoryTypeNeeds, Icon: "🏠",
		SubCategories: []SubCategory{
			{ID: "rent", Name: "Rent", Icon: "🏢"},
			{ID: "mortgage", Name: "Mortgage", Icon: "🏡"},
			{ID: "common-fee", Name: "Common fees", Icon: "🏗️"},
		},
	},
	{
		ID: "utilities", Name: "Utilities", Type: CategoryTypeNeeds, Icon: "💡",
		SubCategories: []SubCategory{
			{ID: "water", Name: "Water", Icon: "💧"},
			{ID: "electricity", Name: "Electricity", Icon: "⚡"},
			{ID: "internet", Name: "Internet", Icon: "📶"},
			{ID: "phone", Name: "Phone", Icon: "📱"},
		},
	},
	{
		ID: "transport", Name: "Transport", Type: CategoryTypeNeeds, Icon: "🚗",
		SubCategories: []SubCategory{
			{ID: "fuel", Name: "Fuel", Icon: "⛽"},
		},
	},
	{
		ID: "health", Name: "Health & Personal", Type: CategoryTypeNeeds, Icon: "💊",
		SubCategories: []SubCategory{
			{ID: "personal-items", Name: "Personal items", Icon: "🧴"},
			{ID: "medical", Name: "Medical & medicine", Icon: "🏥"},
		},
	},
	{
		ID: "debt-payment", Name: "Debt Payments", Type: CategoryTypeDebt, Icon: "💳",
		SubCategories: []SubCategory{
			{ID: "car-loan", Name: "Car loan", Icon: "🚙"},
			{ID: "credit-card", Name: "Credit card", Icon: "💳"},
			{ID: "home-loan", Name: "Home loan", Icon: "🏠"},
		},
	},
	{
		ID: "pets", Name: "Pets", Type: CategoryTypeNeeds, Icon: "🐾",
		SubCategories: []SubCategory{
			{ID: "cat-litter", Name: "Cat litter", Icon: "🐱"},
			{ID: "dog-food", Name: "Dog food", Icon: "🐕"},
			{ID: "cat-food", Name: "Cat food", Icon: "🐈"},
			{ID: "dog-vet", Name: "Dog vet", Icon: "🩺"},
			{ID: "cat-vet", Name: "Cat vet", Icon: "💉"},
			{ID: "pet-toys", Name: "Toys & treats", Icon: "🧸"},
		},
	},
	{
		ID: "entertainment", Name: "Entertainment", Type: CategoryTypeLifestyle, Icon: "🎮",
		SubCategories: []SubCategory{
			{ID: "games", Name: "Games", Icon: "🕹️"},
			{ID: "movies", Name: "Movies", Icon: "🎬"},
			{ID: "streaming", Name: "Streaming", Icon: "📺"},
		},
	},
	{
		ID: "subscriptions", Name: "Subscriptions", Type: CategoryTypeLifestyle, Icon: "📺",
		SubCategories: []SubCategory{
			{ID: "netflix", Name: "Netflix", Icon: "🎬"},
			{ID: "youtube", Name: "YouTube Premium", Icon: "▶️"},
			{ID: "disney", Name: "Disney+", Icon: "🏰"},
			{ID: "chatgpt", Name: "ChatGPT", Icon: "🤖"},
			{ID: "icloud", Name: "iCloud", Icon: "☁️"},
		},
	},
	{
		ID: "shopping", Name: "Shopping", Type: CategoryTypeLifestyle, Icon: "🛍️",
		SubCategories: []SubCategory{
			{ID: "clothes", Name: "Clothes", Icon: "👗"},
			{ID: "travel", Name: "Travel", Icon: "✈️"},
			{ID: "misc", Name: "Miscellaneous", Icon: "📦"},
		},
	},
	{
		ID: "self-development", Name: "Self Development", Type: CategoryTypeLifestyle, Icon: "📚",
		SubCategories: []SubCategory{
			{ID: "books", Name: "Books", Icon: "📖"},
			{ID: "courses", Name: "Courses", Icon: "🎓"},
		},
	},
	{
		ID: "emergency-fund", Name: "Emergency Fund", Type: CategoryTypeSavings, Icon: "🏦",
	},
	{
		ID: "investment", Name: "Investment", Type: CategoryTypeSavings, Icon: "📈",
		SubCategories: []SubCategory{
			{ID: "stocks", Name: "Stocks", Icon: "📊"},
			{ID: "funds", Name: "Funds", Icon: "💹"},
		},
	},
}

// Categories returns the full category catalog in display order.
func Categories() []Category {
	return categories
}

// CategoryByID looks up a catalog category by its identifier.
func CategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// SubCategoryOf looks up a subcategory within the given category.
func SubCategoryOf(categoryID, subCategoryID string) (SubCategory, bool) {
	c, ok := CategoryByID(categoryID)
	if !ok {
		return SubCategory{}, false
	}
	for _, s := range c.SubCategories {
		if s.ID == subCategoryID {
			return s, true
		}
	}
	return SubCategory{}, false
}
