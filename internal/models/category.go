package models

// ExpenseCategory is one of the fixed expense categories.
type ExpenseCategory string

const (
	ExpenseFood      ExpenseCategory = "Food"
	ExpenseShopping  ExpenseCategory = "Shopping"
	ExpenseBills     ExpenseCategory = "Bills"
	ExpenseTransport ExpenseCategory = "Transport"
	ExpenseHealth    ExpenseCategory = "Health"
	ExpenseOther     ExpenseCategory = "Other"
)

// ExpenseCategories lists expense categories in chart order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseFood, ExpenseShopping, ExpenseBills, ExpenseTransport, ExpenseHealth, ExpenseOther,
}

// Valid reports whether c is a known expense category.
func (c ExpenseCategory) Valid() bool { return contains(ExpenseCategories, c) }

// BudgetCategory is one of the fixed budget categories.
type BudgetCategory string

const (
	BudgetRent          BudgetCategory = "Rent"
	BudgetUtilities     BudgetCategory = "Utilities"
	BudgetSubscriptions BudgetCategory = "Subscriptions"
	BudgetGroceries     BudgetCategory = "Groceries"
	BudgetTransport     BudgetCategory = "Transport"
	BudgetOther         BudgetCategory = "Other"
)

// BudgetCategories lists budget categories in chart order.
var BudgetCategories = []BudgetCategory{
	BudgetRent, BudgetUtilities, BudgetSubscriptions, BudgetGroceries, BudgetTransport, BudgetOther,
}

// Valid reports whether c is a known budget category.
func (c BudgetCategory) Valid() bool { return contains(BudgetCategories, c) }

// GoalCategory is one of the fixed goal categories.
type GoalCategory string

const (
	GoalSaving    GoalCategory = "Saving"
	GoalBuying    GoalCategory = "Buying"
	GoalTravel    GoalCategory = "Travel"
	GoalEducation GoalCategory = "Education"
	GoalOther     GoalCategory = "Other"
)

// GoalCategories lists goal categories in form order.
var GoalCategories = []GoalCategory{GoalSaving, GoalBuying, GoalTravel, GoalEducation, GoalOther}

// Valid reports whether c is a known goal category.
func (c GoalCategory) Valid() bool { return contains(GoalCategories, c) }

// IncomeSources are the preset income sources. Income may also carry a
// free-text source outside this list.
var IncomeSources = []string{"Salary", "Freelance", "Business", "Other"}

// Names converts an enum universe to plain strings, keeping order.
func Names[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
