package expenseRepository

const (
	queryCreateExpense = `
		INSERT INTO expenses (id, user_id, description, amount, date, category, receipt_link, created_at, updated_at)
		VALUES (:id, :user_id, :description, :amount, :date, :category, :receipt_link, :created_at, :updated_at)
	`

	queryGetExpenseByID = `
		SELECT id, user_id, description, amount, date, category, receipt_link, created_at, updated_at
		FROM expenses
		WHERE id = :id
	`

	queryUpdateExpense = `
		UPDATE expenses
		SET description = :description,
		    amount = :amount,
		    date = :date,
		    category = :category,
		    receipt_link = :receipt_link,
		    updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteExpense = `
		DELETE FROM expenses
		WHERE id = :id
	`
)

// Listing queries. Each combination of category, start date and end date is a
// distinct query so the shape of the filter is visible at the call site.
const (
	queryGetExpensesByUserID = `
		SELECT id, user_id, description, amount, date, category, receipt_link, created_at, updated_at
		FROM expenses
		WHERE user_id = :user_id
		ORDER BY date DESC
	`

	queryGetExpensesByUserIDAndCategory = `
		SELECT id, user_id, description, amount, date, category, receipt_link, created_at, updated_at
		FROM expenses
		WHERE user_id = :user_id AND category = :category
		ORDER BY date DESC
	`

	queryGetExpensesByUserIDFromDate = `
		SELECT id, user_id, description, amount, date, category, receipt_link, created_at, updated_at
		FROM expenses
		WHERE user_id = :user_id AND date::date >= :start_date
		ORDER BY date DESC
	`

	queryGetExpensesByUserIDUntilDate = `
		SELECT id, user_id, description, amount, date, category, receipt_link, created_at, updated_at
		FROM expenses
		WHERE user_id = :user_id AND date::date <= :end_date
		ORDER BY date DESC
	`

	queryGetExpensesByUserIDBetweenDates = `
		SELECT id, user_id, description, amount, date, category, receipt_link, created_at, updated_at
		FROM expenses
		WHERE user_id = :user_id AND date::date >= :start_date AND date::date <= :end_date
		ORDER BY date DESC
	`

	queryGetExpensesByUserIDAndCategoryFromDate = `
		SELECT id, user_id, description, amount, date, category, receipt_link, created_at, updated_at
		FROM expenses
		WHERE user_id = :user_id AND category = :category AND date::date >= :start_date
		ORDER BY date DESC
	`

	queryGetExpensesByUserIDAndCategoryUntilDate = `
		SELECT id, user_id, description, amount, date, category, receipt_link, created_at, updated_at
		FROM expenses
		WHERE user_id = :user_id AND category = :category AND date::date <= :end_date
		ORDER BY date DESC
	`

	queryGetExpensesByUserIDAndCategoryBetweenDates = `
		SELECT id, user_id, description, amount, date, category, receipt_link, created_at, updated_at
		FROM expenses
		WHERE user_id = :user_id AND category = :category AND date::date >= :start_date AND date::date <= :end_date
		ORDER BY date DESC
	`
)
