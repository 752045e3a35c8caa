package budgetRepository

const (
	queryCreateBudget = `
		INSERT INTO budgets (
			id,
			user_id,
			category,
			limit_amount,
			month_year,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:category,
			:limit_amount,
			:month_year,
			:created_at,
			:updated_at
		)
	`

	queryGetBudgetsByUserID = `
		SELECT
			id,
			user_id,
			category,
			limit_amount,
			month_year,
			created_at,
			updated_at
		FROM budgets
		WHERE user_id = :user_id
		ORDER BY month_year DESC, category ASC
	`

	queryGetBudgetsByUserIDAndMonth = `
		SELECT
			id,
			user_id,
			category,
			limit_amount,
			month_year,
			created_at,
			updated_at
		FROM budgets
		WHERE
			user_id = :user_id
			AND month_year = :month_year
		ORDER BY category ASC
	`

	queryGetBudgetByCategoryAndMonth = `
		SELECT
			id,
			user_id,
			category,
			limit_amount,
			month_year,
			created_at,
			updated_at
		FROM budgets
		WHERE
			user_id = :user_id
			AND category = :category
			AND month_year = :month_year
	`

	queryGetBudgetByID = `
		SELECT
			id,
			user_id,
			category,
			limit_amount,
			month_year,
			created_at,
			updated_at
		FROM budgets
		WHERE id = :id
	`

	queryUpdateBudget = `
		UPDATE budgets
		SET
			category = :category,
			limit_amount = :limit_amount,
			month_year = :month_year,
			updated_at = :updated_at
		WHERE id = :id
	`
)
