package incomeRepository

const (
	queryCreateIncome = `
		INSERT INTO incomes (id, user_id, source, amount, date, created_at, updated_at)
		VALUES (:id, :user_id, :source, :amount, :date, :created_at, :updated_at)
	`

	queryGetIncomeByID = `
		SELECT id, user_id, source, amount, date, created_at, updated_at
		FROM incomes
		WHERE id = :id
	`

	queryGetIncomesByUserID = `
		SELECT id, user_id, source, amount, date, created_at, updated_at
		FROM incomes
		WHERE user_id = :user_id
		ORDER BY date DESC
	`

	queryGetIncomesByUserIDBetweenDates = `
		SELECT id, user_id, source, amount, date, created_at, updated_at
		FROM incomes
		WHERE user_id = :user_id AND date::date >= :start_date AND date::date <= :end_date
		ORDER BY date DESC
	`

	queryUpdateIncome = `
		UPDATE incomes
		SET source = :source,
		    amount = :amount,
		    date = :date,
		    updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteIncome = `
		DELETE FROM incomes
		WHERE id = :id
	`
)
