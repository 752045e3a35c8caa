package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (id, email, name, password, created_at, updated_at)
		VALUES (:id, :email, :name, :password, :created_at, :updated_at)
	`

	queryGetUserByEmail = `
		SELECT id, email, name, password, created_at, updated_at
		FROM users
		WHERE email = :email
	`

	queryGetUserByID = `
		SELECT id, email, name, password, created_at, updated_at
		FROM users
		WHERE id = :id
	`
)
