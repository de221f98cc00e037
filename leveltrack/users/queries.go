package users

const (
	queryCreateUser = `
		INSERT INTO users (email, name, password_hash, image)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		RETURNING id, email, name, COALESCE(password_hash, ''), COALESCE(image, ''), created_at, updated_at
	`

	queryFindByEmail = `
		SELECT id, email, name, COALESCE(password_hash, ''), COALESCE(image, ''), created_at, updated_at
		FROM users
		WHERE email = $1
	`

	queryFindByID = `
		SELECT id, email, name, COALESCE(password_hash, ''), COALESCE(image, ''), created_at, updated_at
		FROM users
		WHERE id = $1
	`
)
