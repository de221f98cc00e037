package records

const (
	queryCreateRecord = `
		INSERT INTO records (user_id, level, time)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, level, time, created_at
	`

	queryListByUser = `
		SELECT id, user_id, level, time, created_at
		FROM records
		WHERE user_id = $1
		ORDER BY time DESC
	`
)
