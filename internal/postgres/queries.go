package postgres

const (
	queryCreateMigrationsTable = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	queryMigrationApplied = `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	queryRecordMigration  = `INSERT INTO schema_migrations (version) VALUES ($1)`
)

// общий список колонок комнаты; посетители собираются подзапросом.
const roomColumns = `
	r.id, r.name, r.owner_id, r.center_lat, r.center_lng, r.radius, r.created_at,
	ARRAY(
		SELECT v.user_id FROM room_visitors v
		WHERE v.room_id = r.id
		ORDER BY v.first_seen_at, v.user_id
	)`

const (
	queryCreateRoom = `
		INSERT INTO rooms (id, name, owner_id, center_lat, center_lng, radius, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	queryGetRoom   = `SELECT ` + roomColumns + ` FROM rooms r WHERE r.id = $1`
	queryLockRoom  = `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`
	queryListRooms = `
		SELECT ` + roomColumns + `
		FROM rooms r
		WHERE ($1::timestamptz IS NULL OR r.created_at < $1
		       OR (r.created_at = $1 AND r.id < $2))
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $3`
	queryListRoomsByOwner = `
		SELECT ` + roomColumns + `
		FROM rooms r
		WHERE r.owner_id = $1
		ORDER BY r.created_at DESC, r.id DESC`
	queryRoomsWithin = `
		SELECT ` + roomColumns + `
		FROM rooms r
		WHERE r.center_lat BETWEEN $1 AND $2
		  AND r.center_lng BETWEEN $3 AND $4
		ORDER BY r.created_at DESC, r.id DESC`
	queryAllRooms   = `SELECT ` + roomColumns + ` FROM rooms r ORDER BY r.created_at DESC, r.id DESC`
	queryAddVisitor = `
		INSERT INTO room_visitors (room_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
)

const (
	queryGetAccess = `
		SELECT user_id, room_id, first_access_at
		FROM room_access
		WHERE user_id = $1 AND room_id = $2`
	queryInsertAccessIfAbsent = `
		INSERT INTO room_access (user_id, room_id, first_access_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, room_id) DO NOTHING
		RETURNING user_id, room_id, first_access_at`
)

const (
	queryAppendMessage = `
		INSERT INTO room_messages (id, room_id, sender_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	queryListMessages = `
		SELECT id, room_id, sender_id, body, created_at
		FROM room_messages
		WHERE room_id = $1
		  AND (
		    $2::timestamptz IS NULL
		    OR created_at < $2
		    OR (created_at = $2 AND id < $3)
		  )
		ORDER BY created_at DESC, id DESC
		LIMIT $4`
	queryCountMessages = `SELECT COUNT(*) FROM room_messages WHERE room_id = $1`
)
