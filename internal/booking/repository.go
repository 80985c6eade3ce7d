package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts the booking unless it would overlap an existing one for
	// the same room and date. The overlap check runs inside the insert
	// statement, so it is authoritative even when two writers race.
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// ListForRoomRange returns all bookings of a room with date in [from, to].
	ListForRoomRange(ctx context.Context, roomID string, from, to time.Time) ([]*Booking, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = `
	b.id, b.user_id, u.first_name, u.last_name, u.sector,
	b.room_id, r.name, b.date, b.start_hour, b.duration, b.created_at`

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	// Guarded insert: the row is only written when no existing booking for
	// the room and date intersects [start_hour, start_hour+duration). The
	// unique index on (room_id, date, start_hour) backstops exact-start
	// duplicates that race past the NOT EXISTS read.
	const query = `
		INSERT INTO public.bookings (user_id, room_id, date, start_hour, duration)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM public.bookings
			WHERE room_id = $2
			  AND date = $3
			  AND start_hour < $4 + $5
			  AND start_hour + duration > $4
		)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, b.UserID, b.RoomID, b.Date, b.StartHour, b.Duration).
		Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The guard rejected the insert: another booking holds the slot.
			return ErrSlotTaken
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const query = `
		SELECT` + bookingColumns + `
		FROM public.bookings b
		JOIN public.users u ON b.user_id = u.id
		JOIN public.rooms r ON b.room_id = r.id
		WHERE b.id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.UserID, &b.UserFirstName, &b.UserLastName, &b.UserSector,
		&b.RoomID, &b.RoomName, &b.Date, &b.StartHour, &b.Duration, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.user_id", "u.first_name", "u.last_name", "u.sector",
		"b.room_id", "r.name", "b.date", "b.start_hour", "b.duration", "b.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.rooms r ON b.room_id = r.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"b.room_id": filter.RoomID})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.date": filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.date": filter.DateTo})
	}

	orderBy := "b.date"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}
	orderDir := "ASC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy+" "+orderDir, "b.start_hour ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserFirstName, &b.UserLastName, &b.UserSector,
			&b.RoomID, &b.RoomName, &b.Date, &b.StartHour, &b.Duration, &b.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForRoomRange(ctx context.Context, roomID string, from, to time.Time) ([]*Booking, error) {
	const query = `
		SELECT` + bookingColumns + `
		FROM public.bookings b
		JOIN public.users u ON b.user_id = u.id
		JOIN public.rooms r ON b.room_id = r.id
		WHERE b.room_id = $1 AND b.date >= $2 AND b.date <= $3
		ORDER BY b.date ASC, b.start_hour ASC
	`

	rows, err := r.pool.Query(ctx, query, roomID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bookings for room failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserFirstName, &b.UserLastName, &b.UserSector,
			&b.RoomID, &b.RoomName, &b.Date, &b.StartHour, &b.Duration, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
