package inquiry

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no inquiry matches.
var ErrNotFound = errors.New("inquiry not found")

const selectColumns = "id, reference, name, email, phone, message, property_id, lang, remote_ip, created_at"

// Repository provides data access for inquiries.
type Repository struct {
	db *sql.DB
}

// NewRepository creates an inquiry repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Add stores a new inquiry and returns it as saved.
func (r *Repository) Add(inq *Inquiry) (*Inquiry, error) {
	if inq.Reference == "" {
		return nil, fmt.Errorf("inquiry reference is required")
	}

	result, err := r.db.Exec(
		`INSERT INTO inquiries (reference, name, email, phone, message, property_id, lang, remote_ip)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.Reference, inq.Name, inq.Email, inq.Phone, inq.Message, inq.PropertyID, inq.Lang, inq.RemoteIP,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting inquiry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	saved, err := r.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("reading back inquiry: %w", err)
	}
	return saved, nil
}

// GetByID returns a single inquiry.
func (r *Repository) GetByID(id int64) (*Inquiry, error) {
	inq, err := scanInquiry(r.db.QueryRow("SELECT "+selectColumns+" FROM inquiries WHERE id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("inquiry %d: %w", id, err)
	}
	return inq, nil
}

// GetByReference returns the inquiry with the given public reference.
func (r *Repository) GetByReference(ref string) (*Inquiry, error) {
	inq, err := scanInquiry(r.db.QueryRow("SELECT "+selectColumns+" FROM inquiries WHERE reference = ?", ref))
	if err != nil {
		return nil, fmt.Errorf("inquiry %s: %w", ref, err)
	}
	return inq, nil
}

// List returns inquiries newest first. A limit of zero or less means all.
func (r *Repository) List(limit int) (inquiries []*Inquiry, err error) {
	query := "SELECT " + selectColumns + " FROM inquiries ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing inquiries: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	inquiries = []*Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inquiries: %w", err)
	}

	return inquiries, nil
}

// Delete removes an inquiry and its notification log.
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM inquiries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting inquiry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("inquiry %d: %w", id, ErrNotFound)
	}

	return nil
}

// RecordNotification logs a delivery attempt for an inquiry.
func (r *Repository) RecordNotification(inquiryID int64, recipient, status, errText string) error {
	_, err := r.db.Exec(
		"INSERT INTO inquiry_notifications (inquiry_id, recipient, status, error) VALUES (?, ?, ?, ?)",
		inquiryID, recipient, status, errText,
	)
	if err != nil {
		return fmt.Errorf("recording notification: %w", err)
	}
	return nil
}

// Notifications returns the delivery log of an inquiry, oldest first.
func (r *Repository) Notifications(inquiryID int64) (notes []*Notification, err error) {
	rows, err := r.db.Query(
		"SELECT id, inquiry_id, recipient, status, error, created_at FROM inquiry_notifications WHERE inquiry_id = ? ORDER BY id",
		inquiryID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	notes = []*Notification{}
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.InquiryID, &n.Recipient, &n.Status, &n.Error, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}

	return notes, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInquiry(s scanner) (*Inquiry, error) {
	var inq Inquiry
	var propertyID sql.NullInt64
	err := s.Scan(&inq.ID, &inq.Reference, &inq.Name, &inq.Email, &inq.Phone, &inq.Message,
		&propertyID, &inq.Lang, &inq.RemoteIP, &inq.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if propertyID.Valid {
		id := propertyID.Int64
		inq.PropertyID = &id
	}
	return &inq, nil
}
