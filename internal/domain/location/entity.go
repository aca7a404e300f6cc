package location

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("location name is required")
	ErrInvalidQRToken   = errors.New("invalid qr token")
	ErrInactiveLocation = errors.New("location is inactive")
)

const qrTokenPrefix = "loc_"

// LocalizedText carries the Arabic/English pair the client renders.
type LocalizedText struct {
	Ar string
	En string
}

func (t LocalizedText) IsEmpty() bool {
	return strings.TrimSpace(t.Ar) == "" && strings.TrimSpace(t.En) == ""
}

// Location is a registered pickup/delivery point. Immutable except for the
// active flag; the qrToken is the sole key the optical scanner needs.
type Location struct {
	id           uuid.UUID
	name         LocalizedText
	address      *LocalizedText
	qrToken      string
	displayOrder int
	isActive     bool
	createdAt    time.Time
}

func NewLocation(name LocalizedText, address *LocalizedText, displayOrder int) (*Location, error) {
	if name.IsEmpty() {
		return nil, ErrEmptyName
	}

	token, err := generateQRToken()
	if err != nil {
		return nil, err
	}

	return &Location{
		id:           uuid.New(),
		name:         name,
		address:      address,
		qrToken:      token,
		displayOrder: displayOrder,
		isActive:     true,
	}, nil
}

func ReconstructLocation(
	id uuid.UUID,
	name LocalizedText,
	address *LocalizedText,
	qrToken string,
	displayOrder int,
	isActive bool,
	createdAt time.Time,
) *Location {
	return &Location{
		id:           id,
		name:         name,
		address:      address,
		qrToken:      qrToken,
		displayOrder: displayOrder,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (l *Location) ID() uuid.UUID           { return l.id }
func (l *Location) Name() LocalizedText     { return l.name }
func (l *Location) Address() *LocalizedText { return l.address }
func (l *Location) QRToken() string         { return l.qrToken }
func (l *Location) DisplayOrder() int       { return l.displayOrder }
func (l *Location) IsActive() bool          { return l.isActive }
func (l *Location) CreatedAt() time.Time    { return l.createdAt }

func (l *Location) Deactivate() {
	l.isActive = false
}

func generateQRToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return qrTokenPrefix + hex.EncodeToString(buf), nil
}

// ValidateQRToken checks shape only; existence is the registry's concern.
func ValidateQRToken(token string) error {
	if !strings.HasPrefix(token, qrTokenPrefix) || len(token) != len(qrTokenPrefix)+32 {
		return ErrInvalidQRToken
	}
	return nil
}
