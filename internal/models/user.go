package models

import "time"

// User owns verse notes, study notes and a single free-text study pad.
// Deleting a user cascades to everything it owns.
type User struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Password  string `gorm:"size:255;not null" json:"-"`
	StudyPad  string `gorm:"type:text" json:"studyPad"`
	CreatedAt time.Time   `json:"-"`
	UpdatedAt time.Time   `json:"-"`
	VerseNotes []VerseNote `gorm:"constraint:OnDelete:CASCADE" json:"notes,omitempty"`
	StudyNotes []StudyNote `gorm:"constraint:OnDelete:CASCADE" json:"studyNotes,omitempty"`
	Sessions   []Session   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// VerseNote is a short annotation tied to exactly one verse. The unique index
// on (user_id, verse_id) backs the atomic insert-or-update upsert, so two
// racing writers cannot create a duplicate pair.
type VerseNote struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64 `gorm:"not null;index:idx_user_verse,unique" json:"-"`
	VerseID   uint64 `gorm:"not null;index:idx_user_verse,unique" json:"verseId"`
	Text      string `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StudyNote is a titled rich-text (HTML) library entry, independent of any
// verse.
type StudyNote struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64 `gorm:"not null;index" json:"-"`
	Title     string `gorm:"size:255;not null" json:"title"`
	Content   string `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is a server-side login session. The token is an opaque uuid handed
// to the client at login and checked on every mutating request.
type Session struct {
	Token     string `gorm:"primaryKey;size:36" json:"token"`
	UserID    uint64 `gorm:"not null;index" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"-"`
}
