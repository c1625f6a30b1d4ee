package models

import (
	"github.com/shopspring/decimal"
)

// Every type carrying a decimal lives in this package, so importing it is
// what makes amounts encode as JSON numbers rather than strings. The switch
// is process-wide; nothing in the module wants quoted decimals.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type User struct {
	ID           int64           `json:"id"`
	Name         string          `json:"nome"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Balance      decimal.Decimal `json:"balance"`
	Notifications
}

// Notifications are the alert channels a user opted into.
type Notifications struct {
	EmailAlerts   bool `json:"notif_email"`
	PushAlerts    bool `json:"notif_push"`
	MonthlyReport bool `json:"notif_relatorio"`
}

// Preferences is what the settings page saves in one go. An empty
// PasswordHash leaves the stored password as it is.
type Preferences struct {
	Name  string
	Email string
	Notifications
	PasswordHash string
}

// PublicUser is the part of a User returned after login.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
